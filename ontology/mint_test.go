package ontology

import "testing"

func TestMintDeterministic(t *testing.T) {
	a := Mint(MintOptions{}, "the doctor", 0, TypeDiscourseReferent, "")
	b := Mint(MintOptions{}, "the doctor", 0, TypeDiscourseReferent, "")
	if a != b {
		t.Fatalf("Mint not deterministic: %q != %q", a, b)
	}
}

func TestMintDistinguishesSpanAndType(t *testing.T) {
	base := Mint(MintOptions{}, "doctor", 4, TypePerson, "")
	diffSpan := Mint(MintOptions{}, "doctor", 20, TypePerson, "")
	diffType := Mint(MintOptions{}, "doctor", 4, TypeOrganization, "")
	if base == diffSpan || base == diffType {
		t.Fatalf("Mint must vary with span offset and type tag")
	}
}

func TestMintReadingTagVariesIRI(t *testing.T) {
	def := Mint(MintOptions{}, "should", 10, TypeVerbPhrase, "")
	alt := Mint(MintOptions{}, "should", 10, TypeVerbPhrase, "epistemic")
	if def == alt {
		t.Fatalf("reading tag must change the minted IRI")
	}
}

func TestAlternativeIRIForm(t *testing.T) {
	base := "inst:should_ab12cd34"
	alt := AlternativeIRI(base, "epistemic")
	if alt != base+"_alt_epistemic" {
		t.Fatalf("AlternativeIRI = %q, want %s", alt, base+"_alt_epistemic")
	}
}

func TestWeakHashDeterministicAndDistinct(t *testing.T) {
	a := WeakHash("x")
	b := WeakHash("x")
	c := WeakHash("y")
	if a != b {
		t.Fatalf("WeakHash not deterministic")
	}
	if a == c {
		t.Fatalf("WeakHash collided on distinct input")
	}
	if len(a) != 64 {
		t.Fatalf("WeakHash length = %d, want 64", len(a))
	}
}

func TestSanitizeEscapesInjection(t *testing.T) {
	got := Sanitize(`<script>"x"</script>`)
	if got == `<script>"x"</script>` {
		t.Fatalf("Sanitize did not escape anything")
	}
	for _, bad := range []string{"<", ">", `"`} {
		if containsRune(got, bad) {
			t.Fatalf("Sanitize left %q unescaped in %q", bad, got)
		}
	}
}

func containsRune(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}

func TestTypesForEscalatesByProfile(t *testing.T) {
	minimal := TypesFor(TypePerson, ProfileMinimal)
	if len(minimal) != 1 || minimal[0] != "cco:ont00001262" {
		t.Fatalf("ProfileMinimal = %v, want single opaque primary", minimal)
	}
	full := TypesFor(TypePerson, ProfileCCO)
	if len(full) <= len(minimal) {
		t.Fatalf("ProfileCCO should add more types than ProfileMinimal, got %v", full)
	}
}
