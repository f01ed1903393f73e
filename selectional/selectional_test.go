package selectional

import "testing"

func TestGetVerbClassToleratesInflection(t *testing.T) {
	table := Default()
	if got := table.GetVerbClass("decided"); got != ClassIntentionalMental {
		t.Fatalf("GetVerbClass(decided) = %q, want %q", got, ClassIntentionalMental)
	}
	if got := table.GetVerbClass("treats"); got != ClassIntentionalPhysical {
		t.Fatalf("GetVerbClass(treats) = %q, want %q", got, ClassIntentionalPhysical)
	}
	if got := table.GetVerbClass("zorgle"); got != ClassUnknown {
		t.Fatalf("GetVerbClass(zorgle) = %q, want unknown", got)
	}
}

func TestGetViolationInanimateAgent(t *testing.T) {
	table := Default()
	agent := Entity{Label: "rock"}
	v := table.GetViolation("decide", agent, nil)
	if v == nil || v.Signal != "inanimate_agent" {
		t.Fatalf("GetViolation(decide, rock) = %+v, want inanimate_agent", v)
	}
}

func TestGetViolationNoneForValidAgent(t *testing.T) {
	table := Default()
	agent := Entity{Label: "doctor"}
	if v := table.GetViolation("decide", agent, nil); v != nil {
		t.Fatalf("GetViolation(decide, doctor) = %+v, want nil", v)
	}
}

func TestCategorizeMetonymicLocationIsOrganization(t *testing.T) {
	table := Default()
	cats := table.Categorize(Entity{Label: "The White House"})
	if len(cats) != 1 || cats[0] != CategoryOrganization {
		t.Fatalf("Categorize(White House) = %v, want [organization]", cats)
	}
}

func TestCategorizeLabelCanYieldMultipleCategories(t *testing.T) {
	table := Default()
	cats := table.Categorize(Entity{Label: "family"})
	has := func(c Category) bool {
		for _, got := range cats {
			if got == c {
				return true
			}
		}
		return false
	}
	if !has(CategoryAnimate) || !has(CategoryCollective) {
		t.Fatalf("Categorize(family) = %v, want animate and collective", cats)
	}
}

func TestCheckSubjectUnknownVerbIsPermissive(t *testing.T) {
	table := Default()
	res := table.CheckSubject("zorgle", Entity{Label: "rock"})
	if !res.Valid || res.Confidence > 0.5 {
		t.Fatalf("CheckSubject(zorgle) = %+v, want valid with confidence <= 0.5", res)
	}
}

func TestExtendDoesNotMutateReceiver(t *testing.T) {
	base := Default()
	if cats := base.Categorize(Entity{Label: "acme corp"}); len(cats) != 0 && cats[0] != CategoryInanimate {
		t.Fatalf("base should not recognize acme corp as anything but fallback inanimate, got %v", cats)
	}
	extended := base.Extend(map[Category][]string{CategoryOrganization: {"acme corp"}}, nil)
	if cats := base.Categorize(Entity{Label: "acme corp"}); len(cats) == 1 && cats[0] == CategoryOrganization {
		t.Fatalf("Extend must not mutate the receiver")
	}
	cats := extended.Categorize(Entity{Label: "acme corp"})
	if len(cats) != 1 || cats[0] != CategoryOrganization {
		t.Fatalf("extended table should categorize acme corp as organization, got %v", cats)
	}
}
