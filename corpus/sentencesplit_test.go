package corpus

import "testing"

func TestSplitSentences(t *testing.T) {
	text := "First sentence. Second sentence? Third sentence! Final text without period"
	sentences := SplitSentences(text)

	if len(sentences) != 4 {
		t.Fatalf("expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	want := []string{
		"First sentence.",
		"Second sentence?",
		"Third sentence!",
		"Final text without period",
	}
	for i, w := range want {
		if sentences[i] != w {
			t.Errorf("sentence %d: got %q, want %q", i, sentences[i], w)
		}
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences(""); got != nil {
		t.Errorf("SplitSentences(\"\") = %v, want nil", got)
	}
}
