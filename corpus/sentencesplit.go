// Package corpus loads multi-sentence documents and feeds each sentence
// through tagteam.Build, assembling a per-document collection of JSON-LD
// graphs. It reuses package parser's format registry unchanged (spec §1
// treats document ingestion as out of scope for the core itself; corpus
// is the batch-mode caller spec §9 anticipates).
package corpus

import "strings"

// SplitSentences splits text into sentences at period/question/exclamation
// boundaries followed by whitespace or end of string. Grounded on the
// teacher's RAG-answer snippet splitter; tagteam.Build takes one sentence
// at a time, so corpus uses this to turn a parsed document section into
// the individual inputs the pipeline expects.
func SplitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '?' || runes[i] == '!' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				s := strings.TrimSpace(cur.String())
				if s != "" {
					sentences = append(sentences, s)
				}
				cur.Reset()
			}
		}
	}
	if cur.Len() > 0 {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
