package corpus

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arjunmenon/tagteam"
	"github.com/arjunmenon/tagteam/parser"
)

// SentenceGraph pairs one split-out sentence with the JSON-LD bytes
// tagteam.Build produced for it, or the error build returned.
type SentenceGraph struct {
	Section  string // the parser.Section heading it came from, if any
	Position int    // 0-based order within the document
	Text     string
	JSONLD   []byte
	Err      error
}

// DocumentGraphs is the result of running every sentence of one parsed
// document through tagteam.Build.
type DocumentGraphs struct {
	Path        string
	ContentHash string
	Format      string
	ParseMethod string
	Sentences   []SentenceGraph
}

// Loader turns a document file on disk into one DocumentGraphs, using
// parser.Registry (unmodified) to extract text and tagteam.Engine (or
// the package-level tagteam.Build) to parse each sentence.
type Loader struct {
	Registry *parser.Registry
	Engine   tagteam.Engine
	Options  []tagteam.Option
}

// NewLoader returns a Loader wired with a default parser.Registry (PDF,
// DOCX, XLSX, PPTX — vision- and LlamaParse-backed formats are not
// registered by default, see parser.NewRegistry) and eng for building
// graphs. eng may be nil, in which case tagteam.Build is used directly.
func NewLoader(eng tagteam.Engine, opts ...tagteam.Option) *Loader {
	return &Loader{Registry: parser.NewRegistry(), Engine: eng, Options: opts}
}

// Load parses path, splits every section's content into sentences, and
// runs each sentence through the configured engine. A build error on
// one sentence does not abort the rest (spec §7: InputError/ModelError
// are the only fail-fast cases, and neither applies to a batch of
// otherwise-independent sentences).
func (l *Loader) Load(ctx context.Context, path string) (DocumentGraphs, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	p, err := l.Registry.Get(format)
	if err != nil {
		return DocumentGraphs{}, fmt.Errorf("corpus: %w", err)
	}

	result, err := p.Parse(ctx, path)
	if err != nil {
		return DocumentGraphs{}, fmt.Errorf("corpus: parsing %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return DocumentGraphs{}, fmt.Errorf("corpus: hashing %s: %w", path, err)
	}
	sum := sha256.Sum256(raw)

	doc := DocumentGraphs{
		Path:        path,
		ContentHash: hex.EncodeToString(sum[:]),
		Format:      format,
		ParseMethod: result.Method,
	}

	position := 0
	var walk func(sections []parser.Section)
	walk = func(sections []parser.Section) {
		for _, sec := range sections {
			for _, sentence := range SplitSentences(sec.Content) {
				out, buildErr := l.build(sentence)
				doc.Sentences = append(doc.Sentences, SentenceGraph{
					Section:  sec.Heading,
					Position: position,
					Text:     sentence,
					JSONLD:   out,
					Err:      buildErr,
				})
				position++
			}
			walk(sec.Children)
		}
	}
	walk(result.Sections)

	return doc, nil
}

func (l *Loader) build(sentence string) ([]byte, error) {
	if l.Engine != nil {
		return l.Engine.Build(sentence, l.Options...)
	}
	return tagteam.Build(sentence, l.Options...)
}
