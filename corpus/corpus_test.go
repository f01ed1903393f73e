package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arjunmenon/tagteam"
	"github.com/arjunmenon/tagteam/parser"
)

type fakeParser struct {
	result *parser.ParseResult
}

func (p *fakeParser) Parse(ctx context.Context, path string) (*parser.ParseResult, error) {
	return p.result, nil
}

func (p *fakeParser) SupportedFormats() []string { return []string{"txt"} }

type fakeEngine struct {
	calls []string
}

func (e *fakeEngine) Build(text string, opts ...tagteam.Option) ([]byte, error) {
	e.calls = append(e.calls, text)
	return []byte(fmt.Sprintf(`{"text":%q}`, text)), nil
}

func writeTempFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("placeholder"), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestLoaderBuildsOneGraphPerSentence(t *testing.T) {
	reg := parser.NewRegistry()
	reg.Register("txt", &fakeParser{result: &parser.ParseResult{
		Method: "native",
		Sections: []parser.Section{
			{Heading: "Intro", Content: "The doctor treated the patient. The nurse assisted."},
		},
	}})

	eng := &fakeEngine{}
	loader := &Loader{Registry: reg, Engine: eng}

	path := writeTempFile(t, "doc.txt")
	doc, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(doc.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2: %+v", len(doc.Sentences), doc.Sentences)
	}
	if doc.Sentences[0].Text != "The doctor treated the patient." {
		t.Errorf("sentence 0 = %q", doc.Sentences[0].Text)
	}
	if doc.Sentences[1].Text != "The nurse assisted." {
		t.Errorf("sentence 1 = %q", doc.Sentences[1].Text)
	}
	if len(eng.calls) != 2 {
		t.Errorf("engine.Build called %d times, want 2", len(eng.calls))
	}
	if doc.ContentHash == "" {
		t.Error("expected non-empty ContentHash")
	}
}

func TestLoaderWalksNestedSections(t *testing.T) {
	reg := parser.NewRegistry()
	reg.Register("txt", &fakeParser{result: &parser.ParseResult{
		Sections: []parser.Section{
			{
				Heading: "Top",
				Content: "Top sentence.",
				Children: []parser.Section{
					{Heading: "Child", Content: "Child sentence."},
				},
			},
		},
	}})

	eng := &fakeEngine{}
	loader := &Loader{Registry: reg, Engine: eng}

	path := writeTempFile(t, "doc.txt")
	doc, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Sentences) != 2 {
		t.Fatalf("got %d sentences, want 2 (parent + child section)", len(doc.Sentences))
	}
}

func TestLoaderUnknownFormat(t *testing.T) {
	reg := parser.NewRegistry()
	loader := &Loader{Registry: reg, Engine: &fakeEngine{}}

	path := writeTempFile(t, "doc.unknownformat")
	if _, err := loader.Load(context.Background(), path); err == nil {
		t.Fatal("expected an error for an unregistered format")
	}
}
