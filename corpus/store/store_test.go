//go:build cgo

package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath, 4) // dim=4 for test vectors
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew(t *testing.T) {
	s := newTestStore(t)
	if s.EmbeddingDim() != 4 {
		t.Fatalf("expected embedding dim 4, got %d", s.EmbeddingDim())
	}
	if s.DB() == nil {
		t.Fatal("expected non-nil *sql.DB")
	}
}

func TestNewCreatesParentDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub", "dir")
	dbPath := filepath.Join(dir, "test.db")
	s, err := New(dbPath, 4)
	if err != nil {
		t.Fatalf("creating store in nested dir: %v", err)
	}
	s.Close()
}

func sampleDoc(path string) Document {
	return Document{
		Path:        path,
		Format:      "pdf",
		ContentHash: "abc123",
		ParseMethod: "native",
		Status:      "pending",
	}
}

func TestUpsertAndGetDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	if err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero document id")
	}

	got, err := s.GetDocumentByPath(ctx, "/docs/a.pdf")
	if err != nil {
		t.Fatalf("GetDocumentByPath: %v", err)
	}
	if got.ContentHash != "abc123" {
		t.Errorf("ContentHash = %q, want abc123", got.ContentHash)
	}
}

func TestUpsertDocumentUpdatesOnConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id1, _ := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	doc := sampleDoc("/docs/a.pdf")
	doc.ContentHash = "def456"
	id2, err := s.UpsertDocument(ctx, doc)
	if err != nil {
		t.Fatalf("UpsertDocument (update): %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected same document id on update, got %d and %d", id1, id2)
	}

	got, _ := s.GetDocumentByPath(ctx, "/docs/a.pdf")
	if got.ContentHash != "def456" {
		t.Errorf("ContentHash after update = %q, want def456", got.ContentHash)
	}
}

func TestInsertSentenceWithGraphAndRetrieve(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docID, err := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	if err != nil {
		t.Fatalf("UpsertDocument: %v", err)
	}

	sentID, err := s.InsertSentenceWithGraph(ctx,
		Sentence{DocumentID: docID, Section: "Intro", PositionInDoc: 0, Text: "The doctor treated the patient."},
		Graph{JSONLD: []byte(`{"@graph":[]}`), Profile: "cco"},
	)
	if err != nil {
		t.Fatalf("InsertSentenceWithGraph: %v", err)
	}

	sentences, err := s.GetSentencesByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("GetSentencesByDocument: %v", err)
	}
	if len(sentences) != 1 || sentences[0].ID != sentID {
		t.Fatalf("GetSentencesByDocument = %+v, want one sentence with id %d", sentences, sentID)
	}

	g, err := s.GetGraphBySentence(ctx, sentID)
	if err != nil {
		t.Fatalf("GetGraphBySentence: %v", err)
	}
	if string(g.JSONLD) != `{"@graph":[]}` {
		t.Errorf("JSONLD = %q", g.JSONLD)
	}
}

func TestDeleteDocumentCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docID, _ := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	s.InsertSentenceWithGraph(ctx,
		Sentence{DocumentID: docID, PositionInDoc: 0, Text: "Sentence one."},
		Graph{JSONLD: []byte(`{}`), Profile: "cco"})

	if err := s.DeleteDocument(ctx, docID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}

	sentences, err := s.GetSentencesByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("GetSentencesByDocument after delete: %v", err)
	}
	if len(sentences) != 0 {
		t.Fatalf("expected no sentences after delete, got %d", len(sentences))
	}
}

func TestFTSSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docID, _ := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	s.InsertSentenceWithGraph(ctx,
		Sentence{DocumentID: docID, PositionInDoc: 0, Text: "The ventilator was allocated to the patient."},
		Graph{JSONLD: []byte(`{}`), Profile: "cco"})

	matches, err := s.FTSSearch(ctx, "ventilator", 10)
	if err != nil {
		t.Fatalf("FTSSearch: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("FTSSearch returned %d matches, want 1", len(matches))
	}
}

func TestVectorSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	docID, _ := s.UpsertDocument(ctx, sampleDoc("/docs/a.pdf"))
	sentID, _ := s.InsertSentenceWithGraph(ctx,
		Sentence{DocumentID: docID, PositionInDoc: 0, Text: "The doctor treated the patient."},
		Graph{JSONLD: []byte(`{}`), Profile: "cco"})

	if err := s.InsertEmbedding(ctx, sentID, []float32{1, 0, 0, 0}); err != nil {
		t.Fatalf("InsertEmbedding: %v", err)
	}

	results, err := s.VectorSearch(ctx, []float32{1, 0, 0, 0}, 1)
	if err != nil {
		t.Fatalf("VectorSearch: %v", err)
	}
	if len(results) != 1 || results[0].SentenceID != sentID {
		t.Fatalf("VectorSearch = %+v, want one match for sentence %d", results, sentID)
	}
}
