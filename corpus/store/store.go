// Package store persists corpus.DocumentGraphs to SQLite, so a batch
// run over many documents can be inspected, searched, or resumed without
// recomputing every sentence's graph. Grounded directly on the teacher's
// store.Store: same sqlite-vec + FTS5 + migrations pattern, same
// connection settings, repurposed for tagteam's document/sentence/graph
// domain instead of the teacher's document/chunk/entity domain.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	sqlite_vec.Auto()
}

// Document represents a row in the documents table.
type Document struct {
	ID          int64  `json:"id"`
	Path        string `json:"path"`
	Format      string `json:"format"`
	ContentHash string `json:"content_hash"`
	ParseMethod string `json:"parse_method"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Sentence represents a row in the sentences table.
type Sentence struct {
	ID            int64  `json:"id"`
	DocumentID    int64  `json:"document_id"`
	Section       string `json:"section"`
	PositionInDoc int    `json:"position_in_doc"`
	Text          string `json:"text"`
	ContentHash   string `json:"content_hash"`
}

// Graph represents a row in the graphs table: the JSON-LD document
// tagteam.Build produced for one sentence.
type Graph struct {
	ID         int64  `json:"id"`
	SentenceID int64  `json:"sentence_id"`
	JSONLD     []byte `json:"jsonld"`
	Profile    string `json:"profile"`
	BuildError string `json:"build_error,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// SentenceMatch is a full-text or vector search hit joined back to its
// parent document.
type SentenceMatch struct {
	SentenceID int64   `json:"sentence_id"`
	DocumentID int64   `json:"document_id"`
	Text       string  `json:"text"`
	Section    string  `json:"section"`
	Path       string  `json:"path"`
	Score      float64 `json:"score"`
}

// Store wraps the SQLite database backing one corpus.
type Store struct {
	db           *sql.DB
	embeddingDim int
}

// New opens (or creates) a SQLite database at dbPath and initializes
// the schema, including the sqlite-vec and FTS5 virtual tables.
func New(dbPath string, embeddingDim int) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL(embeddingDim)); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db, embeddingDim: embeddingDim}

	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EmbeddingDim returns the configured embedding dimension.
func (s *Store) EmbeddingDim() int {
	return s.embeddingDim
}

// --- Document operations ---

// UpsertDocument inserts or updates a document record, keyed on path.
func (s *Store) UpsertDocument(ctx context.Context, doc Document) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (path, format, content_hash, parse_method, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			format = excluded.format,
			content_hash = excluded.content_hash,
			parse_method = excluded.parse_method,
			status = excluded.status,
			updated_at = CURRENT_TIMESTAMP
	`, doc.Path, doc.Format, doc.ContentHash, doc.ParseMethod, doc.Status)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if id == 0 {
		row := s.db.QueryRowContext(ctx, "SELECT id FROM documents WHERE path = ?", doc.Path)
		if err := row.Scan(&id); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// GetDocumentByPath retrieves a document by its file path.
func (s *Store) GetDocumentByPath(ctx context.Context, path string) (*Document, error) {
	doc := &Document{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, path, format, content_hash, parse_method, status, created_at, updated_at
		FROM documents WHERE path = ?
	`, path).Scan(&doc.ID, &doc.Path, &doc.Format, &doc.ContentHash,
		&doc.ParseMethod, &doc.Status, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all documents ordered by creation time.
func (s *Store) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, path, format, content_hash, parse_method, status, created_at, updated_at
		FROM documents ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Path, &d.Format, &d.ContentHash,
			&d.ParseMethod, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document and cascades to its sentences,
// graphs, and embeddings.
func (s *Store) DeleteDocument(ctx context.Context, id int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM vec_sentences WHERE sentence_id IN (
				SELECT id FROM sentences WHERE document_id = ?
			)`, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM sentences WHERE document_id = ?", id); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
		return err
	})
}

// --- Sentence + graph operations ---

// InsertSentenceWithGraph inserts one sentence and its built graph in a
// single transaction, returning the sentence ID.
func (s *Store) InsertSentenceWithGraph(ctx context.Context, sent Sentence, g Graph) (int64, error) {
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		hash := sha256.Sum256([]byte(sent.Text))
		contentHash := hex.EncodeToString(hash[:])

		res, err := tx.ExecContext(ctx, `
			INSERT INTO sentences (document_id, section, position_in_doc, text, content_hash)
			VALUES (?, ?, ?, ?, ?)
		`, sent.DocumentID, sent.Section, sent.PositionInDoc, sent.Text, contentHash)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO graphs (sentence_id, jsonld, profile, build_error)
			VALUES (?, ?, ?, ?)
		`, id, g.JSONLD, g.Profile, g.BuildError)
		return err
	})
	return id, err
}

// GetSentencesByDocument returns every sentence for a document, ordered
// by position.
func (s *Store) GetSentencesByDocument(ctx context.Context, docID int64) ([]Sentence, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, section, position_in_doc, text, content_hash
		FROM sentences WHERE document_id = ? ORDER BY position_in_doc
	`, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sentences []Sentence
	for rows.Next() {
		var sent Sentence
		if err := rows.Scan(&sent.ID, &sent.DocumentID, &sent.Section,
			&sent.PositionInDoc, &sent.Text, &sent.ContentHash); err != nil {
			return nil, err
		}
		sentences = append(sentences, sent)
	}
	return sentences, rows.Err()
}

// GetGraphBySentence retrieves the JSON-LD graph built for a sentence.
func (s *Store) GetGraphBySentence(ctx context.Context, sentenceID int64) (*Graph, error) {
	g := &Graph{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, sentence_id, jsonld, profile, COALESCE(build_error, ''), created_at
		FROM graphs WHERE sentence_id = ?
	`, sentenceID).Scan(&g.ID, &g.SentenceID, &g.JSONLD, &g.Profile, &g.BuildError, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// --- Embedding + search operations ---

// InsertEmbedding stores a vector embedding for a sentence, computed
// outside this package (e.g. by an annotate.ValueAnnotator's backing
// model).
func (s *Store) InsertEmbedding(ctx context.Context, sentenceID int64, embedding []float32) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO vec_sentences (sentence_id, embedding) VALUES (?, ?)",
		sentenceID, serializeFloat32(embedding))
	return err
}

// VectorSearch performs a KNN search over sentence embeddings, returning
// the top-k nearest matches joined with their parent document path.
func (s *Store) VectorSearch(ctx context.Context, queryEmbedding []float32, k int) ([]SentenceMatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT v.sentence_id, v.distance, sn.text, sn.section, sn.document_id, d.path
		FROM vec_sentences v
		JOIN sentences sn ON sn.id = v.sentence_id
		JOIN documents d ON d.id = sn.document_id
		WHERE v.embedding MATCH ? AND k = ?
		ORDER BY v.distance
	`, serializeFloat32(queryEmbedding), k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SentenceMatch
	for rows.Next() {
		var m SentenceMatch
		var distance float64
		if err := rows.Scan(&m.SentenceID, &distance, &m.Text, &m.Section, &m.DocumentID, &m.Path); err != nil {
			return nil, err
		}
		m.Score = 1.0 - distance
		results = append(results, m)
	}
	return results, rows.Err()
}

// FTSSearch performs a full-text search over sentence text using FTS5
// BM25 ranking.
func (s *Store) FTSSearch(ctx context.Context, query string, limit int) ([]SentenceMatch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.rowid, f.rank, sn.text, sn.section, sn.document_id, d.path
		FROM sentences_fts f
		JOIN sentences sn ON sn.id = f.rowid
		JOIN documents d ON d.id = sn.document_id
		WHERE sentences_fts MATCH ?
		ORDER BY f.rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SentenceMatch
	for rows.Next() {
		var m SentenceMatch
		var rank float64
		if err := rows.Scan(&m.SentenceID, &rank, &m.Text, &m.Section, &m.DocumentID, &m.Path); err != nil {
			return nil, err
		}
		m.Score = -rank
		results = append(results, m)
	}
	return results, rows.Err()
}

// --- helpers ---

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// serializeFloat32 converts a float32 slice to little-endian bytes for
// sqlite-vec's vec0 column format.
func serializeFloat32(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
