package store

import "fmt"

// schemaSQL returns the DDL for every table this store owns. embeddingDim
// sizes the vec0 virtual table used for sentence-embedding similarity
// search (spec §9's "value annotation and similarity search are out of
// core scope, but a corpus layer built on top may want them").
func schemaSQL(embeddingDim int) string {
	return fmt.Sprintf(`
-- Document registry with hash-based change detection
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY,
    path TEXT NOT NULL UNIQUE,
    format TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    parse_method TEXT NOT NULL,
    status TEXT DEFAULT 'pending',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- One row per sentence split out of a document section
CREATE TABLE IF NOT EXISTS sentences (
    id INTEGER PRIMARY KEY,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    section TEXT,
    position_in_doc INTEGER NOT NULL,
    text TEXT NOT NULL,
    content_hash TEXT NOT NULL
);

-- The JSON-LD graph tagteam.Build produced for one sentence. build_error
-- is non-empty when the pipeline degraded to a provenance-only graph or
-- failed outright; jsonld is still stored in the degrade case.
CREATE TABLE IF NOT EXISTS graphs (
    id INTEGER PRIMARY KEY,
    sentence_id INTEGER NOT NULL UNIQUE REFERENCES sentences(id) ON DELETE CASCADE,
    jsonld BLOB,
    profile TEXT NOT NULL,
    build_error TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Vector embeddings of sentence text via sqlite-vec, for nearest-
-- neighbor lookup of similar sentences across a corpus.
CREATE VIRTUAL TABLE IF NOT EXISTS vec_sentences USING vec0(
    sentence_id INTEGER PRIMARY KEY,
    embedding float[%d]
);

-- Full-text search over sentence text via FTS5
CREATE VIRTUAL TABLE IF NOT EXISTS sentences_fts USING fts5(
    text,
    content='sentences',
    content_rowid='id',
    tokenize='porter unicode61'
);

CREATE TRIGGER IF NOT EXISTS sentences_ai AFTER INSERT ON sentences BEGIN
    INSERT INTO sentences_fts(rowid, text) VALUES (new.id, new.text);
END;
CREATE TRIGGER IF NOT EXISTS sentences_ad AFTER DELETE ON sentences BEGIN
    INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES ('delete', old.id, old.text);
END;
CREATE TRIGGER IF NOT EXISTS sentences_au AFTER UPDATE ON sentences BEGIN
    INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES ('delete', old.id, old.text);
    INSERT INTO sentences_fts(sentences_fts, rowid, text) VALUES (new.id, new.text);
END;

CREATE INDEX IF NOT EXISTS idx_sentences_document ON sentences(document_id);
CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);
`, embeddingDim)
}
