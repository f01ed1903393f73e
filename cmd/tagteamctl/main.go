// Command tagteamctl runs tagteam's build pipeline over one sentence or
// a whole document, optionally persisting the results to a corpus/store
// database. Grounded on cmd/server/main.go's flag + structured-logging
// shape, trimmed to a single-shot CLI instead of an HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/arjunmenon/tagteam"
	"github.com/arjunmenon/tagteam/corpus"
	"github.com/arjunmenon/tagteam/corpus/store"
)

func main() {
	sentence := flag.String("text", "", "a single sentence to build a graph for")
	docPath := flag.String("doc", "", "a document path to split into sentences and build graphs for")
	dbPath := flag.String("db", "", "optional corpus/store database path to persist results to")
	pretty := flag.Bool("pretty", true, "pretty-print JSON-LD output")
	verbose := flag.Bool("verbose", false, "attach _debug.tokens to the output")
	preserveAmbiguity := flag.Bool("preserve-ambiguity", false, "attach _interpretationLattice to the output")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if *sentence == "" && *docPath == "" {
		fmt.Fprintln(os.Stderr, "tagteamctl: one of -text or -doc is required")
		os.Exit(2)
	}

	var opts []tagteam.Option
	if *pretty {
		opts = append(opts, tagteam.WithPretty())
	}
	if *verbose {
		opts = append(opts, tagteam.WithVerbose())
	}
	if *preserveAmbiguity {
		opts = append(opts, tagteam.WithPreserveAmbiguity())
	}

	if *sentence != "" {
		out, err := tagteam.Build(*sentence, opts...)
		if err != nil {
			slog.Error("build failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	if err := runDocument(*docPath, *dbPath, opts); err != nil {
		slog.Error("document run failed", "error", err)
		os.Exit(1)
	}
}

func runDocument(docPath, dbPath string, opts []tagteam.Option) error {
	ctx := context.Background()
	loader := corpus.NewLoader(nil, opts...)

	doc, err := loader.Load(ctx, docPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", docPath, err)
	}

	var db *store.Store
	if dbPath != "" {
		db, err = store.New(dbPath, 0)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer db.Close()
	}

	var docID int64
	if db != nil {
		docID, err = db.UpsertDocument(ctx, store.Document{
			Path:        doc.Path,
			Format:      doc.Format,
			ContentHash: doc.ContentHash,
			ParseMethod: doc.ParseMethod,
			Status:      "processed",
		})
		if err != nil {
			return fmt.Errorf("recording document: %w", err)
		}
	}

	for _, sg := range doc.Sentences {
		if sg.Err != nil {
			slog.Warn("sentence build failed", "text", sg.Text, "error", sg.Err)
		}
		if db != nil {
			buildErr := ""
			if sg.Err != nil {
				buildErr = sg.Err.Error()
			}
			if _, err := db.InsertSentenceWithGraph(ctx,
				store.Sentence{DocumentID: docID, Section: sg.Section, PositionInDoc: sg.Position, Text: sg.Text},
				store.Graph{JSONLD: sg.JSONLD, Profile: "cco", BuildError: buildErr},
			); err != nil {
				return fmt.Errorf("persisting sentence %d: %w", sg.Position, err)
			}
			continue
		}
		fmt.Println(string(sg.JSONLD))
	}

	slog.Info("document processed", "path", doc.Path, "sentences", len(doc.Sentences))
	return nil
}
