// Package tagteam implements spec §6's primary entry point:
// build(text, options) -> Graph, a pure function from one natural-
// language sentence to a JSON-LD knowledge graph grounded in BFO/CCO,
// preserving linguistic ambiguity as an interpretation lattice. It
// wires together every narrow component the sibling packages define —
// deptree, nlp, extract, selectional, ambiguity, ontology, graph,
// provenance, jsonld — exactly as graph.Builder, ambiguity.Resolver,
// and jsonld.Serializer describe themselves: this package is their
// coordinator and owns no extraction or resolution logic of its own.
package tagteam

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arjunmenon/tagteam/ambiguity"
	"github.com/arjunmenon/tagteam/annotate"
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/graph"
	"github.com/arjunmenon/tagteam/jsonld"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/provenance"
)

// Engine builds JSON-LD knowledge graphs from sentences using a fixed
// set of collaborator Models (spec §9: "the Graph Builder is their
// coordinator and owns no business logic").
type Engine interface {
	// Build runs the full pipeline on text and returns the serialized
	// JSON-LD document described by spec §6's Graph output contract.
	Build(text string, opts ...Option) ([]byte, error)
}

// engine is the concrete Engine implementation.
type engine struct {
	models Models
	mint   ontology.MintOptions
	agent  provenance.AgentIdentity
	base   options
	clock  func() time.Time
}

// New creates an Engine from cfg. It fails fast (spec §7 ModelError)
// if cfg.Models is missing a required collaborator.
func New(cfg Config) (Engine, error) {
	if !cfg.Models.complete() {
		return nil, fmt.Errorf("%w: Config.Models has a nil collaborator", ErrModelUnavailable)
	}
	base := defaultOptions()
	for _, o := range cfg.Defaults {
		o(&base)
	}
	return &engine{
		models: cfg.Models,
		mint:   ontology.MintOptions{Hash: cfg.Hash},
		agent:  provenance.AgentIdentity{Name: "tagteam", Version: cfg.AgentVersion},
		base:   base,
		clock:  time.Now,
	}, nil
}

// Build is the package-level convenience form of spec §6's
// build(text, options) -> Graph, using DefaultConfig(). Most callers
// that don't need to override Models or the hash function should use
// this directly rather than constructing an Engine.
func Build(text string, opts ...Option) ([]byte, error) {
	eng, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return eng.Build(text, opts...)
}

func (e *engine) Build(text string, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	opt := e.base
	for _, o := range opts {
		o(&opt)
	}

	receivedAt := e.clock().UTC().Format(time.RFC3339)
	provBuilder := provenance.NewBuilder(e.mint, e.agent)

	// The IBE's IRI only depends on text (spec §4.9), so it is minted
	// once up front and threaded into graph.Assemble; the full triad
	// (which also needs every T1 IRI, not yet known) is built after
	// assembly reuses the same deterministic IRI.
	ibeIRI := ontology.Mint(e.mint, text, 0, ontology.TypeIBE, "")

	normalized := e.models.Normalizer.Normalize(text)
	tokens := e.models.Tokenizer.Tokenize(normalized)
	tagged := e.models.Tagger.Tag(tokens)

	var warnings []string
	tree, err := e.models.Parser.Parse(tagged)
	if err != nil {
		// ParseShapeWarning (spec §7): downgrade gracefully rather than
		// fail — emit an empty graph with provenance only.
		slog.Warn("build: parser returned an unusable tree, degrading to provenance-only graph",
			"error", err)
		warnings = append(warnings, "parse: "+err.Error())
		triad := provBuilder.Build(text, nil, receivedAt, receivedAt, e.clock().UTC().Format(time.RFC3339))
		return jsonld.NewSerializer().Serialize(graph.Graph{}, triad, nil, nil, nil, serializeOptions(opt, warnings, nil))
	}

	entities, aliasMap := extract.NewEntityExtractor(e.models.Gazetteer, e.mint).Extract(tree)
	acts, assertions := extract.NewActExtractor(e.models.Lemmatizer, e.mint).Extract(tree, entities)
	roles := extract.NewRoleMapper(e.mint).Extract(tree, entities, acts)

	g, extractionWarnings := graph.NewBuilder(e.mint).Assemble(entities, acts, assertions, roles, aliasMap, ibeIRI)
	warnings = append(warnings, extractionWarnings...)

	endedAt := e.clock().UTC().Format(time.RFC3339)
	triad := provBuilder.Build(text, g.T1IRIs(), receivedAt, receivedAt, endedAt)

	var report *ambiguity.Report
	var res *ambiguity.Resolution
	var lattice *ambiguity.Lattice
	if opt.detectAmbiguity {
		r := ambiguity.NewDetector().Detect(tree, entities, acts, roles, e.models.SelectionalTable)
		report = &r
	}
	if opt.preserveAmbiguity && report != nil {
		cfg := ambiguity.Config{
			PreserveThreshold:      opt.preserveThreshold,
			MaxReadingsPerNode:     opt.maxReadingsPerNode,
			MaxTotalAlternatives:   opt.maxTotalAlternatives,
			AlwaysPreserveScope:    true,
			UseSelectionalEvidence: opt.useSelectionalEvidence,
			DefaultPlausibility:    opt.preserveThreshold,
		}
		resolved := ambiguity.NewResolver().Resolve(*report, cfg)
		res = &resolved
		built := ambiguity.NewLatticeBuilder().Build(resolved, e.mint, cfg)
		lattice = &built
	}

	var tokenDebug []jsonld.DebugToken
	if opt.verbose {
		tokenDebug = debugTokens(tree)
	}

	serOpts := serializeOptions(opt, warnings, tokenDebug)
	if len(opt.scoredValues) > 0 {
		serOpts.Assessments = e.annotateEntities(g.Entities, opt)
	}

	return jsonld.NewSerializer().Serialize(g, triad, report, res, lattice, serOpts)
}

// annotateEntities runs the value annotator over every T2 entity and
// mints an IRI for each resulting Assessment (spec §6: scoredValues and
// contextIntensity are pre-computed inputs, never the product of a
// model call inside Build itself).
func (e *engine) annotateEntities(entities []graph.RealWorldEntity, opt options) []jsonld.Assessment {
	req := annotate.Request{
		DomainContext:    opt.domainContext,
		ScoredValues:     opt.scoredValues,
		ContextIntensity: opt.contextIntensity,
		Entities:         make([]annotate.Entity, len(entities)),
	}
	for i, ent := range entities {
		req.Entities[i] = annotate.Entity{IRI: ent.IRI, Label: ent.Label}
	}

	scored := annotate.NewDefaultAnnotator().Annotate(req)
	out := make([]jsonld.Assessment, len(scored))
	for i, a := range scored {
		out[i] = jsonld.Assessment{
			IRI:           ontology.Mint(e.mint, a.Label, i, ontology.TypeTag("ValueAssessment"), a.SubjectIRI),
			SubjectIRI:    a.SubjectIRI,
			Label:         a.Label,
			Value:         a.Value,
			DomainContext: a.DomainContext,
		}
	}
	return out
}

func serializeOptions(opt options, warnings []string, tokens []jsonld.DebugToken) jsonld.Options {
	return jsonld.Options{
		Profile:  opt.profile,
		Pretty:   opt.pretty,
		Verbose:  opt.verbose,
		Tokens:   tokens,
		Warnings: warnings,
	}
}
