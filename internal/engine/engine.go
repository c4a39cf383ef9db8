// Package engine wires the parser, validator, flattener, tokenizer and
// normalizer into the single entry point used by the CLI and catalog.
package engine

import (
	"errors"
	"fmt"

	"spdxmatch/internal/config"
	"spdxmatch/internal/flatten"
	"spdxmatch/internal/logger"
	"spdxmatch/internal/models"
	"spdxmatch/internal/normalizer"
	"spdxmatch/internal/parser"
	"spdxmatch/internal/tokenizer"
	"spdxmatch/internal/validator"
)

// ErrInvalidTemplate is returned in strict mode when linting finds errors.
var ErrInvalidTemplate = errors.New("template failed validation")

// Engine loads templates and normalizes candidate text. It is safe for
// concurrent use once built.
type Engine struct {
	log       *logger.Logger
	parser    *parser.Parser
	validator *validator.TemplateValidator
	flattener *flatten.Flattener
	tokenizer *tokenizer.Tokenizer
	pipeline  *normalizer.Pipeline
	cfg       *config.Config
}

// New builds an engine from cfg. The equivalence table is read here, so a
// malformed table fails construction rather than normalization.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if log == nil {
		log = logger.Nop()
	}

	table := normalizer.DefaultEquivalences()

	if path := cfg.Normalizer.EquivalenceTable; path != "" {
		var err error

		table, err = normalizer.LoadEquivalencesFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load equivalence table: %w", err)
		}
	}

	log.Debug("equivalence table loaded", "entries", table.Len(), "path", cfg.Normalizer.EquivalenceTable)

	unspecified := models.SpacingBefore
	if cfg.Flatten.UnspecifiedSpacing == "none" {
		unspecified = models.SpacingNone
	}

	return &Engine{
		log:       log,
		cfg:       cfg,
		parser:    parser.NewParser(),
		validator: validator.NewTemplateValidator(cfg.Validation),
		flattener: flatten.NewFlattener(flatten.Options{UnspecifiedSpacing: unspecified}),
		tokenizer: tokenizer.NewTokenizer(tokenizer.Options{
			MergeWhitespace:        cfg.Tokenizer.MergeWhitespace,
			SplitTextWhitespace:    cfg.Tokenizer.SplitTextWhitespace,
			DropUnspacedWhitespace: cfg.Tokenizer.DropUnspacedWhitespace,
		}),
		pipeline: normalizer.NewPipeline(normalizer.Options{
			CombineHyphens: cfg.Normalizer.CombineHyphens,
			Equivalences:   table,
			VerifyOffsets:  cfg.Normalizer.VerifyOffsets,
		}),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Parse parses markup without flattening it.
func (e *Engine) Parse(markup string) (*models.Template, error) {
	tmpl, err := e.parser.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	return tmpl, nil
}

// Lint validates a parsed template.
func (e *Engine) Lint(tmpl *models.Template) *validator.ValidationResult {
	return e.validator.Validate(tmpl)
}

// Load parses, lints, flattens and tokenizes markup. The returned template is
// complete and must not be modified.
func (e *Engine) Load(markup string) (*models.Template, error) {
	tmpl, err := e.Parse(markup)
	if err != nil {
		return nil, err
	}

	log := e.log.With("template", tmpl.ID)

	result := e.Lint(tmpl)
	for _, w := range result.Warnings {
		log.Warn("template lint warning", "line", w.Line, "message", w.Message)
	}

	for _, ve := range result.Errors {
		log.Warn("template lint error", "line", ve.Line, "message", ve.Message)
	}

	if !result.IsValid && e.cfg.Validation.Strict {
		return nil, fmt.Errorf("%w: %s: %d errors", ErrInvalidTemplate, tmpl.ID, len(result.Errors))
	}

	if err := e.Prepare(tmpl); err != nil {
		return nil, err
	}

	log.Debug("template loaded",
		"nodes", tmpl.NodeCount(),
		"segments", len(tmpl.Segments),
		"tokens", len(tmpl.Tokens),
	)

	return tmpl, nil
}

// Prepare flattens and tokenizes a parsed template in place.
func (e *Engine) Prepare(tmpl *models.Template) error {
	segs, err := e.flattener.Flatten(tmpl)
	if err != nil {
		return fmt.Errorf("flatten failed: %w", err)
	}

	tmpl.Segments = segs

	tokens, err := e.tokenizer.Tokenize(tmpl)
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	tmpl.Tokens = tokens

	return nil
}

// Normalize normalizes candidate text.
func (e *Engine) Normalize(text string) *normalizer.State {
	s := e.pipeline.Normalize(text)

	for _, fault := range s.Faults {
		e.log.Error("offset invariant violated", "error", fault)
	}

	e.log.Debug("text normalized", "original", len(s.Positions), "normalized", s.Len())

	return s
}
