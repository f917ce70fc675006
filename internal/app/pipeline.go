package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/nrennie/sentiment-analysis/internal/aggregate"
	"github.com/nrennie/sentiment-analysis/internal/config"
	"github.com/nrennie/sentiment-analysis/internal/dataset"
	"github.com/nrennie/sentiment-analysis/internal/domain"
	"github.com/nrennie/sentiment-analysis/internal/platform/runid"
	"github.com/nrennie/sentiment-analysis/internal/sentiment"
	"github.com/nrennie/sentiment-analysis/internal/stopwords"
	"github.com/nrennie/sentiment-analysis/internal/tokenize"
)

// Pipeline runs the full analysis: load, select, tokenize, score, aggregate.
// Stages run strictly in order; every stage consumes the complete output of
// the one before it and errors propagate to the caller unchanged.
type Pipeline struct {
	cfg   *config.Config
	stops stopwords.Set
	lex   domain.Lexicon
	clock clockwork.Clock
}

// Result is the output of one pipeline run.
type Result struct {
	RunID         string
	RecordsLoaded int
	TokensTotal   int // tokens before stopword removal
	TokensKept    int // tokens fed to the scorer
	Mean          float64
	VaderCompound *float64 // set only when the comparison is enabled
	Words         []domain.WordStat
	Elapsed       time.Duration
}

// New builds a pipeline from configuration, loading the lexicon and the
// stopword set up front so a bad collaborator file fails before any fetch.
func New(cfg *config.Config, clock clockwork.Clock) (*Pipeline, error) {
	lex, err := sentiment.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		return nil, err
	}

	stops := stopwords.Default()
	if cfg.StopwordsPath != "" {
		stops, err = stopwords.FromFile(cfg.StopwordsPath)
		if err != nil {
			return nil, err
		}
	}

	return &Pipeline{cfg: cfg, stops: stops, lex: lex, clock: clock}, nil
}

// Run executes the pipeline once. The run gets a fresh run ID carried in the
// context so every log line of the run is attributable.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	id := runid.New()
	ctx = runid.WithID(ctx, id)
	start := p.clock.Now()

	loadCtx, cancel := context.WithTimeout(ctx, p.cfg.FetchTimeout)
	records, err := dataset.Load(loadCtx, p.cfg.InputSource)
	cancel()
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "dataset loaded", "records", len(records), "source", p.cfg.InputSource)

	selected, err := dataset.SelectTop(records, p.cfg.TopK)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "records selected", "selected", len(selected), "top_k", p.cfg.TopK)

	tokens := tokenize.Records(selected)
	kept := tokenize.FilterStopwords(tokens, p.stops)
	slog.InfoContext(ctx, "titles tokenized",
		"tokens", len(tokens), "kept", len(kept), "stopwords", p.stops.Len())

	mean, err := sentiment.Mean(kept, p.lex, sentiment.UnknownWordPolicy(p.cfg.UnknownPolicy))
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "sentiment scored", "mean", mean, "policy", p.cfg.UnknownPolicy)

	result := &Result{
		RunID:         id,
		RecordsLoaded: len(records),
		TokensTotal:   len(tokens),
		TokensKept:    len(kept),
		Mean:          mean,
		Words:         aggregate.WordStats(kept, p.lex, p.cfg.MinWordCount),
	}

	if p.cfg.VaderCompare {
		compound, err := p.vaderCompound(kept)
		if err != nil {
			return nil, err
		}
		result.VaderCompound = &compound
		slog.InfoContext(ctx, "vader comparison", "compound", compound)
	}

	result.Elapsed = p.clock.Now().Sub(start)
	slog.InfoContext(ctx, "pipeline complete",
		"words", len(result.Words), "elapsed", result.Elapsed)
	return result, nil
}

func (p *Pipeline) vaderCompound(tokens []domain.Token) (float64, error) {
	analyzer, err := sentiment.NewAnalyzer()
	if err != nil {
		return 0, err
	}

	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Word
	}
	return analyzer.Compound(strings.Join(words, " ")), nil
}
