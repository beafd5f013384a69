package bootstrap

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yanqian/skillcanon/internal/domain/skills"
	"github.com/yanqian/skillcanon/internal/infra/config"
	apperrors "github.com/yanqian/skillcanon/pkg/errors"
	"github.com/yanqian/skillcanon/pkg/metrics"
	"github.com/yanqian/skillcanon/pkg/util"
)

// Input origins reported per skill.
const (
	OriginArg       = "arg"
	OriginStdin     = "stdin"
	OriginCandidate = "candidate"
	OriginRequired  = "required"
)

// Options describes one batch run.
type Options struct {
	CandidatePath string
	RequiredPath  string
	Skills        []string
	Stdin         io.Reader
	Stdout        io.Writer
}

// Resolution is the outcome for a single input skill.
type Resolution struct {
	Origin     string `json:"origin"`
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Canonical  string `json:"canonical"`
	Mapped     bool   `json:"mapped"`
}

// Report is written to stdout as JSON at the end of a run.
type Report struct {
	RunID       string              `json:"runId"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Semantic    bool                `json:"semantic"`
	Skills      []Resolution        `json:"skills"`
	Coverage    metrics.Coverage    `json:"coverage"`
	Comparison  *skills.Comparison  `json:"comparison,omitempty"`
	Top         []skills.SkillCount `json:"top,omitempty"`
}

// App canonicalizes a batch of skills and reports the result.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	matcher *skills.Matcher
	stats   skills.StatsStore
	opts    Options
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, matcher *skills.Matcher, stats skills.StatsStore, opts Options) *App {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	return &App{
		cfg:     cfg,
		logger:  logger.With("component", "bootstrap"),
		matcher: matcher,
		stats:   stats,
		opts:    opts,
	}
}

// Run processes the configured inputs and writes the report.
func (a *App) Run(ctx context.Context) error {
	report, err := a.Process(ctx)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(a.opts.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Process builds the report without writing it.
func (a *App) Process(ctx context.Context) (Report, error) {
	batches, err := a.collect(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		RunID:       uuid.NewString(),
		GeneratedAt: util.NowUTC(),
		Semantic:    a.matcher.SemanticEnabled(),
		Skills:      []Resolution{},
	}
	logger := a.logger.With("run_id", report.RunID)

	statsFailed := false
	for _, b := range batches {
		for _, raw := range b.skills {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
			canonical, mapped := a.matcher.Lookup(raw)
			report.Skills = append(report.Skills, Resolution{
				Origin:     b.origin,
				Input:      raw,
				Normalized: a.matcher.Normalize(raw),
				Canonical:  canonical,
				Mapped:     mapped,
			})
			report.Coverage.Observe(mapped)
			if statsFailed || a.stats == nil {
				continue
			}
			if err := a.stats.Increment(ctx, canonical); err != nil {
				// tallies are best effort, keep canonicalizing
				logger.Warn("skill stats unavailable", "error", apperrors.Wrap("stats_error", "increment", err))
				statsFailed = true
			}
		}
	}

	candidate, hasCandidate := batchOf(batches, OriginCandidate)
	required, hasRequired := batchOf(batches, OriginRequired)
	if hasCandidate && hasRequired {
		cmp := a.matcher.Compare(candidate, required)
		report.Comparison = &cmp
	}

	if a.stats != nil && !statsFailed && a.cfg.Stats.Top > 0 {
		top, err := a.stats.Top(ctx, a.cfg.Stats.Top)
		if err != nil {
			logger.Warn("skill stats unavailable", "error", apperrors.Wrap("stats_error", "top", err))
		} else {
			report.Top = top
		}
	}

	logger.Info("skills canonicalized",
		"total", report.Coverage.Total,
		"mapped", report.Coverage.Mapped,
		"coverage", report.Coverage.Ratio(),
	)
	return report, nil
}

type batch struct {
	origin string
	skills []string
}

func batchOf(batches []batch, origin string) ([]string, bool) {
	for _, b := range batches {
		if b.origin == origin {
			return b.skills, true
		}
	}
	return nil, false
}

func (a *App) collect(ctx context.Context) ([]batch, error) {
	var batches []batch
	switch {
	case a.opts.CandidatePath != "" || a.opts.RequiredPath != "":
		var candidate, required []string
		g, gctx := errgroup.WithContext(ctx)
		if a.opts.CandidatePath != "" {
			g.Go(func() error {
				var err error
				candidate, err = readSkillFile(gctx, a.opts.CandidatePath)
				return err
			})
		}
		if a.opts.RequiredPath != "" {
			g.Go(func() error {
				var err error
				required, err = readSkillFile(gctx, a.opts.RequiredPath)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if a.opts.CandidatePath != "" {
			batches = append(batches, batch{origin: OriginCandidate, skills: candidate})
		}
		if a.opts.RequiredPath != "" {
			batches = append(batches, batch{origin: OriginRequired, skills: required})
		}
		if len(a.opts.Skills) > 0 {
			batches = append(batches, batch{origin: OriginArg, skills: a.opts.Skills})
		}
	case len(a.opts.Skills) > 0:
		batches = append(batches, batch{origin: OriginArg, skills: a.opts.Skills})
	default:
		lines, err := readSkills(ctx, a.opts.Stdin)
		if err != nil {
			return nil, apperrors.Wrap("invalid_input", "read stdin", err)
		}
		batches = append(batches, batch{origin: OriginStdin, skills: lines})
	}

	total := 0
	for _, b := range batches {
		total += len(b.skills)
	}
	if total == 0 {
		return nil, apperrors.Wrap("invalid_input", "no skills to canonicalize", nil)
	}
	return batches, nil
}

func readSkillFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap("invalid_input", "open skill file", err)
	}
	defer f.Close()
	lines, err := readSkills(ctx, f)
	if err != nil {
		return nil, apperrors.Wrap("invalid_input", fmt.Sprintf("read skill file %s", path), err)
	}
	return lines, nil
}

// readSkills returns one skill per line, skipping blank lines and # comments.
func readSkills(ctx context.Context, r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
