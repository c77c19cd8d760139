// Package pipeline runs one lead selection pass:
// load, normalize, score, rank, export.
package pipeline

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"leadselector/internal/config"
	"leadselector/internal/export"
	"leadselector/internal/ingest"
	"leadselector/internal/normalize"
	"leadselector/internal/rank"
)

type Pipeline struct {
	Cfg    config.Config
	Log    *zap.Logger
	Out    io.Writer
	Loader *ingest.Loader
	Scorer rank.Scorer
}

type Result struct {
	MergedRows int
	Exported   int
	OutputFile string
}

func New(cfg config.Config, log *zap.Logger, out io.Writer) *Pipeline {
	return &Pipeline{
		Cfg:    cfg,
		Log:    log,
		Out:    out,
		Loader: ingest.NewLoader(log, out),
		Scorer: rank.YAMLScorer{Cfg: cfg},
	}
}

// Run executes the pipeline. When loading fails nothing is written.
func (p *Pipeline) Run() (Result, error) {
	cfg := p.Cfg

	tbl, err := p.Loader.Load(cfg.InputPath, cfg.Pattern)
	if err != nil {
		return Result{}, err
	}

	norm := normalize.Normalizer{Columns: cfg.Columns, Log: p.Log}
	if err := norm.Apply(tbl); err != nil {
		return Result{}, errors.Wrap(err, "normalize")
	}

	rank.ScoreAll(tbl, p.Scorer)
	top := rank.TopTable(tbl, cfg.TopN)
	p.Log.Debug("ranked leads", zap.Int("merged", tbl.Len()), zap.Int("kept", top.Len()), zap.Int("top_n", cfg.TopN))

	if err := export.Write(cfg.OutputFile, top); err != nil {
		return Result{}, errors.Wrapf(err, "export %s", cfg.OutputFile)
	}
	p.Log.Info("exported leads", zap.String("path", cfg.OutputFile), zap.Int("rows", top.Len()))
	fmt.Fprintf(p.Out, "✅ Exported Top %d leads → %s\n", top.Len(), cfg.OutputFile)

	if cfg.Preview.Rows > 0 {
		fmt.Fprintf(p.Out, "\n🔝 Top %d Leads Preview:\n", cfg.Preview.Rows)
		if err := export.Preview(p.Out, top, cfg.Preview.Rows, cfg.Preview.Columns); err != nil {
			return Result{}, errors.Wrap(err, "preview")
		}
	}

	return Result{MergedRows: tbl.Len(), Exported: top.Len(), OutputFile: cfg.OutputFile}, nil
}
