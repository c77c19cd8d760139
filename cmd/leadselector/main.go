package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"leadselector/internal/config"
	"leadselector/internal/ingest"
	"leadselector/internal/logx"
	"leadselector/internal/pipeline"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("leadselector", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(opts.configPath, opts.mode)
	if err != nil {
		fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return exitUsage
	}
	opts.apply(fs, &cfg)

	cfg, res := config.NormalizeAndValidate(cfg)

	log := logx.NewWithWriter(cfg.Log.Level, stderr)
	defer func() { _ = log.Sync() }()

	for _, w := range res.Warnings {
		log.Warn("config warning", zap.String("warning", w))
	}
	if !res.OK() {
		log.Error("invalid config", zap.Strings("errors", res.Errors))
		return exitUsage
	}

	if opts.writeConfig != "" {
		if err := config.SaveAtomic(opts.writeConfig, cfg); err != nil {
			log.Error("write config failed", zap.String("path", opts.writeConfig), zap.Error(err))
			return exitFailed
		}
		log.Info("config written", zap.String("path", opts.writeConfig))
		return exitOK
	}

	log.Debug("starting run",
		zap.String("mode", cfg.Mode),
		zap.String("input", cfg.InputPath),
		zap.String("output", cfg.OutputFile),
		zap.Int("top_n", cfg.TopN),
		zap.String("columns", cfg.Columns.Policy),
	)

	result, err := pipeline.New(cfg, log, stdout).Run()
	if err != nil {
		if errors.Is(err, ingest.ErrNoInputData) {
			log.Error("no spreadsheet could be loaded; nothing exported", zap.Error(err))
		} else {
			log.Error("run failed", zap.Error(err))
		}
		return exitFailed
	}

	log.Debug("run finished", zap.Int("merged", result.MergedRows), zap.Int("exported", result.Exported))
	return exitOK
}
