package main

import (
	"flag"

	"leadselector/internal/config"
)

type options struct {
	configPath  string
	mode        string
	input       string
	pattern     string
	output      string
	top         int
	columns     string
	logLevel    string
	writeConfig string
}

func registerFlags(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "optional YAML config file")
	fs.StringVar(&o.mode, "mode", "", "preset: top25 (25 rows, allow-listed columns) or top300 (300 rows, all columns)")
	fs.StringVar(&o.input, "input", "", "directory scanned for workbooks (default ./)")
	fs.StringVar(&o.pattern, "pattern", "", "file glob inside the input directory (default *.xlsx)")
	fs.StringVar(&o.output, "output", "", "output workbook path")
	fs.IntVar(&o.top, "top", 0, "number of leads to export")
	fs.StringVar(&o.columns, "columns", "", "column policy: keep_all or allow_list")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the effective config to this path and exit")
	return o
}

// apply copies explicitly set flags over cfg. Unset flags leave the preset
// and config file values alone.
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = o.input
		case "pattern":
			cfg.Pattern = o.pattern
		case "output":
			cfg.OutputFile = o.output
		case "top":
			cfg.TopN = o.top
		case "columns":
			cfg.Columns.Policy = o.columns
		case "log-level":
			cfg.Log.Level = o.logLevel
		}
	})
}
