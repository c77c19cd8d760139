package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg together with every
// problem found in it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// Column names are case sensitive, so dedupe exactly.
	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" || seen[x] {
				continue
			}
			seen[x] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.InputPath = strings.TrimSpace(out.InputPath)
	out.Pattern = strings.TrimSpace(out.Pattern)
	out.OutputFile = strings.TrimSpace(out.OutputFile)
	out.Columns.Policy = strings.ToLower(strings.TrimSpace(out.Columns.Policy))
	out.Columns.AllowList = trimList(out.Columns.AllowList)
	out.Preview.Columns = trimList(out.Preview.Columns)
	out.Log.Level = strings.ToLower(strings.TrimSpace(out.Log.Level))

	if out.InputPath == "" {
		out.InputPath = "./"
	}
	if out.Pattern == "" {
		out.Pattern = "*.xlsx"
	}

	// ---- Validation rules ----

	if out.OutputFile == "" {
		res.addErr("output_file is required")
	} else if !strings.HasSuffix(strings.ToLower(out.OutputFile), ".xlsx") {
		res.addWarn("output_file %q does not end in .xlsx; spreadsheet apps may not open it.", out.OutputFile)
	}

	if out.TopN <= 0 {
		res.addErr("top_n must be > 0")
	}

	switch out.Columns.Policy {
	case PolicyKeepAll:
	case PolicyAllowList:
		if len(out.Columns.AllowList) == 0 {
			res.addErr("columns.allow_list must not be empty when columns.policy=%s", PolicyAllowList)
		}
	default:
		res.addErr("columns.policy must be %s or %s, got %q", PolicyKeepAll, PolicyAllowList, out.Columns.Policy)
	}

	for i, r := range out.Scoring.CompanySizeTiers {
		if r.Score < 0 || r.Score > 3 {
			res.addErr("scoring.company_size_tiers[%d].score must be 0..3", i)
		}
		if len(r.Any) == 0 {
			res.addErr("scoring.company_size_tiers[%d].any must have at least 1 term", i)
		}
		for j, term := range r.Any {
			if term == "" {
				res.addErr("scoring.company_size_tiers[%d].any[%d] cannot be empty", i, j)
			}
		}
	}
	if len(out.Scoring.CompanySizeTiers) == 0 {
		res.addWarn("scoring.company_size_tiers is empty; every lead will get CompanyScore 0.")
	}

	if out.Preview.Rows < 0 {
		res.addErr("preview.rows must be >= 0")
	}

	switch out.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		res.addWarn("log.level %q is unknown; falling back to info.", out.Log.Level)
	}

	return out, res
}
