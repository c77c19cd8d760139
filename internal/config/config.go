// internal/config/config.go
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"leadselector/internal/domain"
)

const (
	ModeTop25  = "top25"
	ModeTop300 = "top300"

	DefaultMode = ModeTop25
)

// Column retention policies.
const (
	PolicyKeepAll   = "keep_all"
	PolicyAllowList = "allow_list"
)

// Rule is one company-size tier: a size matching any needle scores Score.
type Rule struct {
	Tag   string   `yaml:"tag"`
	Score int      `yaml:"score"`
	Any   []string `yaml:"any"`
}

type Columns struct {
	Policy    string   `yaml:"policy"`
	AllowList []string `yaml:"allow_list"`
}

type Scoring struct {
	// CompanySizeTiers are tried in order, first match wins.
	CompanySizeTiers []Rule `yaml:"company_size_tiers"`
}

type Preview struct {
	Rows    int      `yaml:"rows"`
	Columns []string `yaml:"columns"`
}

type Log struct {
	Level string `yaml:"level"`
}

type Config struct {
	Mode       string `yaml:"mode"`
	InputPath  string `yaml:"input_path"`
	Pattern    string `yaml:"pattern"`
	OutputFile string `yaml:"output_file"`
	TopN       int    `yaml:"top_n"`

	Columns Columns `yaml:"columns"`
	Scoring Scoring `yaml:"scoring"`
	Preview Preview `yaml:"preview"`
	Log     Log     `yaml:"log"`
}

func DefaultAllowList() []string {
	return []string{
		domain.ColLinkedinUsername,
		domain.ColLinkedinURL,
		domain.ColEmail,
		domain.ColPhoneNumbers,
		domain.ColCountries,
		domain.ColJobCompanySize,
		domain.ColLastJobTitle,
		domain.ColSourceFile,
	}
}

func DefaultCompanySizeTiers() []Rule {
	return []Rule{
		{Tag: "large", Score: 3, Any: []string{"large", "1001", "5001"}},
		{Tag: "medium", Score: 2, Any: []string{"medium", "201", "1000"}},
		{Tag: "small", Score: 1, Any: []string{"small", "1", "50"}},
	}
}

func DefaultPreviewColumns() []string {
	return []string{
		domain.ColLinkedinUsername,
		domain.ColJobCompanySize,
		domain.ColCountries,
		domain.ColEmail,
		domain.ColPhoneNumbers,
		domain.ColTotalScore,
	}
}

// Preset returns the built-in configuration for a mode.
func Preset(mode string) (Config, error) {
	cfg := Config{
		Mode:      mode,
		InputPath: "./",
		Pattern:   "*.xlsx",
		Columns:   Columns{AllowList: DefaultAllowList()},
		Scoring:   Scoring{CompanySizeTiers: DefaultCompanySizeTiers()},
		Preview:   Preview{Rows: 5, Columns: DefaultPreviewColumns()},
		Log:       Log{Level: "info"},
	}

	switch mode {
	case ModeTop25:
		cfg.OutputFile = "Top_25_Leads.xlsx"
		cfg.TopN = 25
		cfg.Columns.Policy = PolicyAllowList
	case ModeTop300:
		cfg.OutputFile = "Top_300_Leads.xlsx"
		cfg.TopN = 300
		cfg.Columns.Policy = PolicyKeepAll
	default:
		return Config{}, errors.Errorf("unknown mode %q (want %s or %s)", mode, ModeTop25, ModeTop300)
	}
	return cfg, nil
}

// Load builds the effective config: the preset for the selected mode with the
// YAML file at path laid over it. mode, when non-empty, wins over the file's
// own mode key. An empty path yields the preset alone.
func Load(path, mode string) (Config, error) {
	var b []byte
	if path != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	if mode == "" {
		var peek struct {
			Mode string `yaml:"mode"`
		}
		if err := yaml.Unmarshal(b, &peek); err != nil {
			return Config{}, errors.Wrapf(err, "parse %s", path)
		}
		mode = peek.Mode
	}
	if mode == "" {
		mode = DefaultMode
	}

	cfg, err := Preset(mode)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse %s", path)
	}
	cfg.Mode = mode
	return cfg, nil
}
