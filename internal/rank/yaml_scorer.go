// internal/rank/yaml_scorer.go
package rank

import (
	"strings"

	"leadselector/internal/config"
	"leadselector/internal/domain"
)

// Weights of the TotalScore components.
const (
	WeightCompany      = 1.0
	WeightMultiCountry = 2.0
	WeightEmail        = 1.0
	WeightPhone        = 1.0

	// MaxTotalScore is reached by a top-tier company with several countries,
	// an email and a phone.
	MaxTotalScore = 3*WeightCompany + WeightMultiCountry + WeightEmail + WeightPhone
)

// YAMLScorer scores company size with the configured tier rules.
type YAMLScorer struct {
	Cfg config.Config
}

func (s YAMLScorer) Score(lead *domain.Lead) {
	lead.CompanyScore = CompanyScore(lead.JobCompanySize, s.Cfg.Scoring.CompanySizeTiers)
	lead.MultiCountry = MultiCountry(lead.CountryCount)
	lead.TotalScore = TotalScore(lead)
}

// CompanyScore returns the score of the first tier with a needle contained in
// the lower-cased size text. Matching is plain substring search, so digit
// needles also hit unrelated numbers ("2019" contains "201").
func CompanyScore(size domain.Cell, tiers []config.Rule) int {
	if size.IsNull() {
		return 0
	}
	text := strings.ToLower(size.Value)

	for _, r := range tiers {
		for _, needle := range r.Any {
			if strings.Contains(text, strings.ToLower(needle)) {
				return r.Score
			}
		}
	}
	return 0
}

func MultiCountry(countryCount int) int {
	if countryCount > 1 {
		return 1
	}
	return 0
}

func TotalScore(lead *domain.Lead) float64 {
	return float64(lead.CompanyScore)*WeightCompany +
		float64(lead.MultiCountry)*WeightMultiCountry +
		float64(lead.HasEmail)*WeightEmail +
		float64(lead.HasPhone)*WeightPhone
}
