package rank

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadselector/internal/config"
	"leadselector/internal/domain"
)

func TestCompanyScore_DefaultTiers(t *testing.T) {
	tiers := config.DefaultCompanySizeTiers()

	tests := []struct {
		size domain.Cell
		want int
	}{
		{domain.Null, 0},
		{domain.Value("1001-5000 employees"), 3},
		{domain.Value("5001-10,000"), 3},
		{domain.Value("Large Enterprise"), 3},
		{domain.Value("201-500"), 2},
		{domain.Value("MEDIUM"), 2},
		{domain.Value("501-1000"), 2},
		{domain.Value("Small business"), 1},
		{domain.Value("11-50"), 1},
		{domain.Value("2-10"), 1},
		{domain.Value("Founded 2019"), 2},
		{domain.Value("self-employed"), 0},
		{domain.Value(""), 0},
	}

	for _, tc := range tests {
		t.Run(tc.size.Value, func(t *testing.T) {
			assert.Equal(t, tc.want, CompanyScore(tc.size, tiers))
		})
	}
}

func TestCompanyScore_CustomTiers(t *testing.T) {
	tiers := []config.Rule{{Tag: "corp", Score: 3, Any: []string{"CORP"}}}
	assert.Equal(t, 3, CompanyScore(domain.Value("MegaCorp Inc"), tiers))
	assert.Equal(t, 0, CompanyScore(domain.Value("1001"), tiers))
	assert.Equal(t, 0, CompanyScore(domain.Value("large"), nil))
}

func TestMultiCountry(t *testing.T) {
	assert.Equal(t, 0, MultiCountry(0))
	assert.Equal(t, 0, MultiCountry(1))
	assert.Equal(t, 1, MultiCountry(2))
	assert.Equal(t, 1, MultiCountry(3))
}

func TestYAMLScorer_TotalScoreInvariant(t *testing.T) {
	cfg, err := config.Preset(config.ModeTop25)
	require.NoError(t, err)
	s := YAMLScorer{Cfg: cfg}

	sizes := []domain.Cell{domain.Null, domain.Value("large"), domain.Value("201"), domain.Value("small"), domain.Value("n/a")}
	for _, size := range sizes {
		for countries := 0; countries <= 3; countries++ {
			for email := 0; email <= 1; email++ {
				for phone := 0; phone <= 1; phone++ {
					lead := &domain.Lead{JobCompanySize: size, CountryCount: countries, HasEmail: email, HasPhone: phone}
					s.Score(lead)

					want := float64(lead.CompanyScore) + 2*float64(lead.MultiCountry) + float64(email) + float64(phone)
					assert.Equal(t, want, lead.TotalScore)
					assert.GreaterOrEqual(t, lead.TotalScore, 0.0)
					assert.LessOrEqual(t, lead.TotalScore, MaxTotalScore)
				}
			}
		}
	}
}

func TestYAMLScorer_Scenarios(t *testing.T) {
	cfg, err := config.Preset(config.ModeTop25)
	require.NoError(t, err)

	lead := &domain.Lead{JobCompanySize: domain.Value("1001-5000 employees"), CountryCount: 3, HasEmail: 1, HasPhone: 1}
	YAMLScorer{Cfg: cfg}.Score(lead)

	assert.Equal(t, 3, lead.CompanyScore)
	assert.Equal(t, 1, lead.MultiCountry)
	assert.Equal(t, MaxTotalScore, lead.TotalScore)
}

func leads(scores ...float64) []*domain.Lead {
	out := make([]*domain.Lead, len(scores))
	for i, s := range scores {
		out[i] = &domain.Lead{TotalScore: s, LinkedinUsername: domain.Value(fmt.Sprintf("u%d", i))}
	}
	return out
}

func names(rows []*domain.Lead) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.LinkedinUsername.Value
	}
	return out
}

func TestTop(t *testing.T) {
	rows := leads(1, 3, 2, 3, 0, 2)

	got := Top(rows, 4)
	assert.Equal(t, []string{"u1", "u3", "u2", "u5"}, names(got), "ties keep merged order")
	assert.Equal(t, []string{"u0", "u1", "u2", "u3", "u4", "u5"}, names(rows), "input untouched")

	assert.Len(t, Top(rows, 100), 6)
	assert.Empty(t, Top(rows, 0))
	assert.Empty(t, Top(nil, 5))
}

func TestTop_NonIncreasing(t *testing.T) {
	rows := leads(0, 6, 1, 5, 2, 4, 3, 3, 6, 0)
	got := Top(rows, len(rows))
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].TotalScore, got[i].TotalScore)
	}
}

func TestScoreAllAndTopTable(t *testing.T) {
	cfg, err := config.Preset(config.ModeTop300)
	require.NoError(t, err)

	tbl := &domain.Table{
		Columns: []string{domain.ColLinkedinUsername},
		Rows: []*domain.Lead{
			{LinkedinUsername: domain.Value("low")},
			{LinkedinUsername: domain.Value("high"), HasEmail: 1, CountryCount: 2},
		},
	}
	ScoreAll(tbl, YAMLScorer{Cfg: cfg})

	top := TopTable(tbl, 1)
	assert.Equal(t, tbl.Columns, top.Columns)
	require.Len(t, top.Rows, 1)
	assert.Equal(t, "high", top.Rows[0].LinkedinUsername.Value)
	assert.Equal(t, 3.0, top.Rows[0].TotalScore)
}
