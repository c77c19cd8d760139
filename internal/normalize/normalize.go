package normalize

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"leadselector/internal/config"
	"leadselector/internal/domain"
)

// RequiredColumns always exist after Apply, null filled when no input file
// had them.
var RequiredColumns = []string{
	domain.ColLinkedinUsername,
	domain.ColLinkedinURL,
	domain.ColEmail,
	domain.ColPhoneNumbers,
	domain.ColCountries,
	domain.ColJobCompanySize,
	domain.ColLastJobTitle,
}

// Phone values that mean "no phone" even though the cell is filled.
var phoneSentinels = map[string]bool{
	"nan":    true,
	"[]":     true,
	"[null]": true,
}

type Normalizer struct {
	Columns config.Columns
	Log     *zap.Logger
}

// Apply enforces the column policy, guarantees the required columns and
// fills CountryCount, HasEmail and HasPhone on every row.
func (n Normalizer) Apply(t *domain.Table) error {
	switch n.Columns.Policy {
	case config.PolicyKeepAll:
	case config.PolicyAllowList:
		before := len(t.Columns)
		t.Restrict(n.Columns.AllowList)
		n.Log.Debug("restricted columns to allow-list", zap.Int("before", before), zap.Int("after", len(t.Columns)))
	default:
		return errors.Errorf("unknown column policy %q", n.Columns.Policy)
	}

	if added := EnsureColumns(t, RequiredColumns); len(added) > 0 {
		n.Log.Info("added missing columns", zap.Strings("columns", added))
	}

	for _, r := range t.Rows {
		r.CountryCount = CountCountries(r.Countries)
		r.HasEmail = HasEmail(r.Email)
		r.HasPhone = HasPhone(r.PhoneNumbers)
	}
	return nil
}

// EnsureColumns appends every missing column in cols and returns the ones it
// added.
func EnsureColumns(t *domain.Table, cols []string) []string {
	var added []string
	for _, c := range cols {
		if t.AddColumn(c) {
			added = append(added, c)
		}
	}
	return added
}

// CountCountries: null is 0, a list literal counts its items, any other text
// is a single country.
func CountCountries(c domain.Cell) int {
	if c.IsNull() {
		return 0
	}
	items, err := ParseList(c.Value)
	if err != nil {
		return 1
	}
	return len(items)
}

func HasEmail(c domain.Cell) int {
	if c.IsNull() {
		return 0
	}
	return 1
}

func HasPhone(c domain.Cell) int {
	if c.IsNull() || phoneSentinels[strings.ToLower(c.Value)] {
		return 0
	}
	return 1
}
