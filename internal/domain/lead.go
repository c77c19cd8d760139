package domain

import (
	"strconv"
	"time"
)

// Column names as they appear in the input workbooks.
const (
	ColLinkedinUsername = "LinkedinUsername"
	ColLinkedinURL      = "LinkedinUrl"
	ColEmail            = "Email"
	ColPhoneNumbers     = "PhoneNumbers"
	ColCountries        = "Countries"
	ColJobCompanySize   = "JobCompanySize"
	ColLastJobTitle     = "LastJobTitle"
	ColSourceFile       = "Source_File"
)

// Derived column names, appended after the input columns on export.
const (
	ColCountryCount = "CountryCount"
	ColHasEmail     = "HasEmail"
	ColHasPhone     = "HasPhone"
	ColCompanyScore = "CompanyScore"
	ColMultiCountry = "MultiCountry"
	ColTotalScore   = "TotalScore"
)

var DerivedColumns = []string{
	ColCountryCount,
	ColHasEmail,
	ColHasPhone,
	ColCompanyScore,
	ColMultiCountry,
	ColTotalScore,
}

// Kind is the spreadsheet type a cell was read as.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindBool
)

// DateLayout is the text form of date cells.
const DateLayout = "2006-01-02 15:04:05"

// Cell is a nullable spreadsheet value. The zero Cell is null. Value always
// holds the text form; Kind says how to write it back.
type Cell struct {
	Value string
	Valid bool
	Kind  Kind
}

func Value(s string) Cell { return Cell{Value: s, Valid: true} }

// Number wraps the text of a numeric cell, e.g. "1234" or "0.5".
func Number(s string) Cell { return Cell{Value: s, Valid: true, Kind: KindNumber} }

func Date(t time.Time) Cell {
	return Cell{Value: t.Format(DateLayout), Valid: true, Kind: KindDate}
}

func Bool(b bool) Cell {
	if b {
		return Cell{Value: "True", Valid: true, Kind: KindBool}
	}
	return Cell{Value: "False", Valid: true, Kind: KindBool}
}

var Null = Cell{}

func (c Cell) IsNull() bool { return !c.Valid }

func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Typed returns the value as float64, time.Time, bool or string according to
// Kind. A value that does not parse as its kind falls back to text.
func (c Cell) Typed() any {
	switch c.Kind {
	case KindNumber:
		if f, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return f
		}
	case KindDate:
		if t, err := time.Parse(DateLayout, c.Value); err == nil {
			return t
		}
	case KindBool:
		return c.Value == "True"
	}
	return c.Value
}

type Lead struct {
	LinkedinUsername Cell
	LinkedinURL      Cell
	Email            Cell
	PhoneNumbers     Cell
	Countries        Cell
	JobCompanySize   Cell
	LastJobTitle     Cell
	SourceFile       Cell

	// Extra holds every other input column by name.
	Extra map[string]Cell

	CountryCount int
	HasEmail     int
	HasPhone     int
	CompanyScore int
	MultiCountry int
	TotalScore   float64
}

// field returns a pointer to the typed field backing a known column, or nil.
func (l *Lead) field(col string) *Cell {
	switch col {
	case ColLinkedinUsername:
		return &l.LinkedinUsername
	case ColLinkedinURL:
		return &l.LinkedinURL
	case ColEmail:
		return &l.Email
	case ColPhoneNumbers:
		return &l.PhoneNumbers
	case ColCountries:
		return &l.Countries
	case ColJobCompanySize:
		return &l.JobCompanySize
	case ColLastJobTitle:
		return &l.LastJobTitle
	case ColSourceFile:
		return &l.SourceFile
	default:
		return nil
	}
}

// Get returns the input value of col, null when the lead has no such column.
func (l *Lead) Get(col string) Cell {
	if f := l.field(col); f != nil {
		return *f
	}
	return l.Extra[col]
}

// Set stores an input value under col.
func (l *Lead) Set(col string, c Cell) {
	if f := l.field(col); f != nil {
		*f = c
		return
	}
	if l.Extra == nil {
		l.Extra = make(map[string]Cell)
	}
	l.Extra[col] = c
}

// Drop clears col, both for typed fields and extra columns.
func (l *Lead) Drop(col string) {
	if f := l.field(col); f != nil {
		*f = Null
		return
	}
	delete(l.Extra, col)
}

// Derived returns the value of a derived column as a number.
func (l *Lead) Derived(col string) (float64, bool) {
	switch col {
	case ColCountryCount:
		return float64(l.CountryCount), true
	case ColHasEmail:
		return float64(l.HasEmail), true
	case ColHasPhone:
		return float64(l.HasPhone), true
	case ColCompanyScore:
		return float64(l.CompanyScore), true
	case ColMultiCountry:
		return float64(l.MultiCountry), true
	case ColTotalScore:
		return l.TotalScore, true
	default:
		return 0, false
	}
}
