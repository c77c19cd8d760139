package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lead(user, note string) *Lead {
	l := &Lead{}
	l.Set(ColLinkedinUsername, Value(user))
	if note != "" {
		l.Set("Note", Value(note))
	}
	return l
}

func TestCell(t *testing.T) {
	assert.True(t, Null.IsNull())
	assert.Equal(t, "", Null.String())
	assert.False(t, Value("").IsNull())
	assert.Equal(t, "x", Value("x").String())
}

func TestCell_Typed(t *testing.T) {
	day := time.Date(2023, 5, 1, 9, 15, 0, 0, time.UTC)

	assert.Equal(t, 1234.0, Number("1234").Typed())
	assert.Equal(t, "12 people", Number("12 people").Typed(), "unparsable number stays text")
	assert.Equal(t, day, Date(day).Typed())
	assert.Equal(t, "2023-05-01 09:15:00", Date(day).Value)
	assert.Equal(t, true, Bool(true).Typed())
	assert.Equal(t, "False", Bool(false).Value)
	assert.Equal(t, "01234", Value("01234").Typed())
}

func TestLead_GetSetDrop(t *testing.T) {
	l := lead("ann", "hi")
	assert.Equal(t, Value("ann"), l.LinkedinUsername)
	assert.Equal(t, Value("hi"), l.Get("Note"))
	assert.True(t, l.Get("Missing").IsNull())

	l.Drop(ColLinkedinUsername)
	l.Drop("Note")
	assert.True(t, l.LinkedinUsername.IsNull())
	assert.True(t, l.Get("Note").IsNull())
}

func TestLead_Derived(t *testing.T) {
	l := &Lead{CountryCount: 2, TotalScore: 4.5}
	v, ok := l.Derived(ColCountryCount)
	assert.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = l.Derived(ColTotalScore)
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)

	_, ok = l.Derived(ColEmail)
	assert.False(t, ok)
}

func TestTable_Append(t *testing.T) {
	a := &Table{Columns: []string{ColLinkedinUsername, ColSourceFile}, Rows: []*Lead{lead("a", "")}}
	b := &Table{Columns: []string{"Note", ColLinkedinUsername}, Rows: []*Lead{lead("b", "x"), lead("c", "")}}

	a.Append(b)
	assert.Equal(t, []string{ColLinkedinUsername, ColSourceFile, "Note"}, a.Columns)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "c", a.Rows[2].LinkedinUsername.Value)
}

func TestTable_Restrict(t *testing.T) {
	tbl := &Table{Columns: []string{"Note", ColLinkedinUsername, ColEmail}, Rows: []*Lead{lead("a", "x")}}

	tbl.Restrict([]string{ColEmail, ColLinkedinUsername, ColCountries})
	assert.Equal(t, []string{ColEmail, ColLinkedinUsername}, tbl.Columns)
	assert.True(t, tbl.Rows[0].Get("Note").IsNull())
	assert.Equal(t, "a", tbl.Rows[0].LinkedinUsername.Value)
}

func TestTable_AddColumn(t *testing.T) {
	tbl := &Table{}
	assert.True(t, tbl.AddColumn(ColEmail))
	assert.False(t, tbl.AddColumn(ColEmail))
	assert.True(t, tbl.HasColumn(ColEmail))
}
