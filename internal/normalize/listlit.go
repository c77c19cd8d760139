package normalize

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var errNotList = errors.New("not a list literal")

// ParseList parses a list or tuple literal whose items are scalars, as it
// appears when a list is stringified into a spreadsheet cell:
//
//	['US', 'UK', "DE"]   (1, 2.5, None)   ('solo',)   []
//
// Items are quoted strings (single or double quotes, backslash escapes),
// numbers, None, True or False. Nested containers, sets, dicts and a
// parenthesised single value without a trailing comma are rejected.
func ParseList(s string) ([]string, error) {
	p := &listParser{s: strings.TrimSpace(s)}
	if p.s == "" {
		return nil, errNotList
	}

	var closer byte
	switch p.s[0] {
	case '[':
		closer = ']'
	case '(':
		closer = ')'
	default:
		return nil, errNotList
	}
	p.pos = 1

	var items []string
	trailingComma := false
	for {
		p.skipSpace()
		if p.eof() {
			return nil, errors.Errorf("unterminated %q", p.s[0])
		}
		if p.peek() == closer {
			p.pos++
			break
		}

		item, err := p.scalar()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		trailingComma = false

		p.skipSpace()
		if p.eof() {
			return nil, errors.Errorf("unterminated %q", p.s[0])
		}
		switch c := p.peek(); c {
		case ',':
			p.pos++
			trailingComma = true
		case closer:
		default:
			return nil, errors.Errorf("unexpected %q at offset %d", c, p.pos)
		}
	}

	p.skipSpace()
	if !p.eof() {
		return nil, errors.Errorf("trailing input at offset %d", p.pos)
	}
	if closer == ')' && len(items) == 1 && !trailingComma {
		return nil, errNotList
	}
	return items, nil
}

type listParser struct {
	s   string
	pos int
}

func (p *listParser) eof() bool  { return p.pos >= len(p.s) }
func (p *listParser) peek() byte { return p.s[p.pos] }

func (p *listParser) skipSpace() {
	for !p.eof() && strings.IndexByte(" \t\r\n", p.peek()) >= 0 {
		p.pos++
	}
}

func (p *listParser) scalar() (string, error) {
	c := p.peek()
	switch {
	case c == '\'' || c == '"':
		return p.quoted(c)
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case isIdentStart(c):
		start := p.pos
		for !p.eof() && (isIdentStart(p.peek()) || isDigit(p.peek())) {
			p.pos++
		}
		switch word := p.s[start:p.pos]; word {
		case "None", "True", "False":
			return word, nil
		default:
			return "", errors.Errorf("unsupported name %q", word)
		}
	default:
		return "", errors.Errorf("unexpected %q at offset %d", c, p.pos)
	}
}

func (p *listParser) quoted(q byte) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		p.pos++
		switch c {
		case q:
			return b.String(), nil
		case '\\':
			if p.eof() {
				return "", errors.New("unterminated escape")
			}
			e := p.peek()
			p.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"':
				b.WriteByte(e)
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		case '\n':
			return "", errors.New("newline in string")
		default:
			b.WriteByte(c)
		}
	}
	return "", errors.New("unterminated string")
}

func (p *listParser) number() (string, error) {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	for !p.eof() {
		c := p.peek()
		prev := p.s[p.pos-1]
		if isDigit(c) || isIdentStart(c) || c == '.' ||
			((c == '-' || c == '+') && (prev == 'e' || prev == 'E')) {
			p.pos++
			continue
		}
		break
	}

	lit := p.s[start:p.pos]
	clean := strings.ReplaceAll(lit, "_", "")
	switch strings.ToLower(strings.TrimLeft(clean, "+-")) {
	case "inf", "infinity", "nan":
		return "", errors.Errorf("unsupported name %q", lit)
	}
	if _, err := strconv.ParseFloat(clean, 64); err == nil {
		return lit, nil
	}
	if _, err := strconv.ParseInt(clean, 0, 64); err == nil {
		return lit, nil
	}
	return "", errors.Errorf("bad number %q", lit)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
