// Package snbt implements the stringified-NBT textual surface: Parse
// turns SNBT text into a tag tree, and Stringify (format.go) turns a
// tag tree back into SNBT text (spec §4.E "SNBT reader / writer").
package snbt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/oakenshield/nbt/errs"
	"github.com/oakenshield/nbt/tag"
)

var (
	reInt   = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)([bslBSL]?)$`)
	reFloat = regexp.MustCompile(`^[+-]?([0-9]+\.?|[0-9]*\.[0-9]+)([eE][+-]?[0-9]+)?([dfDF]?)$`)
	reKey   = regexp.MustCompile(`^[0-9A-Za-z_\-.+]+$`)
)

const unquotedDelims = ",]}: \t\n\r"

// Parse parses a single SNBT document into its tag value: a *tag.Compound,
// *tag.List, a primitive numeric type, a bool, or a string.
func Parse(s string) (any, error) {
	p := &parser{s: s}

	v, err := p.readTag()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.s) {
		return nil, errs.NewSnbtSyntax(p.pos, "unexpected trailing input %q", p.s[p.pos:])
	}

	return v, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// expect consumes b if it is the next byte, reporting whether it did.
func (p *parser) expect(b byte) bool {
	if !p.eof() && p.s[p.pos] == b {
		p.pos++
		return true
	}

	return false
}

func (p *parser) readTag() (any, error) {
	p.skipSpace()
	if p.eof() {
		return nil, errs.NewSnbtSyntax(p.pos, "unexpected end of input")
	}

	switch p.s[p.pos] {
	case '{':
		return p.readCompound()
	case '[':
		return p.readListOrArray()
	case '\'', '"':
		return p.readQuotedString()
	default:
		return p.readUnquoted()
	}
}

func (p *parser) readCompound() (*tag.Compound, error) {
	p.pos++ // '{'
	c := tag.NewCompound()

	p.skipSpace()
	if p.expect('}') {
		return c, nil
	}

	for {
		p.skipSpace()
		key, err := p.readKey()
		if err != nil {
			return nil, err
		}

		p.skipSpace()
		if !p.expect(':') {
			return nil, errs.NewSnbtSyntax(p.pos, "expected ':' after compound key %q", key)
		}

		val, err := p.readTag()
		if err != nil {
			return nil, err
		}
		c.Set(key, val)

		p.skipSpace()
		switch {
		case p.expect(','):
			continue
		case p.expect('}'):
			return c, nil
		default:
			return nil, errs.NewSnbtSyntax(p.pos, "expected ',' or '}' in compound")
		}
	}
}

func (p *parser) readKey() (string, error) {
	if !p.eof() && (p.s[p.pos] == '\'' || p.s[p.pos] == '"') {
		return p.readQuotedStringRaw()
	}

	start := p.pos
	for !p.eof() && reKey.MatchString(p.s[p.pos:p.pos+1]) {
		p.pos++
	}
	if p.pos == start {
		return "", errs.NewSnbtSyntax(p.pos, "expected compound key")
	}

	return p.s[start:p.pos], nil
}

func (p *parser) readListOrArray() (any, error) {
	p.pos++ // '['

	if p.pos+1 < len(p.s) && isArrayPrefixLetter(p.s[p.pos]) && p.s[p.pos+1] == ';' {
		letter := p.s[p.pos]
		p.pos += 2

		return p.readTypedArray(letter)
	}

	return p.readList()
}

func isArrayPrefixLetter(b byte) bool {
	return b == 'B' || b == 'I' || b == 'L'
}

func (p *parser) readList() (*tag.List, error) {
	p.skipSpace()
	if p.expect(']') {
		return tag.NewListOf(tag.End), nil
	}

	list := tag.NewList()
	for {
		v, err := p.readTag()
		if err != nil {
			return nil, err
		}
		if err := list.Append(v); err != nil {
			return nil, errs.NewSnbtSyntax(p.pos, "%v", err)
		}

		p.skipSpace()
		switch {
		case p.expect(','):
			p.skipSpace()
			continue
		case p.expect(']'):
			return list, nil
		default:
			return nil, errs.NewSnbtSyntax(p.pos, "expected ',' or ']' in list")
		}
	}
}

func (p *parser) readTypedArray(letter byte) (any, error) {
	p.skipSpace()

	switch letter {
	case 'B':
		return p.readTypedArrayElems(letter, func(v int64) any { return int8(v) })
	case 'I':
		return p.readTypedArrayElems(letter, func(v int64) any { return int32(v) })
	default:
		return p.readTypedArrayElems(letter, func(v int64) any { return v })
	}
}

// readTypedArrayElems parses a comma-separated run of integer literals
// (with or without the matching width suffix) and converts each with
// convert, returning a concrete []int8, []int32, or []int64.
func (p *parser) readTypedArrayElems(letter byte, convert func(int64) any) (any, error) {
	var values []any

	if !p.expect(']') {
		for {
			p.skipSpace()
			start := p.pos
			for !p.eof() && !strings.ContainsRune(unquotedDelims, rune(p.s[p.pos])) {
				p.pos++
			}
			token := p.s[start:p.pos]
			if token == "" {
				return nil, errs.NewSnbtSyntax(p.pos, "expected array element")
			}

			n, err := parseArrayElement(token, letter)
			if err != nil {
				return nil, errs.NewSnbtSyntax(start, "%v", err)
			}
			values = append(values, convert(n))

			p.skipSpace()
			switch {
			case p.expect(','):
				continue
			case p.expect(']'):
				goto done
			default:
				return nil, errs.NewSnbtSyntax(p.pos, "expected ',' or ']' in array")
			}
		}
	}

done:
	switch letter {
	case 'B':
		out := make([]int8, len(values))
		for i, v := range values {
			out[i] = v.(int8)
		}
		return out, nil
	case 'I':
		out := make([]int32, len(values))
		for i, v := range values {
			out[i] = v.(int32)
		}
		return out, nil
	default:
		out := make([]int64, len(values))
		for i, v := range values {
			out[i] = v.(int64)
		}
		return out, nil
	}
}

// parseArrayElement strips an optional matching width suffix (e.g. "1b"
// inside a B array) before parsing the integer at the width letter
// implies, so an out-of-range literal is rejected rather than silently
// truncated.
func parseArrayElement(token string, letter byte) (int64, error) {
	suffix, bits := map[byte]byte{'B': 'b', 'I': 'i', 'L': 'l'}[letter], map[byte]int{'B': 8, 'I': 32, 'L': 64}[letter]
	if n := len(token); n > 0 {
		last := token[n-1] | 0x20 // lowercase
		if last == suffix {
			token = token[:n-1]
		}
	}

	return strconv.ParseInt(token, 10, bits)
}

func (p *parser) readQuotedString() (string, error) {
	return p.readQuotedStringRaw()
}

func (p *parser) readQuotedStringRaw() (string, error) {
	quote := p.s[p.pos]
	p.pos++

	var sb strings.Builder
	for {
		if p.eof() {
			return "", errs.NewSnbtSyntax(p.pos, "unterminated string")
		}

		c := p.s[p.pos]
		switch {
		case c == quote:
			p.pos++
			return sb.String(), nil
		case c == '\\' && p.pos+1 < len(p.s) && (p.s[p.pos+1] == '\\' || p.s[p.pos+1] == quote):
			sb.WriteByte(p.s[p.pos+1])
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
}

func (p *parser) readUnquoted() (any, error) {
	start := p.pos
	for !p.eof() && !strings.ContainsRune(unquotedDelims, rune(p.s[p.pos])) {
		p.pos++
	}
	token := p.s[start:p.pos]
	if token == "" {
		return nil, errs.NewSnbtSyntax(p.pos, "expected a value")
	}

	if v, ok := parseIntLiteral(token); ok {
		return v, nil
	}
	if v, ok := parseFloatLiteral(token); ok {
		return v, nil
	}
	switch token {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return token, nil
}

func parseIntLiteral(token string) (any, bool) {
	m := reInt.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}

	numStr, suffix := token, ""
	if m[2] != "" {
		numStr = token[:len(token)-1]
		suffix = strings.ToLower(m[2])
	}

	switch suffix {
	case "b":
		v, err := strconv.ParseInt(numStr, 10, 8)
		if err != nil {
			return nil, false
		}
		return int8(v), true
	case "s":
		v, err := strconv.ParseInt(numStr, 10, 16)
		if err != nil {
			return nil, false
		}
		return int16(v), true
	case "l":
		v, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	default:
		v, err := strconv.ParseInt(numStr, 10, 32)
		if err != nil {
			return nil, false
		}
		return int32(v), true
	}
}

func parseFloatLiteral(token string) (any, bool) {
	m := reFloat.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}

	numStr, suffix := token, ""
	if m[3] != "" {
		numStr = token[:len(token)-1]
		suffix = strings.ToLower(m[3])
	}

	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return nil, false
	}

	if suffix == "f" {
		return float32(v), true
	}

	return v, true
}
