package snbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oakenshield/nbt/tag"
)

// Config controls Stringify's indentation. The zero Config renders the
// most compact form: no spaces after separators, everything on one line.
type Config struct {
	// Indent is the unit repeated once per nesting level. An empty
	// Indent keeps compounds and lists on a single line; a non-empty
	// one breaks compounds, and "complex" list elements, onto their
	// own lines (spec §4.E "Formatter").
	Indent string
}

// Option configures a Config.
type Option func(*Config)

// WithIndentSpaces sets the indentation unit to n spaces.
func WithIndentSpaces(n int) Option {
	return func(c *Config) { c.Indent = strings.Repeat(" ", n) }
}

// WithIndentString sets the raw indentation unit verbatim.
func WithIndentString(s string) Option {
	return func(c *Config) { c.Indent = s }
}

// Stringify renders v (a *tag.Compound, *tag.List, primitive, bool, or
// string) as SNBT text.
func Stringify(v any, opts ...Option) (string, error) {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var sb strings.Builder
	if err := writeValue(&sb, v, 0, cfg); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func writeValue(sb *strings.Builder, v any, depth int, cfg *Config) error {
	switch t := v.(type) {
	case *tag.Compound:
		return writeCompound(sb, t, depth, cfg)
	case *tag.List:
		return writeList(sb, t, depth, cfg)
	case int8:
		fmt.Fprintf(sb, "%db", t)
	case int16:
		fmt.Fprintf(sb, "%ds", t)
	case int32:
		fmt.Fprintf(sb, "%d", t)
	case int64:
		fmt.Fprintf(sb, "%dl", t)
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 32))
		sb.WriteByte('f')
	case float64:
		sb.WriteString(formatDouble(t))
	case bool:
		if t {
			sb.WriteString("1b")
		} else {
			sb.WriteString("0b")
		}
	case string:
		writeQuotedString(sb, t)
	case []int8:
		writeTypedArray(sb, "B", len(t), func(i int) string { return fmt.Sprintf("%db", t[i]) })
	case []int32:
		writeTypedArray(sb, "I", len(t), func(i int) string { return strconv.Itoa(int(t[i])) })
	case []int64:
		writeTypedArray(sb, "L", len(t), func(i int) string { return fmt.Sprintf("%dl", t[i]) })
	default:
		return fmt.Errorf("snbt: value of type %T is not a representable tag", v)
	}

	return nil
}

// formatDouble ensures the rendered literal always carries a decimal
// point or exponent, so a bare whole number like 5.0 does not round-trip
// as an INT when re-parsed.
func formatDouble(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

func writeTypedArray(sb *strings.Builder, prefix string, n int, elem func(int) string) {
	sb.WriteByte('[')
	sb.WriteString(prefix)
	sb.WriteByte(';')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(elem(i))
	}
	sb.WriteByte(']')
}

func writeCompound(sb *strings.Builder, c *tag.Compound, depth int, cfg *Config) error {
	if c.Len() == 0 {
		sb.WriteString("{}")
		return nil
	}

	keys := c.Keys()

	sb.WriteByte('{')
	nested := cfg.Indent != ""
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		if nested {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(cfg.Indent, depth+1))
		}
		writeKey(sb, k)
		sb.WriteByte(':')
		if nested {
			sb.WriteByte(' ')
		}

		v, _ := c.Get(k)
		if err := writeValue(sb, v, depth+1, cfg); err != nil {
			return err
		}
	}
	if nested {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(cfg.Indent, depth))
	}
	sb.WriteByte('}')

	return nil
}

func writeList(sb *strings.Builder, l *tag.List, depth int, cfg *Config) error {
	if l.Len() == 0 {
		sb.WriteString("[]")
		return nil
	}

	nested := cfg.Indent != "" && isComplex(l.Elem)

	sb.WriteByte('[')
	for i, v := range l.Values() {
		if i > 0 {
			sb.WriteByte(',')
			if cfg.Indent != "" && !nested {
				sb.WriteByte(' ')
			}
		}
		if nested {
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(cfg.Indent, depth+1))
		}
		if err := writeValue(sb, v, depth+1, cfg); err != nil {
			return err
		}
	}
	if nested {
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(cfg.Indent, depth))
	}
	sb.WriteByte(']')

	return nil
}

// isComplex reports whether a list of elem-typed elements should break
// onto its own lines: compounds, nested lists and typed arrays do,
// scalars stay inline.
func isComplex(elem tag.ID) bool {
	return elem == tag.CompoundID || elem == tag.ListID ||
		elem == tag.ByteArray || elem == tag.IntArray || elem == tag.LongArray
}

func writeKey(sb *strings.Builder, key string) {
	if reKey.MatchString(key) {
		sb.WriteString(key)
		return
	}

	writeQuotedString(sb, key)
}

// writeQuotedString picks whichever of ' or " needs fewer escapes,
// breaking ties in favor of ".
func writeQuotedString(sb *strings.Builder, s string) {
	singles := strings.Count(s, "'")
	doubles := strings.Count(s, "\"")

	quote := byte('"')
	if singles < doubles {
		quote = '\''
	}

	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || c == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(quote)
}
