package nbt

import (
	"fmt"
	"strings"

	"github.com/oakenshield/nbt/tag"
)

// definitionConfig controls Definition's output.
type definitionConfig struct {
	name string
}

// DefinitionOption configures Definition.
type DefinitionOption func(*definitionConfig)

// WithDefinitionName sets the identifier Definition uses for the root
// type in its sketch (default "Root").
func WithDefinitionName(name string) DefinitionOption {
	return func(c *definitionConfig) { c.name = name }
}

// Definition generates a human-readable schema sketch for tree: a
// best-effort type skeleton naming the tag kind held at each compound
// key and list position. It is explicitly non-core and not meant to
// round-trip bit-for-bit (spec §6); it exists to help a reader
// understand an unfamiliar tree's shape at a glance.
func Definition(tree any, opts ...DefinitionOption) (string, error) {
	root := tree
	if et, ok := tree.(EnvelopedTree); ok {
		root = et.Root
	}

	cfg := &definitionConfig{name: "Root"}
	for _, opt := range opts {
		opt(cfg)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s = ", cfg.name)
	if err := writeDefinition(&sb, root, 0); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func writeDefinition(sb *strings.Builder, v any, depth int) error {
	switch t := v.(type) {
	case *tag.Compound:
		return writeCompoundDefinition(sb, t, depth)
	case *tag.List:
		return writeListDefinition(sb, t, depth)
	default:
		id, ok := tag.TypeOf(v)
		if !ok {
			return fmt.Errorf("nbt: value of type %T is not a representable tag", v)
		}
		sb.WriteString(id.String())

		return nil
	}
}

func writeCompoundDefinition(sb *strings.Builder, c *tag.Compound, depth int) error {
	if c.Len() == 0 {
		sb.WriteString("{}")
		return nil
	}

	indent := strings.Repeat("  ", depth+1)

	sb.WriteString("{\n")
	for _, key := range c.Keys() {
		v, _ := c.Get(key)

		sb.WriteString(indent)
		fmt.Fprintf(sb, "%s: ", key)
		if err := writeDefinition(sb, v, depth+1); err != nil {
			return err
		}
		sb.WriteString(",\n")
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteByte('}')

	return nil
}

func writeListDefinition(sb *strings.Builder, l *tag.List, depth int) error {
	sb.WriteByte('[')
	if l.Len() == 0 {
		sb.WriteString(l.Elem.String())
		sb.WriteByte(']')
		return nil
	}

	if err := writeDefinition(sb, l.At(0), depth); err != nil {
		return err
	}
	sb.WriteString(", ...]")

	return nil
}
