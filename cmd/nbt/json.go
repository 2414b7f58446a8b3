package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oakenshield/nbt/tag"
)

// toJSON renders root as JSON text. This is a lossy convenience form:
// BYTE/SHORT/INT/LONG widths collapse to JSON's single number type, and
// a BYTE that started life as a Go bool renders as 0/1, not true/false.
func toJSON(root any, space int) (string, error) {
	v, err := toJSONValue(root)
	if err != nil {
		return "", err
	}

	var (
		out []byte
	)
	if space > 0 {
		out, err = json.MarshalIndent(v, "", strings.Repeat(" ", space))
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return "", fmt.Errorf("nbt: marshaling json: %w", err)
	}

	return string(out), nil
}

func toJSONValue(v any) (any, error) {
	switch t := v.(type) {
	case *tag.Compound:
		m := make(map[string]any, t.Len())
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			jv, err := toJSONValue(val)
			if err != nil {
				return nil, err
			}
			m[k] = jv
		}

		return m, nil
	case *tag.List:
		out := make([]any, 0, t.Len())
		for _, val := range t.Values() {
			jv, err := toJSONValue(val)
			if err != nil {
				return nil, err
			}
			out = append(out, jv)
		}

		return out, nil
	case []int8:
		out := make([]int8, len(t))
		copy(out, t)
		return out, nil
	case []int32:
		out := make([]int32, len(t))
		copy(out, t)
		return out, nil
	case []int64:
		out := make([]int64, len(t))
		copy(out, t)
		return out, nil
	case bool:
		return tag.AsByte(t), nil
	case int8, int16, int32, int64, float32, float64, string:
		return t, nil
	default:
		return nil, fmt.Errorf("nbt: value of type %T is not a representable tag", v)
	}
}
