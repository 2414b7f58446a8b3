package snbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakenshield/nbt/tag"
)

func TestParseEmptyCompound(t *testing.T) {
	v, err := Parse("{}")
	require.NoError(t, err)
	c, ok := v.(*tag.Compound)
	require.True(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestParseScalarSuffixes(t *testing.T) {
	cases := []struct {
		text string
		want any
	}{
		{"127b", int8(127)},
		{"-1b", int8(-1)},
		{"30000s", int16(30000)},
		{"5", int32(5)},
		{"-70000", int32(-70000)},
		{"123456789l", int64(123456789)},
		{"3.14f", float32(3.14)},
		{"3.14", float64(3.14)},
		{"2.5d", float64(2.5)},
		{"1e10", float64(1e10)},
		{"true", true},
		{"false", false},
	}

	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			v, err := Parse(c.text)
			require.NoError(t, err)
			require.Equal(t, c.want, v)
		})
	}
}

func TestParseBareString(t *testing.T) {
	v, err := Parse("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", v)
}

func TestParseQuotedStrings(t *testing.T) {
	v, err := Parse(`"hello world"`)
	require.NoError(t, err)
	require.Equal(t, "hello world", v)

	_, err = Parse(`'it''s'`)
	require.Error(t, err) // doubled quotes end the string early, leaving trailing input

	v, err = Parse(`"she said \"hi\""`)
	require.NoError(t, err)
	require.Equal(t, `she said "hi"`, v)
}

func TestParseCompoundWithTypedValues(t *testing.T) {
	v, err := Parse(`{x:127b, name:"Steve", health:20.0d, pos:[1.0,2.0,3.0]}`)
	require.NoError(t, err)

	c := v.(*tag.Compound)
	x, _ := c.Get("x")
	require.Equal(t, int8(127), x)
	name, _ := c.Get("name")
	require.Equal(t, "Steve", name)
	health, _ := c.Get("health")
	require.Equal(t, 20.0, health)

	pos, _ := c.Get("pos")
	l := pos.(*tag.List)
	require.Equal(t, 3, l.Len())
	require.Equal(t, tag.Double, l.Elem)
}

func TestParseList(t *testing.T) {
	v, err := Parse("[1,2,3]")
	require.NoError(t, err)

	l := v.(*tag.List)
	require.Equal(t, 3, l.Len())
	require.Equal(t, tag.Int, l.Elem)
	require.Equal(t, int32(1), l.At(0))
}

func TestParseEmptyList(t *testing.T) {
	v, err := Parse("[]")
	require.NoError(t, err)

	l := v.(*tag.List)
	require.Equal(t, 0, l.Len())
	require.Equal(t, tag.End, l.Elem)
}

func TestParseHeterogeneousListRejected(t *testing.T) {
	_, err := Parse("[1, true]")
	require.Error(t, err)
}

func TestParseTypedArrays(t *testing.T) {
	v, err := Parse("[B;1b,-1b,127b]")
	require.NoError(t, err)
	require.Equal(t, []int8{1, -1, 127}, v)

	v, err = Parse("[I;1,2,3]")
	require.NoError(t, err)
	require.Equal(t, []int32{1, 2, 3}, v)

	v, err = Parse("[L;1,2,3]")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, v)
}

func TestParseEmptyTypedArray(t *testing.T) {
	v, err := Parse("[I;]")
	require.NoError(t, err)
	require.Equal(t, []int32{}, v)
}

func TestParseNestedCompound(t *testing.T) {
	v, err := Parse(`{a:{b:{c:1}}}`)
	require.NoError(t, err)

	a := v.(*tag.Compound)
	inner, ok := a.Get("a")
	require.True(t, ok)
	require.IsType(t, &tag.Compound{}, inner)
}

func TestParseQuotedKey(t *testing.T) {
	v, err := Parse(`{"weird key":1}`)
	require.NoError(t, err)

	c := v.(*tag.Compound)
	val, ok := c.Get("weird key")
	require.True(t, ok)
	require.Equal(t, int32(1), val)
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("{} garbage")
	require.Error(t, err)
}

func TestParseRejectsUnterminatedString(t *testing.T) {
	_, err := Parse(`"unterminated`)
	require.Error(t, err)
}

func TestParseRejectsMissingColon(t *testing.T) {
	_, err := Parse(`{a 1}`)
	require.Error(t, err)
}
