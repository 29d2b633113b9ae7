package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Lines
	}{
		{"plain", "a\nb\nc", Lines{"a", "b", "c"}},
		{"blank lines dropped", "a\n\n\nb", Lines{"a", "b"}},
		{"windows line endings", "a\r\nb\r\n", Lines{"a", "b"}},
		{"whitespace-only lines dropped", "a\n   \nb", Lines{"a", "b"}},
		{"empty input", "", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitLines(tc.raw))
		})
	}
}

func TestCoerce_Int(t *testing.T) {
	spec := FieldSpec{Name: "salary", Kind: KindInt, Required: true}

	v, err := Coerce(spec, " 50000 ")
	require.NoError(t, err)
	assert.Equal(t, 50000, v)

	_, err = Coerce(spec, "50k")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCoerce_TagsDedupeOnParse(t *testing.T) {
	spec := FieldSpec{Name: "tags", Kind: KindTags}

	v, err := Coerce(spec, "go, sql, go ,  ,docker")
	require.NoError(t, err)
	assert.Equal(t, Tags{"go", "sql", "docker"}, v)
}

func TestFormatValue_RoundTrips(t *testing.T) {
	assert.Equal(t, "50000", FormatValue(FieldSpec{Kind: KindInt}, float64(50000)))
	assert.Equal(t, "a\nb", FormatValue(FieldSpec{Kind: KindLines}, []any{"a", "b"}))
	assert.Equal(t, "go, sql", FormatValue(FieldSpec{Kind: KindTags}, []any{"go", "sql"}))
	assert.Equal(t, "x", FormatValue(FieldSpec{Kind: KindString}, "x"))
	assert.Equal(t, "", FormatValue(FieldSpec{Kind: KindString}, nil))
}
