package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{"nil", nil, []string{}},
		{"blank only", []string{"", "  ", "\t"}, []string{}},
		{"trims", []string{"  chicken "}, []string{"chicken"}},
		{"case-insensitive duplicates keep first spelling", []string{"Garlic", "garlic", "GARLIC"}, []string{"Garlic"}},
		{"order preserved", []string{"b", "a", "B", "c"}, []string{"b", "a", "c"}},
		{"duplicates after trimming", []string{"soup", " soup "}, []string{"soup"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.keywords))
		})
	}
}

func TestCompile_NoUsableKeywordsMatchesNothing(t *testing.T) {
	for _, keywords := range [][]string{nil, {}, {""}, {"   ", ""}} {
		expr, ok := Compile(keywords)
		assert.False(t, ok, "keywords %q", keywords)
		assert.Nil(t, expr)
	}
}

func TestCompile_OneOrPerKeywordOverEveryField(t *testing.T) {
	expr, ok := Compile([]string{"Chicken", "GARLIC"})
	require.True(t, ok)

	and, isAnd := expr.(And)
	require.True(t, isAnd, "root must be And, got %T", expr)
	require.Len(t, and.Terms, 2)

	for i, needle := range []string{"chicken", "garlic"} {
		or, isOr := and.Terms[i].(Or)
		require.True(t, isOr, "term %d must be Or, got %T", i, and.Terms[i])
		require.Len(t, or.Terms, len(SearchableFields))

		for j, field := range SearchableFields {
			assert.Equal(t, Contains{Field: field, Needle: needle}, or.Terms[j])
		}
	}
}

func TestCompile_DuplicateKeywordsCompileOnce(t *testing.T) {
	expr, ok := Compile([]string{"pasta", "Pasta", " pasta"})
	require.True(t, ok)

	and := expr.(And)
	assert.Len(t, and.Terms, 1)
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "title", FieldTitle.String())
	assert.Equal(t, "author.name", FieldAuthorName.String())
	assert.Equal(t, "ingredients.name", FieldIngredientName.String())
	assert.Equal(t, "unknown", Field(99).String())
}
