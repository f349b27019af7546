package search

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_SingleContains(t *testing.T) {
	where, args, err := NewSQLTranslator(Postgres).Translate(Contains{Field: FieldTitle, Needle: "soup"})
	require.NoError(t, err)

	assert.Equal(t, `LOWER(r.title) LIKE $1 ESCAPE '\'`, where)
	assert.Equal(t, []any{"%soup%"}, args)
}

func TestTranslate_PostgresNumbersPlaceholdersInOrder(t *testing.T) {
	expr, ok := Compile([]string{"chicken", "garlic"})
	require.True(t, ok)

	where, args, err := NewSQLTranslator(Postgres).Translate(expr)
	require.NoError(t, err)

	require.Len(t, args, 2*len(SearchableFields))
	for i := 1; i <= len(args); i++ {
		assert.Contains(t, where, "$"+strconv.Itoa(i)+" ")
	}
	assert.NotContains(t, where, "?")
	assert.Equal(t, "%chicken%", args[0])
	assert.Equal(t, "%garlic%", args[len(SearchableFields)])
	assert.Equal(t, 1, strings.Count(where, ") AND ("))
}

func TestTranslate_SQLiteUsesQuestionMarks(t *testing.T) {
	expr, _ := Compile([]string{"rice"})

	where, args, err := NewSQLTranslator(SQLite).Translate(expr)
	require.NoError(t, err)

	assert.Equal(t, len(args), strings.Count(where, "?"))
	assert.NotContains(t, where, "$1")
}

func TestTranslate_FieldColumns(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{FieldTitle, "LOWER(r.title)"},
		{FieldDescription, "LOWER(r.description)"},
		{FieldInstructions, "LOWER(r.instructions)"},
		{FieldAuthorName, "LOWER(a.name)"},
		{FieldIngredientName, "EXISTS (SELECT 1 FROM ingredients i WHERE i.recipe_id = r.id AND LOWER(i.name) LIKE"},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			where, _, err := NewSQLTranslator(Postgres).Translate(Contains{Field: tt.field, Needle: "x"})
			require.NoError(t, err)
			assert.Contains(t, where, tt.want)
		})
	}
}

func TestTranslate_SQLiteUsesUnicodeLower(t *testing.T) {
	where, _, err := NewSQLTranslator(SQLite).Translate(Contains{Field: FieldIngredientName, Needle: "x"})
	require.NoError(t, err)

	assert.Contains(t, where, SQLiteLowerFunc+"(i.name) LIKE ?")
	assert.NotContains(t, where, "LOWER(")
}

func TestTranslate_LowercasesUnicodeNeedle(t *testing.T) {
	_, args, err := NewSQLTranslator(SQLite).Translate(Contains{Field: FieldTitle, Needle: "CRÈME Brûlée"})
	require.NoError(t, err)

	assert.Equal(t, []any{"%crème brûlée%"}, args)
}

func TestTranslate_KeywordTextIsNeverInterpolated(t *testing.T) {
	expr, _ := Compile([]string{"'; DROP TABLE recipes; --"})

	where, args, err := NewSQLTranslator(Postgres).Translate(expr)
	require.NoError(t, err)

	assert.NotContains(t, where, "DROP")
	assert.Equal(t, "%'; drop table recipes; --%", args[0])
}

func TestTranslate_EscapesLikeMetacharacters(t *testing.T) {
	_, args, err := NewSQLTranslator(SQLite).Translate(Contains{Field: FieldTitle, Needle: `100%_a\b`})
	require.NoError(t, err)

	assert.Equal(t, []any{`%100\%\_a\\b%`}, args)
}

func TestTranslate_LowercasesNeedle(t *testing.T) {
	_, args, err := NewSQLTranslator(SQLite).Translate(Contains{Field: FieldTitle, Needle: "SoUp"})
	require.NoError(t, err)

	assert.Equal(t, []any{"%soup%"}, args)
}

func TestTranslate_Errors(t *testing.T) {
	tr := NewSQLTranslator(Postgres)

	_, _, err := tr.Translate(And{})
	assert.ErrorIs(t, err, ErrEmptyExpression)

	_, _, err = tr.Translate(Or{Terms: []Expr{Contains{Field: Field(42), Needle: "x"}}})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, _, err = tr.Translate(nil)
	assert.ErrorIs(t, err, ErrUnknownExpr)
}

func TestTranslate_TranslatorIsReusable(t *testing.T) {
	tr := NewSQLTranslator(Postgres)
	expr := Contains{Field: FieldTitle, Needle: "a"}

	first, firstArgs, err := tr.Translate(expr)
	require.NoError(t, err)
	second, secondArgs, err := tr.Translate(expr)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstArgs, secondArgs)
}
