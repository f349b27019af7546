package search

import (
	"errors"
	"fmt"
	"strings"

	"recipe-backend/internal/shared/utils"
)

// Dialect selects the placeholder syntax and lower-casing function of
// generated SQL.
type Dialect int

const (
	Postgres Dialect = iota // $1, $2, ... and LOWER
	SQLite                  // ? and go_lower
)

// SQLiteLowerFunc is the Unicode lower-casing function the sqlite store
// registers on every connection. The built-in LOWER only folds ASCII.
const SQLiteLowerFunc = "go_lower"

var (
	ErrEmptyExpression = errors.New("search: empty boolean expression")
	ErrUnknownField    = errors.New("search: unknown field")
	ErrUnknownExpr     = errors.New("search: unknown expression node")
)

// Table aliases the generated predicates refer to. The enclosing query must
// select from recipes AS r LEFT JOIN authors AS a ON a.id = r.author_id.
const (
	RecipeAlias = "r"
	AuthorAlias = "a"
)

// likeEscaper escapes LIKE metacharacters so needles match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SQLTranslator turns an Expr into a WHERE clause with bound arguments.
// Keyword text is never interpolated into the SQL string.
type SQLTranslator struct {
	dialect Dialect
	args    []any
}

func NewSQLTranslator(dialect Dialect) *SQLTranslator {
	return &SQLTranslator{dialect: dialect}
}

// Translate returns the WHERE clause (without the keyword) and its arguments.
func (t *SQLTranslator) Translate(e Expr) (string, []any, error) {
	t.args = nil

	where, err := t.translate(e)
	if err != nil {
		return "", nil, err
	}

	args := t.args
	t.args = nil
	return where, args, nil
}

func (t *SQLTranslator) translate(e Expr) (string, error) {
	switch n := e.(type) {
	case Contains:
		return t.contains(n)
	case Or:
		return t.join(n.Terms, utils.JoinWithOr)
	case And:
		return t.join(n.Terms, utils.JoinWithAnd)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownExpr, e)
	}
}

func (t *SQLTranslator) join(terms []Expr, joiner func([]string) string) (string, error) {
	if len(terms) == 0 {
		return "", ErrEmptyExpression
	}

	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		part, err := t.translate(term)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + joiner(parts) + ")", nil
}

func (t *SQLTranslator) contains(c Contains) (string, error) {
	switch c.Field {
	case FieldTitle:
		return t.like(RecipeAlias+".title", c.Needle), nil
	case FieldDescription:
		return t.like(RecipeAlias+".description", c.Needle), nil
	case FieldInstructions:
		return t.like(RecipeAlias+".instructions", c.Needle), nil
	case FieldAuthorName:
		return t.like(AuthorAlias+".name", c.Needle), nil
	case FieldIngredientName:
		// Evaluated per keyword, so two keywords may match two different
		// ingredients of the same recipe.
		return fmt.Sprintf(
			"EXISTS (SELECT 1 FROM ingredients i WHERE i.recipe_id = %s.id AND %s)",
			RecipeAlias, t.like("i.name", c.Needle),
		), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownField, int(c.Field))
	}
}

func (t *SQLTranslator) like(column, needle string) string {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(needle)) + "%"
	t.args = append(t.args, pattern)
	return fmt.Sprintf(`%s(%s) LIKE %s ESCAPE '\'`, t.lower(), column, t.placeholder())
}

func (t *SQLTranslator) lower() string {
	if t.dialect == SQLite {
		return SQLiteLowerFunc
	}
	return "LOWER"
}

func (t *SQLTranslator) placeholder() string {
	if t.dialect == Postgres {
		return fmt.Sprintf("$%d", len(t.args))
	}
	return "?"
}
