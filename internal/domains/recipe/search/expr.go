// Package search compiles recipe keyword queries into a boolean expression
// tree and translates that tree into parameterized SQL.
//
// A query matches a recipe when every keyword is contained, ignoring case,
// in at least one of its searchable fields.
package search

// Field is a searchable attribute reachable from a recipe.
type Field int

const (
	FieldTitle Field = iota + 1
	FieldDescription
	FieldInstructions
	FieldAuthorName
	FieldIngredientName
)

// SearchableFields lists every field a keyword is matched against, in the
// order they appear in compiled expressions.
var SearchableFields = []Field{
	FieldTitle,
	FieldDescription,
	FieldInstructions,
	FieldAuthorName,
	FieldIngredientName,
}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldDescription:
		return "description"
	case FieldInstructions:
		return "instructions"
	case FieldAuthorName:
		return "author.name"
	case FieldIngredientName:
		return "ingredients.name"
	default:
		return "unknown"
	}
}

// Expr is a node of a compiled search expression.
type Expr interface {
	expr()
}

// Contains holds when Field contains Needle as a substring, ignoring case.
// Needle is stored lower-cased. For FieldIngredientName it holds when any
// ingredient of the recipe matches.
type Contains struct {
	Field  Field
	Needle string
}

// Or holds when at least one term holds.
type Or struct {
	Terms []Expr
}

// And holds when every term holds.
type And struct {
	Terms []Expr
}

func (Contains) expr() {}
func (Or) expr()       {}
func (And) expr()      {}
