package search

import "strings"

// Normalize trims every keyword and drops blanks and case-insensitive
// duplicates, keeping the first spelling of each. Order is preserved.
func Normalize(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))

	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		key := strings.ToLower(k)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, k)
	}

	return out
}

// Compile builds the expression for keywords: an And with one Or per
// keyword, each Or testing every searchable field.
// ok is false when no usable keyword remains; such a query matches nothing.
func Compile(keywords []string) (expr Expr, ok bool) {
	normalized := Normalize(keywords)
	if len(normalized) == 0 {
		return nil, false
	}

	terms := make([]Expr, 0, len(normalized))
	for _, k := range normalized {
		terms = append(terms, keywordExpr(strings.ToLower(k)))
	}

	return And{Terms: terms}, true
}

func keywordExpr(needle string) Expr {
	fields := make([]Expr, 0, len(SearchableFields))
	for _, f := range SearchableFields {
		fields = append(fields, Contains{Field: f, Needle: needle})
	}
	return Or{Terms: fields}
}
