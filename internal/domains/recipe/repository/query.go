package repository

// searchQuery wraps a translated search predicate into the recipe SELECT.
// Predicates refer to the r and a aliases (see search.RecipeAlias).
func searchQuery(where string) string {
	return `
        SELECT DISTINCT ` + recipeColumns + `
        FROM recipes r
        LEFT JOIN authors a ON a.id = r.author_id
        WHERE ` + where + `
        ORDER BY r.created_at, r.id
    `
}
