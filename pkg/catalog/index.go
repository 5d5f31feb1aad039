package catalog

import (
	"Bakify-Web/domain"
	"strings"
)

// CategoryAll is the synthetic "no filter" pseudo-category, always
// first in the category list.
const CategoryAll = "All"

const deepLinkView = "recipe"

// Visible applies the filter state to the catalog and returns the
// matching records in catalog order. Category matching is exact and
// case-sensitive; search is case-insensitive substring containment over
// the populated searchable fields. Both filters compose with AND.
func Visible(c *domain.Catalog, filter domain.FilterState) []domain.Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.SearchQuery))

	visible := make([]domain.Recipe, 0, len(c.Recipes))
	for _, recipe := range c.Recipes {
		if filter.ActiveCategory != "" && recipe.Category != filter.ActiveCategory {
			continue
		}
		if query != "" && !matchesQuery(recipe, query) {
			continue
		}
		visible = append(visible, recipe)
	}
	return visible
}

func matchesQuery(recipe domain.Recipe, query string) bool {
	fields := []string{
		recipe.Title,
		recipe.Description,
		recipe.Ingredients,
		recipe.Category,
		recipe.Tags,
	}
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// Categories returns the filter-control list: "All" followed by the
// catalog's sorted category set.
func Categories(c *domain.Catalog) []string {
	categories := make([]string, 0, len(c.Categories)+1)
	categories = append(categories, CategoryAll)
	return append(categories, c.Categories...)
}

// FindRecipe resolves a uuid to the first matching record. An empty or
// unknown uuid reports not found rather than failing.
func FindRecipe(c *domain.Catalog, uuid string) (domain.Recipe, bool) {
	if uuid == "" {
		return domain.Recipe{}, false
	}
	for _, recipe := range c.Recipes {
		if recipe.UUID == uuid {
			return recipe, true
		}
	}
	return domain.Recipe{}, false
}

// ResolveDeepLink translates an external "recipe/<uuid>" token into a
// record. Any absent, malformed or unknown token reports not found, so
// the caller falls back to the catalog view.
func ResolveDeepLink(c *domain.Catalog, token string) (domain.Recipe, bool) {
	parts := strings.Split(token, "/")
	if len(parts) < 2 || parts[0] != deepLinkView {
		return domain.Recipe{}, false
	}
	return FindRecipe(c, parts[1])
}
