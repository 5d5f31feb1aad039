package catalog

import (
	"Bakify-Web/domain"
	"Bakify-Web/entities"
	"sort"
	"strings"
)

const imageDataPrefix = "data:image/jpeg;base64,"

// BuildCatalog turns a parsed backup payload into an immutable catalog.
// Record order is preserved; images are attached by the last path
// segment of each record's imageUri; the category set is deduplicated
// and sorted ascending.
func BuildCatalog(backup entities.Backup) *domain.Catalog {
	recipes := make([]domain.Recipe, 0, len(backup.Recipes))
	for _, rec := range backup.Recipes {
		recipe := domain.Recipe{
			UUID:            rec.UUID,
			Title:           rec.Title,
			Description:     rec.Description,
			Category:        rec.Category,
			Tags:            rec.Tags,
			PrepTimeMinutes: rec.PrepTimeMinutes,
			CookTimeMinutes: rec.CookTimeMinutes,
			Servings:        rec.Servings,
			IsFavorite:      rec.IsFavorite,
			Ingredients:     rec.Ingredients,
			Instructions:    rec.Instructions,
			Nutrition:       rec.Nutrition,
			Notes:           rec.Notes,
			Source:          rec.Source,
			ImageURI:        rec.ImageURI,
		}
		if rec.ImageURI != "" {
			key := rec.ImageURI[strings.LastIndex(rec.ImageURI, "/")+1:]
			if encoded, ok := backup.Images[key]; ok {
				recipe.ImageData = imageDataPrefix + encoded
			}
		}
		recipes = append(recipes, recipe)
	}

	return &domain.Catalog{
		Recipes:    recipes,
		Categories: collectCategories(recipes),
	}
}

func collectCategories(recipes []domain.Recipe) []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, recipe := range recipes {
		if recipe.Category == "" {
			continue
		}
		if _, ok := seen[recipe.Category]; ok {
			continue
		}
		seen[recipe.Category] = struct{}{}
		categories = append(categories, recipe.Category)
	}
	sort.Strings(categories)
	return categories
}
