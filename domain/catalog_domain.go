package domain

import (
	"errors"
	"strings"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessShareRecipe     = "success get share text"
	MessageSuccessReloadCatalog   = "catalog reloaded successfully"
	MessageSuccessResolveLink     = "success resolve link"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedGetCategories   = "failed to get categories"
	MessageFailedShareRecipe     = "failed to get share text"
	MessageFailedReloadCatalog   = "failed to reload catalog"

	// User-facing empty states, kept verbatim from the Bakify apps.
	MessageNoBackupFolder = "No backup found. Create a backup in the Bakify app first."
	MessageNoBackupFile   = "No backup file found."
	MessageLoadFailed     = "Error loading recipes. Please try again."

	ErrBackupFolderNotFound = errors.New("backup folder not found")
	ErrBackupFileNotFound   = errors.New("backup file not found")
	ErrMalformedBackup      = errors.New("backup payload is not valid JSON")
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrCatalogNotLoaded     = errors.New("catalog not loaded for this session")
)

// LoadErrorMessage maps a load-sequence failure to the message shown in
// the viewer's empty state.
func LoadErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrBackupFolderNotFound):
		return MessageNoBackupFolder
	case errors.Is(err, ErrBackupFileNotFound):
		return MessageNoBackupFile
	default:
		return MessageLoadFailed
	}
}

type (
	// Recipe is one record of the catalog. Field values come straight
	// from the backup; ImageData is derived during the catalog build.
	Recipe struct {
		UUID            string `json:"uuid"`
		Title           string `json:"title"`
		Description     string `json:"description,omitempty"`
		Category        string `json:"category,omitempty"`
		Tags            string `json:"tags,omitempty"`
		PrepTimeMinutes int    `json:"prep_time_minutes"`
		CookTimeMinutes int    `json:"cook_time_minutes"`
		Servings        int    `json:"servings,omitempty"`
		IsFavorite      bool   `json:"is_favorite"`
		Ingredients     string `json:"ingredients,omitempty"`
		Instructions    string `json:"instructions,omitempty"`
		Nutrition       string `json:"nutrition,omitempty"`
		Notes           string `json:"notes,omitempty"`
		Source          string `json:"source,omitempty"`
		ImageURI        string `json:"image_uri,omitempty"`
		ImageData       string `json:"image_data,omitempty"`
	}

	// Catalog is the full ordered recipe list plus the derived category
	// set. Immutable once built; a reload produces a new Catalog.
	Catalog struct {
		Recipes    []Recipe
		Categories []string
	}

	// FilterState is the session's active category/search selection.
	FilterState struct {
		ActiveCategory string `json:"active_category,omitempty"`
		SearchQuery    string `json:"search_query,omitempty"`
	}

	RecipeDetail struct {
		Recipe
		TotalTimeMinutes int      `json:"total_time_minutes"`
		TagList          []string `json:"tag_list,omitempty"`
	}

	CatalogListResponse struct {
		Recipes []RecipeDetail `json:"recipes"`
		Total   int            `json:"total"`
		Filter  FilterState    `json:"filter"`
	}

	CategoryListResponse struct {
		Categories []string `json:"categories"`
		Active     string   `json:"active_category,omitempty"`
	}

	ShareResponse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}

	ResolveResponse struct {
		View   string        `json:"view"`
		Recipe *RecipeDetail `json:"recipe,omitempty"`
	}

	ReloadResponse struct {
		TotalRecipes int      `json:"total_recipes"`
		Categories   []string `json:"categories"`
	}
)

// TotalTime is prep plus cook time, absent values counting as zero.
// Derived on demand, never stored.
func (r Recipe) TotalTime() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// SplitTags splits the stored comma-separated tags string into trimmed,
// non-empty tags. Order is preserved and duplicates are kept.
func (r Recipe) SplitTags() []string {
	if r.Tags == "" {
		return nil
	}
	parts := strings.Split(r.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
