package catalog

import (
	"Bakify-Web/domain"
	"Bakify-Web/internal/utils/logger"
	"Bakify-Web/pkg/drive"
	"context"
)

type (
	CatalogService interface {
		LoadCatalog(ctx context.Context, accessToken string) (*domain.Catalog, error)
		ListRecipes(c *domain.Catalog, filter domain.FilterState) domain.CatalogListResponse
		GetRecipeDetail(c *domain.Catalog, uuid string) (domain.RecipeDetail, error)
		GetShareText(c *domain.Catalog, uuid string) (domain.ShareResponse, error)
		GetCategories(c *domain.Catalog, active string) domain.CategoryListResponse
		ResolveDeepLink(c *domain.Catalog, token string) domain.ResolveResponse
	}

	catalogService struct {
		backupService drive.BackupService
		log           *logger.Logger
	}
)

func NewCatalogService(backupService drive.BackupService, log *logger.Logger) CatalogService {
	return &catalogService{
		backupService: backupService,
		log:           log.With("service", "CatalogService"),
	}
}

// LoadCatalog runs the full locate-fetch-build sequence. Any failure
// aborts the load; the caller decides what to do with a previously
// built catalog.
func (s *catalogService) LoadCatalog(ctx context.Context, accessToken string) (*domain.Catalog, error) {
	backup, err := s.backupService.LoadBackup(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	c := BuildCatalog(backup)
	s.log.Info("catalog built", "recipes", len(c.Recipes), "categories", len(c.Categories))
	return c, nil
}

func (s *catalogService) ListRecipes(c *domain.Catalog, filter domain.FilterState) domain.CatalogListResponse {
	visible := Visible(c, filter)
	recipes := make([]domain.RecipeDetail, 0, len(visible))
	for _, recipe := range visible {
		recipes = append(recipes, toDetail(recipe))
	}
	return domain.CatalogListResponse{
		Recipes: recipes,
		Total:   len(recipes),
		Filter:  filter,
	}
}

func (s *catalogService) GetRecipeDetail(c *domain.Catalog, uuid string) (domain.RecipeDetail, error) {
	recipe, ok := FindRecipe(c, uuid)
	if !ok {
		return domain.RecipeDetail{}, domain.ErrRecipeNotFound
	}
	return toDetail(recipe), nil
}

func (s *catalogService) GetShareText(c *domain.Catalog, uuid string) (domain.ShareResponse, error) {
	recipe, ok := FindRecipe(c, uuid)
	if !ok {
		return domain.ShareResponse{}, domain.ErrRecipeNotFound
	}
	return domain.ShareResponse{
		Title: recipe.Title,
		Text:  ShareText(recipe),
	}, nil
}

func (s *catalogService) GetCategories(c *domain.Catalog, active string) domain.CategoryListResponse {
	return domain.CategoryListResponse{
		Categories: Categories(c),
		Active:     active,
	}
}

func (s *catalogService) ResolveDeepLink(c *domain.Catalog, token string) domain.ResolveResponse {
	recipe, ok := ResolveDeepLink(c, token)
	if !ok {
		return domain.ResolveResponse{View: "catalog"}
	}
	detail := toDetail(recipe)
	return domain.ResolveResponse{View: "recipe", Recipe: &detail}
}

func toDetail(recipe domain.Recipe) domain.RecipeDetail {
	return domain.RecipeDetail{
		Recipe:           recipe,
		TotalTimeMinutes: recipe.TotalTime(),
		TagList:          recipe.SplitTags(),
	}
}
