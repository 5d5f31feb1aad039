package catalog

import (
	"Bakify-Web/domain"
	"Bakify-Web/entities"
	"Bakify-Web/internal/utils/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackupService struct {
	backup entities.Backup
	err    error
	tokens []string
}

func (s *stubBackupService) LoadBackup(_ context.Context, accessToken string) (entities.Backup, error) {
	s.tokens = append(s.tokens, accessToken)
	return s.backup, s.err
}

func newTestService(t *testing.T, stub *stubBackupService) CatalogService {
	t.Helper()
	log, err := logger.New("dev")
	require.NoError(t, err)
	return NewCatalogService(stub, log)
}

func TestLoadCatalog(t *testing.T) {
	stub := &stubBackupService{
		backup: entities.Backup{
			Recipes: []entities.Recipe{
				{UUID: "a", Title: "Tea", Category: "Drinks"},
				{UUID: "b", Title: "Cake", Category: "Desserts"},
			},
		},
	}
	service := newTestService(t, stub)

	c, err := service.LoadCatalog(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Equal(t, []string{"token-123"}, stub.tokens)
	assert.Len(t, c.Recipes, 2)
	assert.Equal(t, []string{"Desserts", "Drinks"}, c.Categories)
}

func TestLoadCatalogPropagatesFailure(t *testing.T) {
	stub := &stubBackupService{err: domain.ErrBackupFileNotFound}
	service := newTestService(t, stub)

	c, err := service.LoadCatalog(context.Background(), "token-123")
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrBackupFileNotFound)
}

func TestListRecipesDerivedFields(t *testing.T) {
	service := newTestService(t, &stubBackupService{})
	c := &domain.Catalog{Recipes: []domain.Recipe{
		{UUID: "a", Title: "Banana Bread", Tags: "sweet, quick", PrepTimeMinutes: 15, CookTimeMinutes: 60},
	}}

	res := service.ListRecipes(c, domain.FilterState{})
	require.Len(t, res.Recipes, 1)
	assert.Equal(t, 75, res.Recipes[0].TotalTimeMinutes)
	assert.Equal(t, []string{"sweet", "quick"}, res.Recipes[0].TagList)
	assert.Equal(t, 1, res.Total)
}

func TestGetRecipeDetailNotFound(t *testing.T) {
	service := newTestService(t, &stubBackupService{})
	c := &domain.Catalog{}

	_, err := service.GetRecipeDetail(c, "missing")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetShareText(t *testing.T) {
	service := newTestService(t, &stubBackupService{})
	c := &domain.Catalog{Recipes: []domain.Recipe{{UUID: "a", Title: "Tea"}}}

	res, err := service.GetShareText(c, "a")
	require.NoError(t, err)
	assert.Equal(t, "Tea", res.Title)
	assert.Contains(t, res.Text, "— Shared from Bakify")

	_, err = service.GetShareText(c, "z")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestResolveDeepLinkResponse(t *testing.T) {
	service := newTestService(t, &stubBackupService{})
	c := &domain.Catalog{Recipes: []domain.Recipe{{UUID: "a", Title: "Tea"}}}

	res := service.ResolveDeepLink(c, "recipe/a")
	require.Equal(t, "recipe", res.View)
	require.NotNil(t, res.Recipe)
	assert.Equal(t, "Tea", res.Recipe.Title)

	res = service.ResolveDeepLink(c, "recipe/z")
	assert.Equal(t, "catalog", res.View)
	assert.Nil(t, res.Recipe)

	res = service.ResolveDeepLink(c, "")
	assert.Equal(t, "catalog", res.View)
}

func TestGetCategories(t *testing.T) {
	service := newTestService(t, &stubBackupService{})
	c := &domain.Catalog{Categories: []string{"Baking", "Drinks"}}

	res := service.GetCategories(c, "Drinks")
	assert.Equal(t, []string{"All", "Baking", "Drinks"}, res.Categories)
	assert.Equal(t, "Drinks", res.Active)
}
