package handlers

import (
	"Bakify-Web/domain"
	"Bakify-Web/internal/api/presenters"
	"Bakify-Web/pkg/catalog"
	"Bakify-Web/pkg/session"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error
		ResolveDeepLink(c *fiber.Ctx) error
		ReloadCatalog(c *fiber.Ctx) error
	}

	catalogHandler struct {
		sessionService session.SessionService
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(sessionService session.SessionService, catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{
		sessionService: sessionService,
		catalogService: catalogService,
	}
}

func (h *catalogHandler) currentSession(c *fiber.Ctx) (*session.Session, error) {
	sessionID := c.Locals("session_id").(string)
	return h.sessionService.Get(sessionID)
}

// GetRecipes returns the visible subset for the session's filter
// state. Query parameters, when present, update the stored filter
// first: selecting "All" clears the category.
func (h *catalogHandler) GetRecipes(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	filter := sess.Filter()
	args := c.Context().QueryArgs()
	if args.Has("category") {
		category := c.Query("category")
		if category == catalog.CategoryAll {
			category = ""
		}
		filter.ActiveCategory = category
	}
	if args.Has("q") {
		filter.SearchQuery = c.Query("q")
	}
	sess.SetFilter(filter)

	cat, err := sess.Catalog()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipes, err)
	}

	res := h.catalogService.ListRecipes(cat, filter)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *catalogHandler) GetRecipeDetail(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	cat, err := sess.Catalog()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.catalogService.GetRecipeDetail(cat, c.Params("uuid"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	cat, err := sess.Catalog()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetCategories, err)
	}

	res := h.catalogService.GetCategories(cat, sess.Filter().ActiveCategory)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) ShareRecipe(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	cat, err := sess.Catalog()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedShareRecipe, err)
	}

	res, err := h.catalogService.GetShareText(cat, c.Params("uuid"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedShareRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessShareRecipe)
}

// ResolveDeepLink maps a "recipe/<uuid>" token to a record. A missing
// or unknown token is not an error: the response routes the client
// back to the catalog view.
func (h *catalogHandler) ResolveDeepLink(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	cat, err := sess.Catalog()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipes, err)
	}

	res := h.catalogService.ResolveDeepLink(cat, c.Query("token"))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveLink)
}

// ReloadCatalog re-runs the whole load sequence. On success the new
// catalog replaces the old one atomically; on any failure except an
// expired Drive token the previous catalog stays in place.
func (h *catalogHandler) ReloadCatalog(c *fiber.Ctx) error {
	sess, err := h.currentSession(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetSession, err)
	}

	cat, err := h.catalogService.LoadCatalog(c.Context(), sess.DriveToken)
	if errors.Is(err, domain.ErrDriveUnauthorized) {
		h.sessionService.Delete(sess.ID)
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedUnauthorized, err)
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.LoadErrorMessage(err), err)
	}

	sess.ReplaceCatalog(cat)
	return presenters.SuccessResponse(c, domain.ReloadResponse{
		TotalRecipes: len(cat.Recipes),
		Categories:   catalog.Categories(cat),
	}, fiber.StatusOK, domain.MessageSuccessReloadCatalog)
}
