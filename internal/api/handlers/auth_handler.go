package handlers

import (
	"Bakify-Web/domain"
	"Bakify-Web/internal/api/presenters"
	"Bakify-Web/pkg/catalog"
	"Bakify-Web/pkg/jwt"
	"Bakify-Web/pkg/session"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		SignIn(c *fiber.Ctx) error
		SignOut(c *fiber.Ctx) error
	}

	authHandler struct {
		sessionService session.SessionService
		catalogService catalog.CatalogService
		jwtService     jwt.JWTService
		validator      *validator.Validate
	}
)

func NewAuthHandler(sessionService session.SessionService, catalogService catalog.CatalogService, jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		sessionService: sessionService,
		catalogService: catalogService,
		jwtService:     jwtService,
		validator:      validator,
	}
}

// SignIn exchanges a Google Drive access token for a session and runs
// the initial catalog load. An unauthorized token never produces a
// session; any other load failure still signs the user in and reports
// the empty-state notice, so the client can retry with a reload.
func (h *authHandler) SignIn(c *fiber.Ctx) error {
	req := new(domain.CreateSessionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, err)
	}

	cat, loadErr := h.catalogService.LoadCatalog(c.Context(), req.AccessToken)
	if errors.Is(loadErr, domain.ErrDriveUnauthorized) {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedUnauthorized, loadErr)
	}

	sess := h.sessionService.Create(req.AccessToken)
	res := domain.SessionResponse{
		Token: h.jwtService.GenerateSessionToken(sess.ID),
	}

	if loadErr != nil {
		res.Notice = domain.LoadErrorMessage(loadErr)
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSignIn)
	}

	sess.ReplaceCatalog(cat)
	res.CatalogLoaded = true
	res.TotalRecipes = len(cat.Recipes)
	res.Categories = catalog.Categories(cat)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSignIn)
}

func (h *authHandler) SignOut(c *fiber.Ctx) error {
	sessionID := c.Locals("session_id").(string)
	h.sessionService.Delete(sessionID)
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSignOut)
}
