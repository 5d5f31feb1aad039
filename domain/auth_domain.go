package domain

import "errors"

var (
	MessageSuccessSignIn  = "signed in successfully"
	MessageSuccessSignOut = "signed out successfully"

	MessageFailedSignIn       = "failed to sign in"
	MessageFailedUnauthorized = "google drive session expired, please sign in again"
	MessageFailedGetSession   = "failed to get session"

	ErrDriveUnauthorized = errors.New("google drive rejected the access token")
	ErrSessionNotFound   = errors.New("session not found")
)

type (
	CreateSessionRequest struct {
		AccessToken string `json:"access_token" validate:"required"`
	}

	SessionResponse struct {
		Token         string   `json:"token"`
		CatalogLoaded bool     `json:"catalog_loaded"`
		TotalRecipes  int      `json:"total_recipes"`
		Categories    []string `json:"categories,omitempty"`
		Notice        string   `json:"notice,omitempty"`
	}
)
