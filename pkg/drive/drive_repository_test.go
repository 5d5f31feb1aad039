package drive

import (
	"Bakify-Web/domain"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestMapDriveErrorUnauthorized(t *testing.T) {
	apiErr := &googleapi.Error{Code: http.StatusUnauthorized, Message: "Invalid Credentials"}

	assert.ErrorIs(t, mapDriveError(apiErr), domain.ErrDriveUnauthorized)

	// wrapped API errors are unwrapped before matching
	wrapped := fmt.Errorf("files.list: %w", apiErr)
	assert.ErrorIs(t, mapDriveError(wrapped), domain.ErrDriveUnauthorized)
}

func TestMapDriveErrorTransport(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "forbidden", err: &googleapi.Error{Code: http.StatusForbidden}},
		{name: "rate limited", err: &googleapi.Error{Code: http.StatusTooManyRequests}},
		{name: "server error", err: &googleapi.Error{Code: http.StatusInternalServerError}},
		{name: "plain network error", err: errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapDriveError(tt.err)
			assert.NotErrorIs(t, mapped, domain.ErrDriveUnauthorized)
			assert.ErrorIs(t, mapped, tt.err, "original error stays inspectable")
		})
	}
}
