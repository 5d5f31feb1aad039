package drive

import (
	"Bakify-Web/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

type (
	// DriveRepository wraps the Google Drive query and content
	// endpoints used by the backup loader. Every call authenticates
	// with the caller's own access token.
	DriveRepository interface {
		FindFolder(ctx context.Context, accessToken, name string) (string, error)
		FindFileInFolder(ctx context.Context, accessToken, name, folderID string) (string, error)
		DownloadFile(ctx context.Context, accessToken, fileID string) ([]byte, error)
	}

	driveRepository struct{}
)

func NewDriveRepository() DriveRepository {
	return &driveRepository{}
}

func (r *driveRepository) service(ctx context.Context, accessToken string) (*drive.Service, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	srv, err := drive.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	return srv, nil
}

func (r *driveRepository) FindFolder(ctx context.Context, accessToken, name string) (string, error) {
	srv, err := r.service(ctx, accessToken)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", escapeQueryTerm(name), folderMimeType)
	list, err := srv.Files.List().Q(query).Spaces("drive").Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", mapDriveError(err)
	}
	if len(list.Files) == 0 {
		return "", domain.ErrBackupFolderNotFound
	}

	// More than one folder may match; the first result wins.
	return list.Files[0].Id, nil
}

func (r *driveRepository) FindFileInFolder(ctx context.Context, accessToken, name, folderID string) (string, error) {
	srv, err := r.service(ctx, accessToken)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false", escapeQueryTerm(name), escapeQueryTerm(folderID))
	list, err := srv.Files.List().Q(query).Spaces("drive").Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return "", mapDriveError(err)
	}
	if len(list.Files) == 0 {
		return "", domain.ErrBackupFileNotFound
	}

	return list.Files[0].Id, nil
}

func (r *driveRepository) DownloadFile(ctx context.Context, accessToken, fileID string) ([]byte, error) {
	srv, err := r.service(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	// alt=media download; the full body is read before any parsing.
	resp, err := srv.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, mapDriveError(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read drive file content: %w", err)
	}
	return content, nil
}

// mapDriveError converts Drive API failures into the domain taxonomy so
// callers never have to inspect error strings.
func mapDriveError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusUnauthorized {
		return domain.ErrDriveUnauthorized
	}
	return fmt.Errorf("drive request failed: %w", err)
}

// escapeQueryTerm escapes a value embedded in a Drive query string.
func escapeQueryTerm(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	return strings.ReplaceAll(term, `'`, `\'`)
}
