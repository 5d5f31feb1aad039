package drive

import (
	"Bakify-Web/domain"
	"Bakify-Web/entities"
	"Bakify-Web/internal/utils/logger"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type (
	// BackupService locates and fetches the authoritative backup
	// payload for one account. The three round-trips are strictly
	// sequential and a failure at any step aborts the whole load.
	BackupService interface {
		LoadBackup(ctx context.Context, accessToken string) (entities.Backup, error)
	}

	backupService struct {
		driveRepository DriveRepository
		folderName      string
		fileName        string
		log             *logger.Logger
	}
)

func NewBackupService(driveRepository DriveRepository, folderName, fileName string, log *logger.Logger) BackupService {
	return &backupService{
		driveRepository: driveRepository,
		folderName:      folderName,
		fileName:        fileName,
		log:             log.With("service", "BackupService"),
	}
}

func (s *backupService) LoadBackup(ctx context.Context, accessToken string) (entities.Backup, error) {
	folderID, err := s.driveRepository.FindFolder(ctx, accessToken, s.folderName)
	if err != nil {
		return entities.Backup{}, err
	}

	fileID, err := s.driveRepository.FindFileInFolder(ctx, accessToken, s.fileName, folderID)
	if err != nil {
		return entities.Backup{}, err
	}

	content, err := s.driveRepository.DownloadFile(ctx, accessToken, fileID)
	if err != nil {
		return entities.Backup{}, err
	}

	// json.Unmarshal silently no-ops on the literal null, so require a
	// JSON object before decoding.
	body := bytes.TrimSpace(content)
	if len(body) == 0 || body[0] != '{' {
		return entities.Backup{}, fmt.Errorf("%w: payload is not a JSON object", domain.ErrMalformedBackup)
	}

	var backup entities.Backup
	if err := json.Unmarshal(body, &backup); err != nil {
		return entities.Backup{}, fmt.Errorf("%w: %v", domain.ErrMalformedBackup, err)
	}

	s.log.Info("backup loaded", "file_id", fileID, "recipes", len(backup.Recipes), "images", len(backup.Images))
	return backup, nil
}
