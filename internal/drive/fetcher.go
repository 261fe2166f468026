package drive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// FetchOptions controls how snapshot tables are pulled from Drive.
type FetchOptions struct {
	FolderPath  string
	DownloadDir string
}

// Fetcher downloads all CSV table files from a Drive folder.
type Fetcher struct {
	service *Service
}

func NewFetcher(s *Service) *Fetcher {
	return &Fetcher{service: s}
}

// FetchSnapshot downloads every CSV in the configured folder into
// DownloadDir and returns the local paths.
func (f *Fetcher) FetchSnapshot(ctx context.Context, opts FetchOptions) ([]string, error) {
	if opts.DownloadDir == "" {
		return nil, fmt.Errorf("download dir is required")
	}
	if err := os.MkdirAll(opts.DownloadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download dir: %w", err)
	}

	folderID, err := f.service.FindFolderByPath(opts.FolderPath)
	if err != nil {
		return nil, err
	}

	files, err := f.service.ListFiles(folderID)
	if err != nil {
		return nil, err
	}

	var localPaths []string
	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if strings.ToLower(filepath.Ext(file.Name)) != ".csv" {
			continue
		}

		localPath := filepath.Join(opts.DownloadDir, file.Name)
		if err := f.downloadTo(file.ID, localPath); err != nil {
			return nil, fmt.Errorf("failed to download %s: %w", file.Name, err)
		}
		log.Info().Str("file", file.Name).Msg("snapshot file downloaded from drive")
		localPaths = append(localPaths, localPath)
	}

	return localPaths, nil
}

func (f *Fetcher) downloadTo(fileID, destPath string) error {
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return f.service.DownloadFile(fileID, out)
}
