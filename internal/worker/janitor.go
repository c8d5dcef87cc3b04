package worker

// janitor.go
// Background goroutine that reaps orphaned uploads. Photo uploads are
// fire-and-forget disk writes: when the owning record insert fails (or the
// user abandons the form) the file stays behind with no referencing
// inquiry_images/product_images row. The janitor periodically deletes
// unreferenced files once they are older than a grace period.

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/alanalzi/jalin-alam-project/internal/repository"

	"github.com/rs/zerolog/log"
)

const (
	janitorTickInterval = 1 * time.Hour
	// Grace period before an unreferenced file is considered orphaned —
	// long enough to cover a form that is still being filled in.
	janitorGracePeriod = 24 * time.Hour
)

// JanitorConfig holds the dependencies for the upload janitor.
type JanitorConfig struct {
	UploadDir     string
	UploadBaseURL string
	InquiryRepo   repository.InquiryRepository
	ProductRepo   repository.ProductRepository
}

// StartUploadJanitor launches the reaper goroutine. It respects the context
// for graceful shutdown.
func StartUploadJanitor(ctx context.Context, cfg JanitorConfig) {
	go func() {
		ticker := time.NewTicker(janitorTickInterval)
		defer ticker.Stop()

		log.Info().Str("dir", cfg.UploadDir).Msg("upload janitor: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("upload janitor: shutting down")
				return
			case <-ticker.C:
				sweep(ctx, cfg)
			}
		}
	}()
}

func sweep(ctx context.Context, cfg JanitorConfig) {
	referenced, err := referencedURLs(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("upload janitor: failed to list referenced images")
		return
	}

	entries, err := os.ReadDir(cfg.UploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Msg("upload janitor: failed to read upload dir")
		}
		return
	}

	cutoff := time.Now().Add(-janitorGracePeriod)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		url := path.Join(cfg.UploadBaseURL, entry.Name())
		if referenced[url] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(cfg.UploadDir, entry.Name())); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("upload janitor: remove failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info().Int("removed", removed).Msg("upload janitor: orphaned uploads removed")
	}
}

func referencedURLs(ctx context.Context, cfg JanitorConfig) (map[string]bool, error) {
	inquiryURLs, err := cfg.InquiryRepo.ImageURLs(ctx)
	if err != nil {
		return nil, err
	}
	productURLs, err := cfg.ProductRepo.ImageURLs(ctx)
	if err != nil {
		return nil, err
	}
	referenced := make(map[string]bool, len(inquiryURLs)+len(productURLs))
	for _, u := range inquiryURLs {
		referenced[u] = true
	}
	for _, u := range productURLs {
		referenced[u] = true
	}
	return referenced, nil
}
