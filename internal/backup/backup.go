// Package backup creates and restores zip snapshots of the document store.
// Each collection is written as a JSONL file so snapshots stay diffable and
// individual documents survive partial corruption.
package backup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tanamapapp/tanamap-server/internal/store"
)

// manifestName is the snapshot metadata file inside the archive.
const manifestName = "manifest.json"

// Collection filenames inside the archive.
const (
	categoriesFile  = "categories.jsonl"
	slotsFile       = "slots.jsonl"
	assignmentsFile = "assignments.jsonl"
	floorsFile      = "floors.jsonl"
)

// Manifest describes a snapshot.
type Manifest struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Counts    Counts    `json:"counts"`
}

// Counts records how many documents each collection contributed.
type Counts struct {
	Categories  int `json:"categories"`
	Slots       int `json:"slots"`
	Assignments int `json:"assignments"`
	Floors      int `json:"floors"`
}

// Service manages snapshot creation and listing.
type Service struct {
	store     *store.Store
	backupDir string
	version   string
	logger    *slog.Logger
}

// NewService creates a Service writing snapshots under backupDir.
func NewService(s *store.Store, backupDir, version string, logger *slog.Logger) *Service {
	return &Service{
		store:     s,
		backupDir: backupDir,
		version:   version,
		logger:    logger,
	}
}

// Info describes a snapshot on disk.
type Info struct {
	Path      string
	Size      int64
	CreatedAt time.Time
}

// Create writes a new snapshot and returns its path.
func (s *Service) Create(ctx context.Context) (*Info, error) {
	if err := os.MkdirAll(s.backupDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating backup dir: %w", err)
	}

	name := fmt.Sprintf("tanamap-%s.zip", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(s.backupDir, name)

	manifest, err := writeSnapshot(ctx, s.store, path, s.version)
	if err != nil {
		// Remove the partial archive so List never reports it.
		_ = os.Remove(path)
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat snapshot: %w", err)
	}

	s.logger.Info("Snapshot created",
		"path", path,
		"size", fi.Size(),
		"slots", manifest.Counts.Slots,
		"categories", manifest.Counts.Categories,
	)

	return &Info{Path: path, Size: fi.Size(), CreatedAt: manifest.CreatedAt}, nil
}

// List returns snapshots under the backup directory, newest first.
func (s *Service) List() ([]Info, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup dir: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:      filepath.Join(s.backupDir, e.Name()),
			Size:      fi.Size(),
			CreatedAt: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

// Restore loads a snapshot into the store. Existing documents with the same
// IDs are overwritten; documents absent from the snapshot are left alone.
func (s *Service) Restore(ctx context.Context, path string) (*Manifest, error) {
	manifest, err := readSnapshot(ctx, s.store, path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Snapshot restored",
		"path", path,
		"slots", manifest.Counts.Slots,
		"categories", manifest.Counts.Categories,
	)

	return manifest, nil
}
