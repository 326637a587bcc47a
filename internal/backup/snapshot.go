package backup

import (
	"archive/zip"
	"bufio"
	"bytes"
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

// ErrFileMissing indicates a collection file was not found in the archive.
var ErrFileMissing = errors.New("file not found in snapshot")

// writeSnapshot streams every collection into a zip archive at path.
func writeSnapshot(ctx context.Context, s *store.Store, path, version string) (*Manifest, error) {
	f, err := os.Create(path) //#nosec G304 -- Snapshot path is server-controlled
	if err != nil {
		return nil, fmt.Errorf("creating snapshot: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	manifest := &Manifest{
		Version:   version,
		CreatedAt: time.Now().UTC(),
	}

	if manifest.Counts.Categories, err = writeCollection(ctx, zw, categoriesFile, s.Categories); err != nil {
		return nil, err
	}
	if manifest.Counts.Slots, err = writeCollection(ctx, zw, slotsFile, s.Slots); err != nil {
		return nil, err
	}
	if manifest.Counts.Assignments, err = writeCollection(ctx, zw, assignmentsFile, s.Assignments); err != nil {
		return nil, err
	}
	if manifest.Counts.Floors, err = writeCollection(ctx, zw, floorsFile, s.Floors); err != nil {
		return nil, err
	}

	mw, err := zw.Create(manifestName)
	if err != nil {
		return nil, fmt.Errorf("creating manifest entry: %w", err)
	}
	if err := json.MarshalWrite(mw, manifest); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing snapshot: %w", err)
	}
	return manifest, f.Close()
}

// writeCollection streams one entity collection as JSONL into the archive.
func writeCollection[T any](ctx context.Context, zw *zip.Writer, name string, entity *store.Entity[T]) (int, error) {
	w, err := zw.Create(name)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", name, err)
	}

	count := 0
	for doc, err := range entity.List(ctx) {
		if err != nil {
			return count, fmt.Errorf("listing %s: %w", name, err)
		}
		if err := json.MarshalWrite(w, doc); err != nil {
			return count, fmt.Errorf("writing %s: %w", name, err)
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return count, fmt.Errorf("writing %s: %w", name, err)
		}
		count++
	}
	return count, nil
}

// readSnapshot loads every collection from a zip archive into the store.
func readSnapshot(ctx context.Context, s *store.Store, path string) (*Manifest, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer zr.Close()

	manifest, err := readManifest(zr)
	if err != nil {
		return nil, err
	}

	if err := readCollection(ctx, zr, categoriesFile, s.Categories, func(c *domain.Category) string { return c.ID }); err != nil {
		return nil, err
	}
	if err := readCollection(ctx, zr, slotsFile, s.Slots, func(sl *domain.Slot) string { return sl.ID }); err != nil {
		return nil, err
	}
	if err := readCollection(ctx, zr, assignmentsFile, s.Assignments, func(a *domain.Assignment) string { return a.SlotID }); err != nil {
		return nil, err
	}
	if err := readCollection(ctx, zr, floorsFile, s.Floors, func(f *domain.Floor) string { return f.ID }); err != nil {
		return nil, err
	}

	return manifest, nil
}

func readManifest(zr *zip.ReadCloser) (*Manifest, error) {
	rc, err := openFile(zr, manifestName)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var manifest Manifest
	if err := json.UnmarshalRead(rc, &manifest); err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return &manifest, nil
}

// readCollection streams one JSONL file from the archive into the store,
// overwriting documents that share an ID.
func readCollection[T any](ctx context.Context, zr *zip.ReadCloser, name string, entity *store.Entity[T], idOf func(*T) string) error {
	rc, err := openFile(zr, name)
	if err != nil {
		if errors.Is(err, ErrFileMissing) {
			// Older snapshots may predate a collection.
			return nil
		}
		return err
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		doc := new(T)
		if err := json.UnmarshalRead(bytes.NewReader(line), doc); err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		if err := entity.Put(ctx, idOf(doc), doc); err != nil {
			return fmt.Errorf("restoring %s: %w", name, err)
		}
	}
	return scanner.Err()
}

// openFile finds and opens a file from a zip archive.
func openFile(zr *zip.ReadCloser, path string) (io.ReadCloser, error) {
	for _, f := range zr.File {
		if f.Name == path {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFileMissing, path)
}
