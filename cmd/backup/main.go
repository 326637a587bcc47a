// Package main provides a tool to snapshot and restore the document store.
//
// Usage:
//
//	DATA_PATH=~/TanaMap/data go run ./cmd/backup            # create a snapshot
//	DATA_PATH=~/TanaMap/data go run ./cmd/backup -list      # list snapshots
//	DATA_PATH=~/TanaMap/data go run ./cmd/backup -restore <path>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tanamapapp/tanamap-server/internal/backup"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

var (
	list    = flag.Bool("list", false, "List existing snapshots")
	restore = flag.String("restore", "", "Restore the given snapshot into the store")
)

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/TanaMap/data")
	}

	s, err := store.New(filepath.Join(dataPath, "db"), nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := backup.NewService(s, filepath.Join(dataPath, "backups"), "dev", logger)

	ctx := context.Background()

	switch {
	case *list:
		infos, err := svc.List()
		if err != nil {
			log.Fatalf("Failed to list snapshots: %v", err)
		}
		if len(infos) == 0 {
			fmt.Println("No snapshots found.")
			return
		}
		for _, info := range infos {
			fmt.Printf("%s\t%d bytes\t%s\n", info.Path, info.Size, info.CreatedAt.Format("2006-01-02 15:04:05"))
		}

	case *restore != "":
		manifest, err := svc.Restore(ctx, *restore)
		if err != nil {
			log.Fatalf("Failed to restore snapshot: %v", err)
		}
		fmt.Printf("Restored %d slots, %d categories, %d assignments, %d floors\n",
			manifest.Counts.Slots, manifest.Counts.Categories,
			manifest.Counts.Assignments, manifest.Counts.Floors)

	default:
		info, err := svc.Create(ctx)
		if err != nil {
			log.Fatalf("Failed to create snapshot: %v", err)
		}
		fmt.Printf("Snapshot written to %s (%d bytes)\n", info.Path, info.Size)
	}
}
