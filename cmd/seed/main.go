// Package main provides a tool to seed the database with the standard store layout.
//
// This creates the default floor, the fixed layout slots, and a starter set of
// categories so a fresh install opens with something to edit.
//
// Usage:
//
//	DATA_PATH=~/TanaMap/data go run ./cmd/seed
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tanamapapp/tanamap-server/internal/color"
	"github.com/tanamapapp/tanamap-server/internal/domain"
	"github.com/tanamapapp/tanamap-server/internal/grid"
	"github.com/tanamapapp/tanamap-server/internal/id"
	"github.com/tanamapapp/tanamap-server/internal/store"
)

var withCategories = flag.Bool("categories", true, "Seed starter categories alongside the layout")

// layoutSlots is the standard single-floor store layout.
var layoutSlots = []domain.Slot{
	{Name: "入口正面ワゴン", Position: grid.Point{X: 40, Y: 50}, Size: domain.Size{Width: 200, Height: 80}, Type: domain.SlotTypeSlot},
	{Name: "レジ横", Position: grid.Point{X: 300, Y: 50}, Size: domain.Size{Width: 140, Height: 50}, Type: domain.SlotTypeSlot},
	{Name: "壁際書架 A-1", Position: grid.Point{X: 40, Y: 180}, Size: domain.Size{Width: 140, Height: 50}, Type: domain.SlotTypeSlot},
	{Name: "壁際書架 A-2", Position: grid.Point{X: 40, Y: 240}, Size: domain.Size{Width: 140, Height: 50}, Type: domain.SlotTypeSlot},
	{Name: "雑誌コーナー", Position: grid.Point{X: 300, Y: 180}, Size: domain.Size{Width: 200, Height: 50}, Type: domain.SlotTypeSlot},
}

// starterCategories holds department names with their genres.
var starterCategories = map[string][]string{
	"文学":  {"純文学", "ミステリー", "時代小説"},
	"文庫":  {},
	"雑誌":  {"週刊誌", "ファッション"},
	"実用書": {"料理", "健康"},
}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/TanaMap/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	floorID := seedFloor(ctx, s)
	seedSlots(ctx, s, floorID)

	if *withCategories {
		seedCategories(ctx, s)
	}

	fmt.Println("Done.")
}

func seedFloor(ctx context.Context, s *store.Store) string {
	existing, err := s.Floors.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list floors: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Floor already present, reusing %q\n", existing[0].Name)
		return existing[0].ID
	}

	floorID := id.MustGenerate("floor")
	floor := &domain.Floor{ID: floorID, Name: "1F", Order: 1}
	if err := s.Floors.Create(ctx, floorID, floor); err != nil {
		log.Fatalf("Failed to create floor: %v", err)
	}
	fmt.Println("Created floor 1F")
	return floorID
}

func seedSlots(ctx context.Context, s *store.Store, floorID string) {
	existing, err := s.Slots.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list slots: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Skipping layout seed, %d slots already present\n", len(existing))
		return
	}

	for _, slot := range layoutSlots {
		slot.ID = id.MustGenerate("slot")
		slot.FloorID = floorID
		if err := s.Slots.Create(ctx, slot.ID, &slot); err != nil {
			log.Fatalf("Failed to create slot %q: %v", slot.Name, err)
		}
		fmt.Printf("Created slot %q\n", slot.Name)
	}
}

func seedCategories(ctx context.Context, s *store.Store) {
	existing, err := s.Categories.ListAll(ctx)
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("Skipping category seed, %d categories already present\n", len(existing))
		return
	}

	for parentName, children := range starterCategories {
		parentID := id.MustGenerate("cat")
		parent := &domain.Category{
			ID:    parentID,
			Name:  parentName,
			Color: color.ForCategory(parentName),
		}
		if err := s.Categories.Create(ctx, parentID, parent); err != nil {
			log.Fatalf("Failed to create category %q: %v", parentName, err)
		}
		fmt.Printf("Created department %q\n", parentName)

		for _, childName := range children {
			childID := id.MustGenerate("cat")
			child := &domain.Category{
				ID:       childID,
				Name:     childName,
				Color:    color.ForCategory(childName),
				ParentID: parentID,
			}
			if err := s.Categories.Create(ctx, childID, child); err != nil {
				log.Fatalf("Failed to create category %q: %v", childName, err)
			}
			fmt.Printf("  Created genre %q\n", childName)
		}
	}
}
