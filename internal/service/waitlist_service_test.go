package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/caic-xyz/website/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDatabase(t *testing.T) *DatabaseService {
	t.Helper()

	databaseService := NewDatabaseService(DatabaseServiceConfig{
		DatabasePath: filepath.Join(t.TempDir(), "waitlist.db"),
	})

	err := databaseService.Init()
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	return databaseService
}

func TestWaitlistSubmitAndList(t *testing.T) {
	ctx := context.Background()
	waitlist := NewWaitlistService(setupTestDatabase(t).GetDatabase())

	submissions, err := waitlist.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(submissions) != 0 {
		t.Fatalf("Expected empty list, got %d submissions", len(submissions))
	}

	err = waitlist.Submit(ctx, model.Submission{
		Email: "first@example.com",
		Pain:  "too many tabs",
		Pay:   "10/mo",
	})
	if err != nil {
		t.Fatalf("Failed to submit: %v", err)
	}

	err = waitlist.Submit(ctx, model.Submission{
		Email:           "second@example.com",
		Pain:            "context switching",
		Pay:             "25/mo",
		TargetPlatforms: []string{"linux", "macos"},
		DevOS:           []string{"linux"},
		MaxAgents:       4,
	})
	if err != nil {
		t.Fatalf("Failed to submit: %v", err)
	}

	submissions, err = waitlist.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(submissions) != 2 {
		t.Fatalf("Expected 2 submissions, got %d", len(submissions))
	}

	// Newest first
	if submissions[0].Email != "second@example.com" {
		t.Fatalf("Expected newest submission first, got %s", submissions[0].Email)
	}
	if submissions[0].ID <= submissions[1].ID {
		t.Fatalf("Expected descending ids, got %d then %d", submissions[0].ID, submissions[1].ID)
	}
	if len(submissions[0].TargetPlatforms) != 2 || submissions[0].TargetPlatforms[0] != "linux" {
		t.Fatalf("Expected target platforms to roundtrip, got %v", submissions[0].TargetPlatforms)
	}
	if submissions[0].MaxAgents != 4 {
		t.Fatalf("Expected max agents 4, got %d", submissions[0].MaxAgents)
	}
	if submissions[1].MaxAgents != 0 {
		t.Fatalf("Expected default max agents 0, got %d", submissions[1].MaxAgents)
	}
	if submissions[0].CreatedAt == 0 {
		t.Fatalf("Expected server assigned creation time")
	}
}

func TestWaitlistDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	waitlist := NewWaitlistService(setupTestDatabase(t).GetDatabase())

	err := waitlist.Submit(ctx, model.Submission{
		Email: "only@example.com",
		Pain:  "pain",
		Pay:   "pay",
	})
	if err != nil {
		t.Fatalf("Failed to submit: %v", err)
	}

	// Delete an id that does not exist
	err = waitlist.Delete(ctx, 9999)
	if err != nil {
		t.Fatalf("Expected deleting a missing id to be a no-op, got %v", err)
	}

	submissions, err := waitlist.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("Expected 1 submission after no-op delete, got %d", len(submissions))
	}

	err = waitlist.Delete(ctx, submissions[0].ID)
	if err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	submissions, err = waitlist.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list submissions: %v", err)
	}
	if len(submissions) != 0 {
		t.Fatalf("Expected empty list after delete, got %d submissions", len(submissions))
	}
}

func TestWaitlistMigrationFromLegacySchema(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "waitlist.db")

	// Build a database written by the first schema version, before the
	// platform columns existed
	legacyDB, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	statements := []string{
		`CREATE TABLE waitlist (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL,
			pain TEXT NOT NULL,
			pay TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`INSERT INTO waitlist (email, pain, pay, created_at) VALUES ('legacy@example.com', 'old pain', 'old pay', 1700000000)`,
		`CREATE TABLE schema_migrations (version uint64, dirty bool)`,
		`INSERT INTO schema_migrations (version, dirty) VALUES (1, false)`,
	}

	for _, statement := range statements {
		if err := legacyDB.Exec(statement).Error; err != nil {
			t.Fatalf("Failed to prepare legacy database: %v", err)
		}
	}

	sqlDB, err := legacyDB.DB()
	if err != nil {
		t.Fatalf("Failed to get legacy database handle: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("Failed to close legacy database: %v", err)
	}

	// Opening the database runs the remaining migrations
	databaseService := NewDatabaseService(DatabaseServiceConfig{
		DatabasePath: databasePath,
	})

	if err := databaseService.Init(); err != nil {
		t.Fatalf("Failed to migrate legacy database: %v", err)
	}

	waitlist := NewWaitlistService(databaseService.GetDatabase())

	submissions, err := waitlist.List(context.Background())
	if err != nil {
		t.Fatalf("Failed to list submissions after migration: %v", err)
	}
	if len(submissions) != 1 {
		t.Fatalf("Expected legacy row to survive migration, got %d submissions", len(submissions))
	}
	if submissions[0].Email != "legacy@example.com" {
		t.Fatalf("Expected legacy row, got %s", submissions[0].Email)
	}
	if submissions[0].MaxAgents != 0 {
		t.Fatalf("Expected backfilled max agents 0, got %d", submissions[0].MaxAgents)
	}
	if len(submissions[0].TargetPlatforms) != 0 {
		t.Fatalf("Expected backfilled empty platforms, got %v", submissions[0].TargetPlatforms)
	}
}
