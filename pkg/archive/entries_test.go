package archive

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/unowned-ai/mindmirror/pkg/db"
	"github.com/unowned-ai/mindmirror/pkg/journal"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := db.OpenDBConnection(":memory:", true, "NORMAL")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	if err := db.InitializeSchema(testDB, db.TargetSchemaVersion); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}

	return testDB
}

func assertEntriesEqual(t *testing.T, want, got journal.Entry) {
	t.Helper()
	if !want.Date.Equal(got.Date) {
		t.Errorf("Entry %s date mismatch: want %v, got %v", want.ID, want.Date, got.Date)
	}
	want.Date, got.Date = time.Time{}, time.Time{}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("Entry mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestSaveAndGetEntry(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()
	entry := journal.SampleEntries()[0]

	if err := SaveEntry(ctx, testDB, entry); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	stored, err := GetEntry(ctx, testDB, entry.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	assertEntriesEqual(t, entry, stored)
}

func TestSaveEntryKeepsDistortionAbsence(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()
	withoutDistortions := journal.SampleEntries()[1]
	emptyDistortions := journal.Entry{
		ID:          "empty",
		Text:        "nothing detected",
		Date:        time.Date(2024, time.January, 2, 3, 4, 5, 6, time.UTC),
		Emotions:    journal.EmotionAnalysis{Primary: "calm", Intensity: 1, Valence: journal.ValenceNeutral},
		Themes:      []journal.ThemeAnalysis{},
		Distortions: []journal.CognitiveDistortion{},
	}

	for _, e := range []journal.Entry{withoutDistortions, emptyDistortions} {
		if err := SaveEntry(ctx, testDB, e); err != nil {
			t.Fatalf("SaveEntry(%s) failed: %v", e.ID, err)
		}
	}

	got, err := GetEntry(ctx, testDB, withoutDistortions.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Distortions != nil {
		t.Errorf("Expected nil distortions, got %#v", got.Distortions)
	}

	got, err = GetEntry(ctx, testDB, emptyDistortions.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Distortions == nil || len(got.Distortions) != 0 {
		t.Errorf("Expected empty, non-nil distortions, got %#v", got.Distortions)
	}
	if !got.Date.Equal(emptyDistortions.Date) {
		t.Errorf("Expected nanosecond date round trip, got %v", got.Date)
	}
}

func TestSaveEntryDuplicateID(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()
	entry := journal.SampleEntries()[2]

	if err := SaveEntry(ctx, testDB, entry); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	err := SaveEntry(ctx, testDB, entry)
	if !errors.Is(err, journal.ErrDuplicateID) {
		t.Fatalf("Expected ErrDuplicateID, got: %v", err)
	}

	n, err := CountEntries(ctx, testDB)
	if err != nil {
		t.Fatalf("CountEntries failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 entry after failed duplicate save, got %d", n)
	}
}

func TestGetEntryNotFound(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	_, err := GetEntry(context.Background(), testDB, "missing")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound, got: %v", err)
	}
}

func TestListEntriesInSaveOrder(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()

	empty, err := ListEntries(ctx, testDB)
	if err != nil {
		t.Fatalf("ListEntries on empty archive failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no entries, got %d", len(empty))
	}

	samples := journal.SampleEntries()
	// Save oldest first.
	for i := len(samples) - 1; i >= 0; i-- {
		if err := SaveEntry(ctx, testDB, samples[i]); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}

	listed, err := ListEntries(ctx, testDB)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(listed) != len(samples) {
		t.Fatalf("Expected %d entries, got %d", len(samples), len(listed))
	}
	for i := range listed {
		assertEntriesEqual(t, samples[len(samples)-1-i], listed[i])
	}

	store := journal.NewStore()
	for _, e := range listed {
		if err := store.Insert(e); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if got := store.List()[0].ID; got != samples[0].ID {
		t.Errorf("Expected newest sample %s first after replay, got %s", samples[0].ID, got)
	}
}

func TestDeleteEntry(t *testing.T) {
	testDB := setupTestDB(t)
	defer testDB.Close()

	ctx := context.Background()
	entry := journal.SampleEntries()[0]
	if err := SaveEntry(ctx, testDB, entry); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	if err := DeleteEntry(ctx, testDB, entry.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}

	if _, err := GetEntry(ctx, testDB, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound after delete, got: %v", err)
	}

	var themes int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM entry_themes WHERE entry_id = ?", entry.ID).Scan(&themes); err != nil {
		t.Fatalf("Failed to count themes: %v", err)
	}
	if themes != 0 {
		t.Errorf("Expected themes to cascade on delete, %d left", themes)
	}

	if err := DeleteEntry(ctx, testDB, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("Expected ErrEntryNotFound deleting twice, got: %v", err)
	}
}
