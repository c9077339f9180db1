package repository

import (
	"path/filepath"
	"testing"

	"github.com/DecayAI/windwizard/internal/entities"
)

func newTestProfileRepo(t *testing.T) *SQLiteProfileRepository {
	t.Helper()
	repo, err := NewSQLiteProfileRepository(filepath.Join(t.TempDir(), "profiles.db"))
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndGetProfile(t *testing.T) {
	repo := newTestProfileRepo(t)

	p := entities.Profile{
		UserID:        "kite-karen",
		Weight:        68,
		Skill:         "advanced",
		Phone:         "+4512345678",
		Email:         "karen@example.com",
		HomeLat:       55.66,
		HomeLon:       12.56,
		AlertsEnabled: true,
	}
	if err := repo.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}

	got, found, err := repo.GetProfile("kite-karen")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if !found {
		t.Fatal("Expected profile to exist")
	}
	if got.Weight != 68 || got.Skill != "advanced" {
		t.Errorf("Unexpected profile values: %+v", got)
	}
	if got.Phone != "+4512345678" {
		t.Errorf("Expected phone to round-trip, got %q", got.Phone)
	}
	if !got.AlertsEnabled {
		t.Error("Expected alerts to stay enabled")
	}
}

func TestGetProfileMissing(t *testing.T) {
	repo := newTestProfileRepo(t)

	got, found, err := repo.GetProfile("nobody")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if found {
		t.Error("Expected missing profile to report found=false")
	}
	if got.UserID != "" {
		t.Errorf("Expected zero profile for missing user, got %+v", got)
	}
}

func TestSaveProfileRequiresUserID(t *testing.T) {
	repo := newTestProfileRepo(t)

	if err := repo.SaveProfile(entities.Profile{Skill: "beginner"}); err == nil {
		t.Error("Expected error for profile without user_id, got nil")
	}
}

func TestSaveProfileOverwrites(t *testing.T) {
	repo := newTestProfileRepo(t)

	if err := repo.SaveProfile(entities.Profile{UserID: "bob", Skill: "beginner"}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	if err := repo.SaveProfile(entities.Profile{UserID: "bob", Skill: "intermediate", Weight: 90}); err != nil {
		t.Fatalf("SaveProfile failed on update: %v", err)
	}

	got, found, err := repo.GetProfile("bob")
	if err != nil || !found {
		t.Fatalf("GetProfile failed: found=%v err=%v", found, err)
	}
	if got.Skill != "intermediate" || got.Weight != 90 {
		t.Errorf("Expected updated profile, got %+v", got)
	}
}

func TestListAlertProfiles(t *testing.T) {
	repo := newTestProfileRepo(t)

	profiles := []entities.Profile{
		{UserID: "alice", AlertsEnabled: true, Phone: "+4511111111", HomeLat: 55.66, HomeLon: 12.56},
		{UserID: "bob", AlertsEnabled: false},
		{UserID: "carol", AlertsEnabled: true, Email: "carol@example.com"},
	}
	for _, p := range profiles {
		if err := repo.SaveProfile(p); err != nil {
			t.Fatalf("SaveProfile failed for %s: %v", p.UserID, err)
		}
	}

	got, err := repo.ListAlertProfiles()
	if err != nil {
		t.Fatalf("ListAlertProfiles failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 alert profiles, got %d", len(got))
	}
	if got[0].UserID != "alice" || got[1].UserID != "carol" {
		t.Errorf("Expected alice and carol, got %s and %s", got[0].UserID, got[1].UserID)
	}
}
