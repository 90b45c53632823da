package activities

import "testing"

func TestSeedCatalogIsRegistryClean(t *testing.T) {
	t.Parallel()

	if _, err := NewRegistry(SeedCatalog()); err != nil {
		t.Fatalf("seed catalog failed registry validation: %v", err)
	}
}

func TestSeedCatalogShape(t *testing.T) {
	t.Parallel()

	byName := make(map[string]Activity)
	for _, activity := range SeedCatalog() {
		byName[activity.Name] = activity
	}
	for name, activity := range byName {
		if activity.Description == "" {
			t.Fatalf("%s has no description", name)
		}
		if activity.Schedule == "" {
			t.Fatalf("%s has no schedule", name)
		}
		if activity.MaxParticipants <= 0 {
			t.Fatalf("%s max participants = %d, want positive", name, activity.MaxParticipants)
		}
	}
	chess, ok := byName["Chess Club"]
	if !ok {
		t.Fatal("seed catalog missing Chess Club")
	}
	if len(chess.Participants) != 2 {
		t.Fatalf("Chess Club roster = %d entries, want 2", len(chess.Participants))
	}
}
