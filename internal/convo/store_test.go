package convo

import (
	"testing"

	"prism/internal/models"
)

func TestStoreAppendPreservesOrder(t *testing.T) {
	store := NewStore()
	for _, text := range []string{"one", "two", "three"} {
		store.Append(models.NewUserMessage(text))
	}

	msgs := store.Snapshot()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages", len(msgs))
	}
	for i, want := range []string{"one", "two", "three"} {
		if msgs[i].Content != want {
			t.Errorf("position %d: got %q, want %q", i, msgs[i].Content, want)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Append(models.NewUserMessage("original"))

	snap := store.Snapshot()
	snap[0].Content = "mutated"

	if store.Snapshot()[0].Content != "original" {
		t.Fatal("snapshot mutation leaked into the store")
	}
}

func TestModeSwitchableWhileBusy(t *testing.T) {
	store := NewStore()
	store.SetBusy(true)
	store.SetMode(models.ModeVideo)

	if store.Mode() != models.ModeVideo {
		t.Errorf("got mode %v", store.Mode())
	}
	if !store.Busy() {
		t.Error("mode switch must not touch the busy flag")
	}
}

func TestResetKeepsMode(t *testing.T) {
	store := NewStore()
	store.SetMode(models.ModeImage)
	store.Append(models.NewUserMessage("x"))
	store.SetBusy(true)

	store.Reset()

	if store.Len() != 0 || store.Busy() {
		t.Fatalf("after reset: len=%d busy=%v", store.Len(), store.Busy())
	}
	if store.Mode() != models.ModeImage {
		t.Errorf("mode lost on reset: %v", store.Mode())
	}
}
