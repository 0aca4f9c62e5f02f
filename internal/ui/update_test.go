package ui

import (
	"context"
	"strings"
	"testing"

	"prism/internal/convo"
	"prism/internal/models"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type stubGenerator struct{}

func (stubGenerator) Text(ctx context.Context, prompt string) (string, []models.Citation, error) {
	return "ok", nil, nil
}

func (stubGenerator) Image(ctx context.Context, prompt string) (string, error) {
	return "image.png", nil
}

func (stubGenerator) Video(ctx context.Context, prompt string) (string, error) {
	return "video.mp4", nil
}

func newTestModel() *Model {
	store := convo.NewStore()
	return &Model{
		Viewport:   viewport.New(60, 20),
		TextInput:  textarea.New(),
		Spinner:    spinner.New(),
		Store:      store,
		Dispatcher: convo.NewDispatcher(store, stubGenerator{}),
	}
}

func TestLoadingLabelKeepsDispatchMode(t *testing.T) {
	m := newTestModel()
	m.Store.SetMode(models.ModeVideo)
	m.TextInput.SetValue("a rover crossing a dune")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Loading {
		t.Fatal("expected model to be loading after submit")
	}

	// The resolve command was never run, so the request is still in flight.
	// Cycling the mode must not relabel it.
	m.Store.SetMode(m.Store.Mode().Next())
	m.UpdateViewport()

	if m.LoadingMode != models.ModeVideo {
		t.Errorf("loading mode = %v, want %v", m.LoadingMode, models.ModeVideo)
	}
	if got := m.Viewport.View(); !strings.Contains(got, "Generating video") {
		t.Errorf("viewport shows %q, want the video label", got)
	}
}

func TestBusySubmitLeavesLoadingModeAlone(t *testing.T) {
	m := newTestModel()
	m.TextInput.SetValue("first question")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Store.SetMode(models.ModeImage)
	m.TextInput.SetValue("second question")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.LoadingMode != models.ModeChat {
		t.Errorf("loading mode = %v, want %v", m.LoadingMode, models.ModeChat)
	}
	if m.Store.Len() != 1 {
		t.Errorf("store has %d messages, want 1", m.Store.Len())
	}
}
