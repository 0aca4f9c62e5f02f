package ui

import (
	"prism/internal/config"
	"prism/internal/convo"
	"prism/internal/models"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const (
	MaxChatWidth = 100
)

// ResponseMsg delivers the resolved model turn for a dispatched submission.
type ResponseMsg struct {
	Message models.Message
}

type Model struct {
	Viewport  viewport.Model
	Messages  []string
	TextInput textarea.Model
	Spinner   spinner.Model
	Renderer  *glamour.TermRenderer

	Store      *convo.Store
	Dispatcher *convo.Dispatcher
	Cfg        *config.Config

	Loading       bool
	LoadingMode   models.Mode
	WindowWidth   int
	WindowHeight  int
	ShortcutsOpen bool
}
