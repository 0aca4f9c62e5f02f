package ui

import (
	"fmt"
	"os"

	"prism/internal/config"
	"prism/internal/convo"
	"prism/internal/generate"
	"prism/internal/media"
	"prism/internal/observability"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func InitialModel() Model {
	observability.Setup()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	// An empty GEMINI_API_KEY is fine here; generations will fail with a
	// fallback message until one is set.

	mediaStore, err := media.NewStore()
	if err != nil {
		fmt.Printf("Error: cannot prepare media directory: %v\n", err)
		os.Exit(1)
	}

	store := convo.NewStore()
	dispatcher := convo.NewDispatcher(store, generate.NewClient(cfg, mediaStore))

	ti := textarea.New()
	ti.Placeholder = "Type a prompt..."
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = 6
	ti.SetHeight(2)
	ti.SetWidth(80)
	ti.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#B39DDB")).Bold(true)
	ti.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#B39DDB")).Bold(true)
	ti.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("#545454"))
	ti.BlurredStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("#545454"))
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#B39DDB"))

	vp := viewport.New(60, 15)

	return Model{
		TextInput:  ti,
		Viewport:   vp,
		Spinner:    sp,
		Store:      store,
		Dispatcher: dispatcher,
		Cfg:        cfg,
		Messages:   []string{},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.TextInput.Cursor.BlinkCmd(),
		m.Spinner.Tick,
	)
}

func NewProgram() *tea.Program {
	m := InitialModel()
	return tea.NewProgram(&m, tea.WithAltScreen())
}
