package ui

import (
	"fmt"
	"strings"

	"prism/internal/models"
	"prism/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

var ModalWidth = 60

func (m *Model) RenderShortcutsModal() string {
	title := styles.ModalTitleStyle.Render("Keyboard Shortcuts")

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Ctrl+C", "Quit Application"},
		{"Ctrl+N", "New Session"},
		{"Ctrl+A", "Cycle Mode (Chat/Image/Video)"},
		{"Ctrl+S", "View Shortcuts (this menu)"},
		{"Enter", "Send Prompt"},
		{"Shift+Enter", "Insert Newline"},
	}

	var items []string
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFCC80")).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E0E0E0"))

	for _, s := range shortcuts {
		line := fmt.Sprintf("%s %s", keyStyle.Render(s.key), descStyle.Render(s.desc))
		items = append(items, styles.ModalItemStyle.Render(line))
	}

	listContent := lipgloss.JoinVertical(lipgloss.Left, items...)
	content := lipgloss.JoinVertical(lipgloss.Left, title, listContent)

	hint := lipgloss.NewStyle().
		Foreground(styles.HintColor).
		Width(styles.ContentWidth).
		PaddingTop(1).
		Render("Esc/Enter: close")

	return lipgloss.JoinVertical(lipgloss.Left, content, hint)
}

// modelNameFor shows which backend model serves the active mode.
func (m *Model) modelNameFor(mode models.Mode) string {
	switch mode {
	case models.ModeImage:
		return m.Cfg.ImageModel
	case models.ModeVideo:
		return m.Cfg.VideoModel
	default:
		return m.Cfg.ChatModel
	}
}

func (m *Model) RenderBottomBar() string {
	mode := m.Store.Mode()

	badge := styles.ModeBadgeStyle.
		Background(styles.ModeColor(mode.String())).
		Render(strings.ToUpper(mode.String()))

	modelName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#B39DDB")).
		Render(TruncateRunes(m.modelNameFor(mode), 36))

	status := ""
	if m.Loading {
		status = styles.StatusHintStyle.Render("generating…")
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555")).
		Render("Mode: ^A  Help: ^S")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", modelName)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Center, status, "  ", help)

	availableWidth := m.WindowWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if availableWidth < 0 {
		availableWidth = 0
	}
	spacer := strings.Repeat(" ", availableWidth)

	bar := lipgloss.JoinHorizontal(lipgloss.Center, leftSide, spacer, rightSide)

	return lipgloss.NewStyle().
		Width(m.WindowWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#333333")).
		Padding(0, 1).
		Render(bar)
}

func GetWelcomeScreen(width, height int) string {
	art := `
 ╭─────────────────────────────────────────────────╮
 │                                                 │
 │   ██████╗ ██████╗ ██╗███████╗███╗   ███╗        │
 │   ██╔══██╗██╔══██╗██║██╔════╝████╗ ████║        │
 │   ██████╔╝██████╔╝██║███████╗██╔████╔██║        │
 │   ██╔═══╝ ██╔══██╗██║╚════██║██║╚██╔╝██║        │
 │   ██║     ██║  ██║██║███████║██║ ╚═╝ ██║        │
 │   ╚═╝     ╚═╝  ╚═╝╚═╝╚══════╝╚═╝     ╚═╝        │
 │                                                 │
 ╰─────────────────────────────────────────────────╯
`
	subtitle := "Ctrl+A cycles between chat, image, and video modes."

	styledArt := styles.WelcomeArtStyle.Render(art)
	styledSubtitle := styles.WelcomeSubtitleStyle.Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, styledArt, "", styledSubtitle)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) View() string {
	inputWidth := m.WindowWidth - 4
	inputBox := styles.InputBoxStyle.Width(inputWidth).Render(m.TextInput.View())

	chatContent := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render("PRISM"),
		"",
		m.Viewport.View(),
		"",
		inputBox,
	)
	chatArea := lipgloss.PlaceHorizontal(m.WindowWidth, lipgloss.Center, chatContent)
	bottomBar := m.RenderBottomBar()

	content := lipgloss.JoinVertical(lipgloss.Left, chatArea, bottomBar)

	if m.ShortcutsOpen {
		modal := styles.ModalStyle.Width(ModalWidth).Render(m.RenderShortcutsModal())
		return lipgloss.Place(
			m.WindowWidth,
			m.WindowHeight,
			lipgloss.Center,
			lipgloss.Center,
			modal,
		)
	}

	return content
}
