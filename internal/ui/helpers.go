package ui

import (
	"fmt"
	"strings"

	"prism/internal/models"
	"prism/internal/styles"

	"github.com/mattn/go-runewidth"
)

func FormatUserMessage(content string, width int, isFirst bool) string {
	label := styles.UserLabelStyle.Render("YOU")
	msg := styles.UserMsgStyle.Width(width - 4).Render(strings.TrimSpace(content))
	if isFirst {
		return fmt.Sprintf("\n%s\n%s", label, msg)
	}
	return fmt.Sprintf("%s\n%s", label, msg)
}

// FormatModelMessage renders a model turn by kind: chat answers go through
// the markdown renderer with their citations listed underneath, image and
// video turns show the caption plus the media handle.
func (m *Model) FormatModelMessage(msg models.Message) string {
	label := styles.ModelLabelStyle.Render("PRISM")

	switch msg.Kind {
	case models.KindImage:
		body := styles.ModelMsgStyle.Render(msg.Content)
		media := styles.MediaStyle.Render("🖼  " + msg.Media)
		return fmt.Sprintf("%s\n%s\n%s", label, body, media)

	case models.KindVideo:
		body := styles.ModelMsgStyle.Render(msg.Content)
		media := styles.MediaStyle.Render("🎬 " + msg.Media)
		return fmt.Sprintf("%s\n%s\n%s", label, body, media)

	default:
		content := msg.Content
		if m.Renderer != nil {
			if rendered, err := m.Renderer.Render(msg.Content); err == nil {
				content = strings.TrimSpace(rendered)
			}
		}
		body := styles.ModelMsgStyle.Render(content)
		if len(msg.Citations) == 0 {
			return fmt.Sprintf("%s\n%s", label, body)
		}
		return fmt.Sprintf("%s\n%s\n%s", label, body, FormatCitations(msg.Citations))
	}
}

func FormatCitations(citations []models.Citation) string {
	lines := make([]string, 0, len(citations)+1)
	lines = append(lines, styles.CitationStyle.Render("Sources:"))
	for i, c := range citations {
		link := styles.CitationLinkStyle.Render(c.URI)
		lines = append(lines, styles.CitationStyle.Render(fmt.Sprintf("%d. %s — %s", i+1, c.Title, link)))
	}
	return strings.Join(lines, "\n")
}

func WrappedLineCount(value string, width int) int {
	if width <= 0 {
		return 1
	}
	lines := strings.Split(value, "\n")
	if len(lines) == 0 {
		return 1
	}
	count := 0
	for _, line := range lines {
		w := runewidth.StringWidth(line)
		if w == 0 {
			count++
			continue
		}
		count += (w-1)/width + 1
	}
	return count
}

func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

func (m *Model) UpdateViewport() {
	if len(m.Messages) == 0 && !m.Loading {
		m.Viewport.SetContent(GetWelcomeScreen(m.Viewport.Width, m.Viewport.Height))
		m.Viewport.GotoTop()
		return
	}

	content := strings.Join(m.Messages, "\n\n")
	if m.Loading {
		content += fmt.Sprintf("\n\n%s %s", m.Spinner.View(), loadingLabel(m.LoadingMode))
	}
	m.Viewport.SetContent(content)
	m.Viewport.GotoBottom()
}

func loadingLabel(mode models.Mode) string {
	switch mode {
	case models.ModeImage:
		return "Generating image..."
	case models.ModeVideo:
		return "Generating video... this can take a few minutes"
	default:
		return "Thinking..."
	}
}
