package explore

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.isLoading {
		return titleStyle.Render("project-explorer") + "\n\n" + statusStyle.Render("collecting...")
	}
	if m.err != nil {
		return titleStyle.Render("project-explorer") + "\n\n" +
			errorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n\n" +
			statusStyle.Render("q to quit, r to retry")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.ex.Root()))
	b.WriteString("\n")

	vh := m.viewportHeight()
	end := m.scrollOffset + vh
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(m.renderLine(i))
		b.WriteString("\n")
	}
	for i := end - m.scrollOffset; i < vh; i++ {
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m *model) renderLine(i int) string {
	vl := m.visible[i]
	text := vl.Text
	style := fileStyle
	if strings.HasSuffix(text, "/") {
		style = dirStyle
	}
	if vl.Folded {
		text += " ..."
		style = foldedStyle
	}

	marker := "  "
	if i == m.cursor {
		marker = "> "
		style = cursorStyle
	}

	line := marker + text
	if m.width > 0 {
		line = runewidth.Truncate(line, m.width, "…")
	}
	return style.Render(line)
}

func (m *model) renderStatus() string {
	if m.searching {
		return searchStyle.Render("/" + m.searchQuery)
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	pos := 0
	if len(m.visible) > 0 {
		pos = m.cursor + 1
	}
	return statusStyle.Render(fmt.Sprintf("%d/%d", pos, len(m.visible)))
}
