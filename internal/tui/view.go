package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	name := "<unsaved>"
	if m.selPath != "" {
		name = m.selPath
	}
	header := titleStyle.Render(" shapeview ") + dimStyle.Render(" "+name)
	header = lipgloss.NewStyle().Width(m.width).MaxHeight(headerHeight).Render(header)

	// Viewport
	var viewport string
	switch {
	case !m.bundle.Empty():
		viewport = lipgloss.Place(lay.w, lay.h, lipgloss.Center, lipgloss.Center, m.renderOverlay(lay.w))
	case m.showTable:
		m.tbl.SetHeight(min(lay.h-2, 20))
		box := boxStyle.MaxWidth(lay.w).Render(m.tbl.View())
		viewport = lipgloss.Place(lay.w, lay.h, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lay.w)
		m.ta.SetHeight(min(lay.h, 12))
		viewport = m.ta.View()
	default:
		viewport = strings.Join(m.canvas, "\n")
	}
	viewport = lipgloss.NewStyle().Width(lay.w).Height(lay.h).MaxHeight(lay.h).Render(viewport)

	body := viewport
	if m.showSidebar {
		sidebar := lipgloss.JoinVertical(lipgloss.Left, m.l.View(), "", m.ti.View())
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lay.h).MaxHeight(lay.h).Render(sidebar)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", viewport)
	}

	// Footer
	status := dimStyle.Render(" " + m.status + " ")
	right := ""
	if m.drag.Active {
		right = dimStyle.Render(fmt.Sprintf("  dragging #%d at %d,%d  ", m.drag.Index+1, m.drag.LastX, m.drag.LastY))
	}
	helpLine := ""
	if m.helpVisible {
		helpLine = " " + m.help.View(m.keys)
	}
	top := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.PlaceHorizontal(max(0, m.width-lipgloss.Width(status)), lipgloss.Right, right))
	footer := lipgloss.NewStyle().Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, top, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).MaxHeight(m.height).Render(ui)
}

// renderOverlay draws the message bundle as a box no wider than w.
func (m Model) renderOverlay(w int) string {
	lines := []string{errTitle.Render(m.bundle.Title), ""}
	for _, e := range m.bundle.Logs {
		lines = append(lines, e.Message)
		if e.Line != "" {
			lines = append(lines, dimStyle.Render("  "+e.Line))
		}
	}
	lines = append(lines, "", dimStyle.Render("esc/enter to dismiss"))
	return overlayStyle.MaxWidth(max(20, min(72, w))).Render(strings.Join(lines, "\n"))
}
