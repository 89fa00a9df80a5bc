package tui

import (
	"strings"

	key "github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"shapeview/internal/interact"
	"shapeview/internal/shape"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.l.SetSize(sidebarWidth-2, max(1, m.height-headerHeight-footerHeight-5))
		m.repaint()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// the overlay is modal
	if !m.bundle.Empty() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.bundle = shape.Bundle{}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.saving {
		switch msg.String() {
		case "esc":
			m.saving = false
			m.ti.Blur()
			return m, nil
		case "enter":
			m.saving = false
			m.ti.Blur()
			m.saveAs(m.ti.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}
	if m.pasteMode {
		switch msg.String() {
		case "esc":
			m.pasteMode = false
			m.ta.Blur()
			m.status = "view mode"
			return m, nil
		case "ctrl+s":
			m.pasteMode = false
			m.ta.Blur()
			m.loadText(strings.TrimRight(m.ta.Value(), "\n"))
			return m, nil
		}
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(msg)
		return m, cmd
	}
	// If list is visible and filtering, send keys to list and ignore global commands
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		m.drag = interact.DragState{}
		if m.showSidebar {
			m.refreshDir()
		}
		m.repaint()
	case key.Matches(msg, m.keys.Save):
		if !m.showSidebar {
			m.showSidebar = true
			m.repaint()
		}
		m.saving = true
		m.ti.SetValue("")
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		if m.showTable {
			m.refreshTable()
		}
	case key.Matches(msg, m.keys.Copy):
		m.copyText()
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		cmd := m.ta.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Reload):
		m.reload()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Open):
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	default:
		if m.showTable {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// handleMouse feeds the drag controller. Cells outside the viewport end a
// drag the way leaving the surface does.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !m.bundle.Empty() || m.pasteMode || m.showTable {
		return m
	}
	lay := m.layout()
	var ev interact.Event
	switch {
	case !lay.contains(msg.X, msg.Y):
		if !m.drag.Active {
			return m
		}
		ev = interact.Event{Type: interact.Leave}
	case msg.Action == tea.MouseActionPress:
		ev = m.pointerEvent(interact.Down, msg.X, msg.Y)
		ev.Button = mouseButton(msg.Button)
		ev.Mods = mouseMods(msg)
	case msg.Action == tea.MouseActionMotion:
		ev = m.pointerEvent(interact.Move, msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		ev = m.pointerEvent(interact.Up, msg.X, msg.Y)
	default:
		return m
	}

	var redraw bool
	m.drag, redraw = interact.Step(m.drag, m.shapes, ev, m)
	if redraw {
		m.repaint()
	}
	return m
}

func mouseButton(b tea.MouseButton) interact.Button {
	switch b {
	case tea.MouseButtonLeft:
		return interact.ButtonPrimary
	case tea.MouseButtonRight:
		return interact.ButtonSecondary
	case tea.MouseButtonMiddle:
		return interact.ButtonMiddle
	}
	return interact.ButtonNone
}

func mouseMods(msg tea.MouseMsg) interact.Mods {
	var mods interact.Mods
	if msg.Shift {
		mods |= interact.ModShift
	}
	if msg.Alt {
		mods |= interact.ModAlt
	}
	if msg.Ctrl {
		mods |= interact.ModCtrl
	}
	return mods
}
