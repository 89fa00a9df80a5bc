package tui

import (
	"log/slog"
	"os"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shapeview/internal/config"
	"shapeview/internal/interact"
	"shapeview/internal/render"
	"shapeview/internal/shape"
)

type Model struct {
	width  int
	height int

	// surface pixels per terminal cell
	cellW int
	cellH int

	showSidebar bool
	helpVisible bool

	status string
	log    *slog.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// save box
	saving bool
	ti     textinput.Model

	// Data
	shapes []shape.Shape
	bundle shape.Bundle
	drag   interact.DragState

	engine *render.Engine
	// last painted canvas, one string per terminal row
	canvas []string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// shape table
	showTable bool
	tbl       table.Model

	keys keyMap
	help help.Model
}

// New builds the viewer from cfg. A nil logger discards.
func New(cfg *config.Config, log *slog.Logger) (Model, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := Model{
		cellW:       max(1, cfg.CellW),
		cellH:       max(1, cfg.CellH),
		helpVisible: true,
		status:      "shapeview ready",
		log:         log,
		cwd:         cfg.Dir,
		keys:        defaultKeys(),
		help:        help.New(),
	}
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	eng, err := render.NewEngine(cfg.Backend, m.cellW, m.cellH, log)
	if err != nil {
		return Model{}, err
	}
	m.engine = eng
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// save box
	m.ti = textinput.New()
	m.ti.Prompt = "Save file as: "
	m.ti.Placeholder = "name"
	m.ti.CharLimit = 128
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Type or paste shape lines. ctrl+s renders; esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m, nil
}

// NewWithPath preloads a shape file at launch.
func NewWithPath(cfg *config.Config, log *slog.Logger, path string) (Model, error) {
	m, err := New(cfg, log)
	if err != nil {
		return m, err
	}
	m.loadPath(path)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Close releases the render surface.
func (m Model) Close() error { return m.engine.Close() }

// Shapes returns the live shape list, lowest z first.
func (m Model) Shapes() []shape.Shape { return m.shapes }

// Bundle returns the message bundle currently shown, if any.
func (m Model) Bundle() shape.Bundle { return m.bundle }
