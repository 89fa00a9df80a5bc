package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"

	"shapeview/internal/interact"
	"shapeview/internal/shape"
)

// replaced in tests
var writeClipboard = clipboard.WriteAll

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.log.Warn("read dir", "dir", m.cwd, "err", err)
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), shape.Extension) {
			continue
		}
		items = append(items, fileItem{title: name, desc: shape.Extension, path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no shape files in " + m.cwd
	}
}

// loadPath replaces the document with the contents of p.
func (m *Model) loadPath(p string) {
	res, b, err := shape.LoadFile(p)
	if err != nil {
		m.log.Error("load failed", "path", p, "err", err)
		m.status = "load error: " + err.Error()
		m.bundle = b
		return
	}
	m.selPath = p
	m.setDocument(res.Shapes, b)
	m.log.Info("loaded", "path", p, "shapes", len(res.Shapes), "errors", len(res.Errors))
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  shapes=%d errors=%d", len(res.Shapes), len(res.Errors))
}

// loadText parses text typed or pasted into the app.
func (m *Model) loadText(raw string) {
	res, b := shape.Load(raw)
	m.selPath = ""
	m.setDocument(res.Shapes, b)
	m.status = fmt.Sprintf("parsed text  shapes=%d errors=%d", len(res.Shapes), len(res.Errors))
}

func (m *Model) setDocument(shapes []shape.Shape, b shape.Bundle) {
	m.shapes = shapes
	m.bundle = b
	m.drag = interact.DragState{}
	if m.showTable {
		m.refreshTable()
	}
	m.repaint()
}

func (m *Model) reload() {
	if m.selPath == "" {
		m.status = "nothing to reload"
		return
	}
	m.loadPath(m.selPath)
}

// saveAs writes the current shapes under name in the listed directory.
func (m *Model) saveAs(name string) {
	path, b, err := shape.Save(m.cwd, name, m.shapes)
	if err != nil {
		m.log.Error("save failed", "name", name, "err", err)
		m.status = "save error: " + err.Error()
		return
	}
	if !b.Empty() {
		m.bundle = b
		return
	}
	m.selPath = path
	m.log.Info("saved", "path", path, "shapes", len(m.shapes))
	m.status = "saved: " + filepath.Base(path)
	m.refreshDir()
}

func (m *Model) copyText() {
	if err := writeClipboard(shape.Serialize(m.shapes)); err != nil {
		m.log.Warn("clipboard", "err", err)
		m.status = "clipboard error: " + err.Error()
		return
	}
	m.status = fmt.Sprintf("copied %d shapes", len(m.shapes))
}
