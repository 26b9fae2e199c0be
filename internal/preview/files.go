package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"fragvec/internal/shape"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

type shapeItem struct {
	index    int
	subpaths int
	points   int
}

func (s shapeItem) Title() string { return fmt.Sprintf("shape %d", s.index) }
func (s shapeItem) Description() string {
	return fmt.Sprintf("%d sub-paths, %d points", s.subpaths, s.points)
}
func (s shapeItem) FilterValue() string { return s.Title() }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) == ".csv" {
			items = append(items, fileItem{title: name, desc: ".csv", path: p})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.Title = "Fragments"
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no fragment tables in current directory"
	}
}

func (m *Model) refreshShapeItems() {
	var items []list.Item
	for i, s := range m.raw {
		items = append(items, shapeItem{index: i, subpaths: len(s), points: s.NumPoints()})
	}
	m.l.Title = "Shapes"
	m.l.SetItems(items)
}

// loadPath loads a fragment table into the model.
func (m *Model) loadPath(p string) {
	c, err := shape.Load(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.setCollection(c, filepath.Base(p))
	if m.showAttrs {
		m.refreshAttrs()
	}
}
