package preview

import (
	"fmt"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"fragvec/internal/shape"
)

// stage identifies which pipeline state the viewer draws.
type stage int

const (
	stageRaw stage = iota
	stageRegularized
	stageClosed
)

func (s stage) String() string {
	switch s {
	case stageRegularized:
		return "regularized"
	case stageClosed:
		return "closed"
	default:
		return "raw"
	}
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	browseFiles bool

	vp     viewport
	status string
	title  string

	// the loaded collection at each pipeline stage
	raw         shape.Collection
	regularized shape.Collection
	closed      shape.Collection
	stage       stage
	selShape    int // -1 = no highlight

	// sidebar: shapes of the loaded collection, or files while browsing
	cwd string
	l   list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// attributes table
	showAttrs bool
	tbl       table.Model

	// last rendered canvas size (for mouse mapping)
	mapW int
	mapH int

	// hover state
	hovering bool
	hoverOK  bool
	hoverX   float64
	hoverY   float64

	// drag state
	dragging bool
	dragX    int
	dragY    int
}

func New() Model {
	m := Model{
		helpVisible: true,
		browseFiles: true,
		vp:          viewport{zoom: 1},
		status:      "fragvec ready",
		selShape:    -1,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Fragments"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste records: shapeId,subPathId,x,y per line. Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a fragment table at launch.
func NewWithPath(path string) Model {
	m := New()
	m.loadPath(path)
	return m
}

// NewWithCollection starts the viewer on an already loaded collection.
func NewWithCollection(c shape.Collection, title string) Model {
	m := New()
	m.setCollection(c, title)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setCollection installs a collection and derives its pipeline stages.
func (m *Model) setCollection(c shape.Collection, title string) {
	m.raw = c
	m.regularized = shape.Regularize(c)
	m.closed = shape.CloseAll(m.regularized)
	m.stage = stageRaw
	m.selShape = -1
	m.title = title
	m.browseFiles = false
	m.vp = viewport{zoom: 1}
	m.refreshShapeItems()
	m.status = fmt.Sprintf("loaded %s  shapes=%d subpaths=%d points=%d",
		title, len(c), c.NumSubPaths(), c.NumPoints())
}

// current returns the collection at the displayed stage.
func (m Model) current() shape.Collection {
	switch m.stage {
	case stageRegularized:
		return m.regularized
	case stageClosed:
		return m.closed
	default:
		return m.raw
	}
}
