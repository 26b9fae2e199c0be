package preview

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"fragvec/internal/shape"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarW-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If the list is filtering, it owns the keyboard.
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				raw := strings.TrimSpace(m.ta.Value())
				if raw == "" {
					m.status = "paste: empty"
					return m, nil
				}
				c, err := shape.Read(strings.NewReader(raw))
				if err != nil {
					m.status = "parse error: " + err.Error()
					return m, nil
				}
				m.setCollection(c, "<pasted>")
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showAttrs {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "a":
				m.showAttrs = false
				return m, nil
			case "1":
				m.setStage(stageRaw)
				return m, nil
			case "2":
				m.setStage(stageRegularized)
				return m, nil
			case "3":
				m.setStage(stageClosed)
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.setStage(stageRaw)
		case "2":
			m.setStage(stageRegularized)
		case "3":
			m.setStage(stageClosed)
		case "+", "=":
			if m.vp.zoom < 64 {
				m.vp.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.vp.zoom)
			}
		case "-", "_":
			if m.vp.zoom > 0.05 {
				m.vp.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.vp.zoom)
			}
		case "0":
			m.vp = viewport{zoom: 1}
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				if m.browseFiles {
					m.refreshDir()
				}
				m.l.SetSize(sidebarW-2, m.height-1-2)
			}
		case "o":
			m.browseFiles = !m.browseFiles
			if m.browseFiles {
				m.refreshDir()
			} else {
				m.refreshShapeItems()
			}
			m.showSidebar = true
			m.l.SetSize(sidebarW-2, m.height-1-2)
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "esc":
			if m.selShape >= 0 {
				m.selShape = -1
				m.status = "highlight cleared"
			}
		case "enter":
			if m.showSidebar {
				switch it := m.l.SelectedItem().(type) {
				case fileItem:
					m.loadPath(it.path)
				case shapeItem:
					if m.selShape == it.index {
						m.selShape = -1
						m.status = "highlight cleared"
					} else {
						m.selShape = it.index
						m.status = fmt.Sprintf("highlighting shape %d", it.index)
					}
				}
			}
		case "up":
			m.vp.offsetY -= 1
		case "down":
			m.vp.offsetY += 1
		case "left":
			m.vp.offsetX -= 2
		case "right":
			m.vp.offsetX += 2
		}
	case tea.MouseMsg:
		// compute map origin and size (must match View layout)
		sidebarWidth := 0
		if m.showSidebar {
			sidebarWidth = sidebarW
		}
		headerHeight := 1
		footerHeight := 2
		contentHeight := m.height - headerHeight - footerHeight
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)
		mapWidth := contentWidth - sidebarWidth - 1
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapHeight := contentHeight
		mapOriginX := sidebarWidth
		if m.showSidebar {
			mapOriginX++
		}
		mapOriginY := headerHeight

		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			if m.vp.zoom < 64 {
				m.vp.zoom *= 1.1
			}
		case msg.Button == tea.MouseButtonWheelDown:
			if m.vp.zoom > 0.05 {
				m.vp.zoom /= 1.1
			}
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		case msg.Action == tea.MouseActionRelease:
			m.dragging = false
		case msg.Action == tea.MouseActionMotion && m.dragging:
			m.vp.offsetX += msg.X - m.dragX
			m.vp.offsetY += msg.Y - m.dragY
			m.dragX, m.dragY = msg.X, msg.Y
		}

		// track hover over the map area for the footer readout
		cx, cy := msg.X, msg.Y
		if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+mapHeight {
			m.hovering = true
			p, ok := cellToData(cx-mapOriginX, cy-mapOriginY, m.current(), m.vp, mapWidth, mapHeight)
			m.hoverOK = ok
			if ok {
				m.hoverX, m.hoverY = p.X, p.Y
			}
		} else {
			m.hovering = false
		}
	}
	// Pass messages to the list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setStage(s stage) {
	m.stage = s
	m.status = "stage: " + s.String()
	if m.showAttrs {
		m.refreshAttrs()
	}
}
