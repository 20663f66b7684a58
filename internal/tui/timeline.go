// Package tui is an interactive terminal viewer for the phase timeline. It
// is rendering glue over the timeline layout engine: panning and zooming
// adjust the viewport and density, the layout engine supplies positions,
// ticks and culling.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/timeline"
)

type keyMap struct {
	PanLeft  key.Binding
	PanRight key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PanLeft, k.PanRight, k.ZoomIn, k.ZoomOut, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PanLeft, k.PanRight}, {k.ZoomIn, k.ZoomOut}, {k.Quit}}
}

var defaultKeys = keyMap{
	PanLeft:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "pan left")),
	PanRight: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "pan right")),
	ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	laneLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")).Width(14)
	axisStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	titleStyle     = lipgloss.NewStyle().Bold(true)
)

// Model is the timeline viewer state.
type Model struct {
	phases []domain.Phase
	origin time.Time

	ppd     float64 // pixels (columns) per day
	offsetX float64

	width  int
	height int

	keys keyMap
	help help.Model
}

// NewModel creates a viewer over the given phases, origined at the scenario
// start date.
func NewModel(phases []domain.Phase, origin time.Time) Model {
	return Model{
		phases: phases,
		origin: origin,
		ppd:    timeline.ClampPixelsPerDay(0.1), // ~3 columns per month
		keys:   defaultKeys,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PanLeft):
			m.offsetX -= float64(m.chartWidth()) / 4
		case key.Matches(msg, m.keys.PanRight):
			m.offsetX += float64(m.chartWidth()) / 4
		case key.Matches(msg, m.keys.ZoomIn):
			m.zoom(1.5)
		case key.Matches(msg, m.keys.ZoomOut):
			m.zoom(1 / 1.5)
		}
	}
	return m, nil
}

// zoom rescales the density around the viewport's left edge, keeping the
// anchored date stable.
func (m *Model) zoom(factor float64) {
	anchor := timeline.PixelToDate(m.offsetX, m.origin, m.ppd)
	m.ppd = timeline.ClampPixelsPerDay(m.ppd * factor)
	m.offsetX = timeline.DateToPixel(anchor, m.origin, m.ppd)
}

func (m Model) chartWidth() int {
	w := m.width - 16
	if w < 20 {
		w = 20
	}
	return w
}

// View implements tea.Model.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("LIFE TIMELINE") + "\n\n")

	vp := timeline.Viewport{
		OffsetX:      m.offsetX,
		Width:        float64(m.chartWidth()),
		PixelsPerDay: m.ppd,
	}

	boxes := timeline.LayoutPhases(m.phases, m.origin, m.ppd)
	visible := timeline.CullPhases(boxes, vp)
	rows := timeline.RowCount(boxes)

	// One terminal row per lane; each phase renders as a run of blocks.
	for r := 0; r < rows; r++ {
		line := make([]rune, m.chartWidth())
		for i := range line {
			line[i] = ' '
		}
		label := ""
		var style lipgloss.Style
		for _, b := range visible {
			if b.Row != r {
				continue
			}
			if label == "" {
				label = laneLabel(b.Phase)
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(b.Phase.Category.Style().Color))
			}
			from := int(b.X - m.offsetX)
			to := int(b.X + b.Width - m.offsetX)
			for x := from; x < to && x < len(line); x++ {
				if x >= 0 {
					line[x] = blockRune(b.Phase.Certainty)
				}
			}
		}
		sb.WriteString(laneLabelStyle.Render(label))
		sb.WriteString(style.Render(string(line)))
		sb.WriteString("\n")
	}

	sb.WriteString(laneLabelStyle.Render(""))
	sb.WriteString(axisStyle.Render(m.axisLine(vp)) + "\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// laneLabel names a lane by its first visible phase's grouping.
func laneLabel(p domain.Phase) string {
	if p.FamilyMember != "" {
		return "family:" + p.FamilyMember
	}
	return p.Category.Style().Label
}

// blockRune fades block density with certainty, mirroring the opacity table.
func blockRune(c domain.Certainty) rune {
	switch c {
	case domain.CertaintyConfirmed:
		return '█'
	case domain.CertaintyLikely:
		return '▓'
	case domain.CertaintyPossible:
		return '▒'
	default:
		return '░'
	}
}

// axisLine renders major tick labels along the visible window.
func (m Model) axisLine(vp timeline.Viewport) string {
	windowStart := timeline.PixelToDate(vp.OffsetX, m.origin, m.ppd)
	windowEnd := timeline.PixelToDate(vp.OffsetX+vp.Width, m.origin, m.ppd)
	ticks := timeline.GenerateTicks(windowStart, windowEnd, m.origin, m.ppd)

	line := make([]rune, m.chartWidth())
	for i := range line {
		line[i] = ' '
	}
	for _, t := range ticks {
		x := int(t.X - vp.OffsetX)
		if x < 0 || x >= len(line) {
			continue
		}
		if !t.Major {
			line[x] = '·'
			continue
		}
		line[x] = '|'
		for i, r := range t.Label {
			if x+1+i < len(line) {
				line[x+1+i] = r
			}
		}
	}
	return string(line)
}
