package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/crossnames/pkg/layout"
	"github.com/matzehuels/crossnames/pkg/pipeline"
)

var (
	browserFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
	browserDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// browserModel - Interactive layout pager
// =============================================================================

// browserModel pages through the layouts of a result one at a time.
type browserModel struct {
	layouts []layout.Layout
	words   []string
	cached  bool
	cursor  int
}

func newBrowserModel(r *pipeline.Result) browserModel {
	return browserModel{
		layouts: r.Layouts,
		words:   r.Words,
		cached:  r.CacheHit,
	}
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	last := len(m.layouts) - 1
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "n", " ":
		if m.cursor < last {
			m.cursor++
		}
	case "left", "h", "p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(last, 0)
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(strings.Join(m.words, " · ")))
	b.WriteString("\n")
	b.WriteString(browserDimStyle.Render("←/→ browse  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.layouts) == 0 {
		b.WriteString(StyleWarning.Render("No layout places every name"))
		b.WriteString("\n")
		return b.String()
	}

	l := m.layouts[m.cursor]
	b.WriteString(browserFrameStyle.Render(renderGrid(l.Grid, l.Placements)))
	b.WriteString("\n")

	status := iconFresh
	if m.cached {
		status = iconCached
	}
	b.WriteString(browserDimStyle.Render(fmt.Sprintf("  [%d/%d] %s  %s",
		m.cursor+1, len(m.layouts), strings.Join(l.Ordering, " "), status)))
	b.WriteString("\n")

	return b.String()
}
