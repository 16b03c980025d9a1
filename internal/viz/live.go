package viz

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/befriko/rockphypy/internal/sweep"
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Explorer is a Bubble Tea model that re-evaluates a sweep whenever a
// parameter is tuned, giving an interactive view of how the moduli curves
// respond.
type Explorer struct {
	model         sweep.Model
	cfg           sweep.Config
	result        *sweep.Result
	evalErr       error
	params        map[string]float64
	initialParams map[string]float64
	paramKeys     []string
	selected      int
	showShear     bool
}

// NewExplorer initializes the interactive sweep explorer.
func NewExplorer(model sweep.Model, cfg sweep.Config) Explorer {
	params := make(map[string]float64)
	initialParams := make(map[string]float64)
	if c, ok := model.(sweep.Configurable); ok {
		for k, v := range c.GetParams() {
			params[k] = v
			initialParams[k] = v
		}
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e := Explorer{
		model:         model,
		cfg:           cfg,
		params:        params,
		initialParams: initialParams,
		paramKeys:     keys,
	}
	e.evaluate()
	return e
}

func (e Explorer) Init() tea.Cmd {
	return nil
}

// Update handles input events and re-evaluates the sweep on changes.
func (e Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return e, tea.Quit
		case "tab":
			e.cycleParam()
		case "up", "k":
			e.adjustParam(1.05)
		case "down", "j":
			e.adjustParam(0.95)
		case "s":
			e.showShear = !e.showShear
		case "r":
			e.reset()
		}
	}
	return e, nil
}

func (e *Explorer) cycleParam() {
	if len(e.paramKeys) == 0 {
		return
	}
	e.selected = (e.selected + 1) % len(e.paramKeys)
}

func (e *Explorer) adjustParam(factor float64) {
	if len(e.paramKeys) == 0 {
		return
	}
	key := e.paramKeys[e.selected]
	newVal := e.params[key] * factor
	e.params[key] = newVal
	if c, ok := e.model.(sweep.Configurable); ok {
		c.SetParam(key, newVal)
	}
	e.evaluate()
}

func (e *Explorer) reset() {
	c, ok := e.model.(sweep.Configurable)
	for k, v := range e.initialParams {
		e.params[k] = v
		if ok {
			c.SetParam(k, v)
		}
	}
	e.evaluate()
}

func (e *Explorer) evaluate() {
	e.result, e.evalErr = sweep.New(e.model).Run(context.Background(), e.cfg)
}

// View renders the explorer interface.
func (e Explorer) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(e.model.Name())) + "\n")

	if e.evalErr != nil {
		s.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", e.evalErr)) + "\n")
	} else if e.result != nil {
		data, label := e.result.K, "K [GPa]"
		if e.showShear {
			data, label = e.result.G, "G [GPa]"
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("%s vs %s", label, e.model.Axis())),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")

		for name, val := range e.result.Metrics {
			s.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.4f", val)) + "\n")
		}
		if len(e.result.Errors) > 0 {
			s.WriteString(errorStyle.Render(fmt.Sprintf("%d points failed", len(e.result.Errors))) + "\n")
		}
	}

	s.WriteString("\nPARAMETERS\n")
	if len(e.paramKeys) == 0 {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}
	for i, k := range e.paramKeys {
		val, initial := e.params[k], e.initialParams[k]
		barWidth := 10
		ratio := 0.5
		if initial != 0 {
			ratio = val / (2 * initial)
		}
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-12s %s %.3f", k, bar, val)
		if i == e.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nTab:Param ↑↓:Tune S:Bulk/Shear R:Reset Q:Quit"))
	return s.String()
}
