package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/seekerlabs/missiongraph/pkg/layout"
	"github.com/seekerlabs/missiongraph/pkg/plan"
)

func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [plan-file]",
		Short: "Browse a plan's objectives in an interactive TUI",
		Long: `Launch an interactive browser over the objectives of a mission plan.

Navigate with ↑/↓ or j/k, press Enter to see an objective's queries,
tactics and inferred dependencies, Esc to go back, q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("inspect requires an interactive terminal; use 'graph -f ascii' instead")
	}

	doc, err := plan.LoadDocument(args[0], "")
	if err != nil {
		return err
	}

	graph := layout.Compile(doc, layout.DefaultConfig())
	graph.Edges = append(graph.Edges, layout.ResolveDependencies(doc, graph)...)

	model := newInspectModel(doc, graph)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type objectiveItem struct {
	obj *plan.Objective
}

func (i objectiveItem) Title() string { return fmt.Sprintf("%s  %s", i.obj.ID, i.obj.Description) }
func (i objectiveItem) Description() string {
	return fmt.Sprintf("%d queries, %d tactics", len(i.obj.Queries), len(i.obj.Tactics))
}
func (i objectiveItem) FilterValue() string { return i.obj.ID + " " + i.obj.Description }

type inspectModel struct {
	doc        *plan.Document
	graph      *layout.Graph
	list       list.Model
	viewport   viewport.Model
	showDetail bool
	ready      bool
}

var (
	inspectTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	inspectHeaderStyle = lipgloss.NewStyle().Bold(true)
	inspectDimStyle    = lipgloss.NewStyle().Faint(true)
)

func newInspectModel(doc *plan.Document, graph *layout.Graph) *inspectModel {
	items := make([]list.Item, 0, len(doc.Strategy))
	for i := range doc.Strategy {
		items = append(items, objectiveItem{obj: &doc.Strategy[i]})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Objectives — " + doc.QueryContext
	l.SetShowStatusBar(false)

	return &inspectModel{doc: doc, graph: graph, list: l}
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		m.viewport = viewport.New(msg.Width, msg.Height-2)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if !m.showDetail {
				if item, ok := m.list.SelectedItem().(objectiveItem); ok {
					m.viewport.SetContent(m.renderDetail(item.obj))
					m.viewport.GotoTop()
					m.showDetail = true
				}
				return m, nil
			}
		case "esc":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.showDetail {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m *inspectModel) View() string {
	if !m.ready {
		return "loading..."
	}
	if m.showDetail {
		return m.viewport.View() + "\n" + inspectDimStyle.Render("esc: back  q: quit")
	}
	return m.list.View()
}

func (m *inspectModel) renderDetail(obj *plan.Objective) string {
	var buf strings.Builder
	buf.WriteString(inspectTitleStyle.Render(fmt.Sprintf("%s  %s", obj.ID, obj.Description)))
	buf.WriteString("\n\n")

	if len(obj.Tenant) > 0 {
		buf.WriteString(inspectDimStyle.Render("tags: " + strings.Join(obj.Tenant, ", ")))
		buf.WriteString("\n\n")
	}

	if len(obj.Queries) > 0 {
		buf.WriteString(inspectHeaderStyle.Render("Queries"))
		buf.WriteString("\n")
		for _, q := range obj.Queries {
			buf.WriteString(fmt.Sprintf("  %s  %s\n", q.ID, q.Description))
		}
		buf.WriteString("\n")
	}

	if len(obj.Tactics) > 0 {
		buf.WriteString(inspectHeaderStyle.Render("Tactics"))
		buf.WriteString("\n")
		for t := range obj.Tactics {
			tac := &obj.Tactics[t]
			buf.WriteString(fmt.Sprintf("  %s  %s\n", tac.ID, tac.Description))
			if tac.ExpectedArtifact != "" {
				buf.WriteString(inspectDimStyle.Render(fmt.Sprintf("      produces %s", tac.ExpectedArtifact)))
				buf.WriteString("\n")
			}
			if deps := dependencySources(m.graph, obj.ID, tac.ID); len(deps) > 0 {
				buf.WriteString(inspectDimStyle.Render(fmt.Sprintf("      after %s", strings.Join(deps, ", "))))
				buf.WriteString("\n")
			}
		}
	}

	return buf.String()
}
