package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cabquote/internal/cli/formatter"
	"github.com/alexanderramin/cabquote/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse stored quotes interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("browse requires a terminal (use 'quote list' instead)")
			}
			p := tea.NewProgram(newBrowseModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// quotesLoadedMsg signals that quote list data has been loaded.
type quotesLoadedMsg struct {
	quotes []*domain.Quote
	err    error
}

type browseKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var defaultBrowseKeys = browseKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseModel shows a navigable list of quotes with a breakdown detail view.
type browseModel struct {
	app     *App
	keys    browseKeys
	quotes  []*domain.Quote
	cursor  int
	loading bool
	err     error

	// Filtering
	filtering bool
	filter    string

	// Detail view; nil means the list is showing.
	selected *domain.Quote
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{
		app:     app,
		keys:    defaultBrowseKeys,
		loading: true,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadQuotes()
}

func (m *browseModel) loadQuotes() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		quotes, err := app.Quotes.List(context.Background())
		return quotesLoadedMsg{quotes: quotes, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quotesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.quotes = msg.quotes
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m *browseModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.selected != nil {
		if key.Matches(msg, m.keys.Back) {
			m.selected = nil
		}
		return m, nil
	}

	visible := m.visibleQuotes()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(visible) {
			m.selected = visible[m.cursor]
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter = ""
	case key.Matches(msg, m.keys.Back):
		if m.filter != "" {
			m.filter = ""
			m.cursor = 0
		}
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.cursor = 0
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.cursor = 0
	}
	return m, nil
}

// visibleQuotes applies the label filter, case-insensitively.
func (m *browseModel) visibleQuotes() []*domain.Quote {
	if m.filter == "" {
		return m.quotes
	}
	needle := strings.ToLower(m.filter)
	var out []*domain.Quote
	for _, q := range m.quotes {
		if strings.Contains(strings.ToLower(q.Label), needle) ||
			strings.HasPrefix(q.ID, needle) {
			out = append(out, q)
		}
	}
	return out
}

func (m *browseModel) View() string {
	if m.loading {
		return formatter.Dim("Loading quotes...")
	}
	if m.err != nil {
		return formatter.StyleRed.Render("error: "+m.err.Error()) + "\n"
	}

	if m.selected != nil {
		var b strings.Builder
		b.WriteString(formatter.StatusIndicator(m.selected.Status))
		b.WriteString("  ")
		b.WriteString(formatter.Dim(m.selected.ID))
		b.WriteString("\n\n")
		b.WriteString(formatter.FormatBreakdown(m.selected.Breakdown))
		b.WriteString("\n")
		b.WriteString(formatter.Dim("esc back · q quit"))
		return b.String()
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Quotes"))
	b.WriteString("\n")

	visible := m.visibleQuotes()
	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No quotes.") + "\n")
	}
	for i, q := range visible {
		cursor := "  "
		line := fmt.Sprintf("%s  %-20s %s %12s",
			formatter.ShortID(q.ID), labelOrPlaceholder(q.Label),
			formatter.StatusIndicator(q.Status), formatter.Money(q.TotalCost))
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			line = formatter.Bold(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(formatter.StyleHeader.Render("/") + m.filter + "█\n")
	} else {
		b.WriteString(formatter.Dim("enter show · / filter · q quit"))
	}
	return b.String()
}

func labelOrPlaceholder(label string) string {
	if label == "" {
		return "(unlabeled)"
	}
	return label
}
