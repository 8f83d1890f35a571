package cli

import (
	"testing"

	"github.com/alexanderramin/cabquote/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedBrowseModel(quotes []*domain.Quote) *browseModel {
	m := newBrowseModel(&App{})
	updated, _ := m.Update(quotesLoadedMsg{quotes: quotes})
	return updated.(*browseModel)
}

func sampleQuotes() []*domain.Quote {
	return []*domain.Quote{
		{ID: "aaaa1111", Label: "customer A", Status: domain.QuoteDraft, TotalCost: 100},
		{ID: "bbbb2222", Label: "customer B", Status: domain.QuoteFinalized, TotalCost: 200},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowseModel_ListAndSelect(t *testing.T) {
	m := loadedBrowseModel(sampleQuotes())

	view := m.View()
	assert.Contains(t, view, "customer A")
	assert.Contains(t, view, "customer B")

	updated, _ := m.Update(keyMsg("j"))
	m = updated.(*browseModel)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*browseModel)
	require.NotNil(t, m.selected)
	assert.Equal(t, "bbbb2222", m.selected.ID)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*browseModel)
	assert.Nil(t, m.selected)
}

func TestBrowseModel_Filter(t *testing.T) {
	m := loadedBrowseModel(sampleQuotes())

	updated, _ := m.Update(keyMsg("/"))
	m = updated.(*browseModel)
	assert.True(t, m.filtering)

	for _, r := range "customer b" {
		updated, _ = m.Update(keyMsg(string(r)))
		m = updated.(*browseModel)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*browseModel)

	visible := m.visibleQuotes()
	require.Len(t, visible, 1)
	assert.Equal(t, "bbbb2222", visible[0].ID)
}

func TestBrowseModel_QuitKey(t *testing.T) {
	m := loadedBrowseModel(sampleQuotes())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
