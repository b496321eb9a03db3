package ui

import (
	"strconv"
	"strings"

	"catatan/app/models"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type notesLoadedMsg []models.Note

type actionDoneMsg struct{}

type NotesModel struct {
	Client *Client
	Table  table.Model
	Notes  []models.Note
	Err    error
}

func NewNotesModel(c *Client, width, height int) NotesModel {
	columns := []table.Column{
		{Title: "Pin", Width: 4},
		{Title: "Title", Width: 32},
		{Title: "Category", Width: 12},
		{Title: "Created", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-8),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return NotesModel{Client: c, Table: t}
}

func (m NotesModel) Init() tea.Cmd {
	return m.RefreshCmd
}

func (m NotesModel) RefreshCmd() tea.Msg {
	notes, err := m.Client.ListNotes()
	if err != nil {
		return errMsg(err)
	}
	return notesLoadedMsg(notes)
}

func (m NotesModel) selected() (models.Note, bool) {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Notes) {
		return models.Note{}, false
	}
	return m.Notes[idx], true
}

func (m NotesModel) Update(msg tea.Msg) (NotesModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.RefreshCmd
		case "p":
			if n, ok := m.selected(); ok {
				return m, func() tea.Msg {
					if err := m.Client.SetPin(n.ID, !n.IsFavorite); err != nil {
						return errMsg(err)
					}
					return actionDoneMsg{}
				}
			}
		case "d":
			if n, ok := m.selected(); ok {
				return m, func() tea.Msg {
					if err := m.Client.DeleteNote(n.ID); err != nil {
						return errMsg(err)
					}
					return actionDoneMsg{}
				}
			}
		case "q":
			return m, tea.Quit
		}

	case actionDoneMsg:
		return m, m.RefreshCmd

	case notesLoadedMsg:
		m.Err = nil
		m.Notes = msg
		rows := make([]table.Row, 0, len(msg))
		for _, n := range msg {
			pin := ""
			if n.IsFavorite {
				pin = "*"
			}
			rows = append(rows, table.Row{pin, n.Title, n.Category, n.CreatedAt.Format("2006-01-02 15:04")})
		}
		m.Table.SetRows(rows)

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m NotesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Catatan Saya ("+strconv.Itoa(len(m.Notes))+")") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'p' pin/unpin, 'd' delete, 'q' quit"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
