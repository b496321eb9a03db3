package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateNotes
)

type RootModel struct {
	State    state
	Client   *Client
	Login    LoginModel
	Notes    NotesModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(c *Client) RootModel {
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateNotes {
			m.Notes.Table.SetHeight(msg.Height - 8)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginDoneMsg:
		m.State = stateNotes
		m.Notes = NewNotesModel(m.Client, m.width, m.height)
		return m, m.Notes.Init()
	}

	switch m.State {
	case stateLogin:
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateNotes:
		newNotes, cmd := m.Notes.Update(msg)
		m.Notes = newNotes
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Sampai jumpa!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateNotes:
		return m.Notes.View()
	}
	return ""
}
