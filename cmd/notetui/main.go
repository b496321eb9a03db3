package main

import (
	"flag"
	"fmt"
	"os"

	"catatan/cmd/notetui/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8420", "Backend base URL")
	flag.Parse()

	m := ui.NewRootModel(ui.NewClient(*addr))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "notetui:", err)
		os.Exit(1)
	}
}
