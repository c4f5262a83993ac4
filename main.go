package main

import (
	"fmt"
	"os"

	"github.com/nconklindev/tabv/internal/settings"
	"github.com/nconklindev/tabv/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Handle --version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("tabv %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		os.Exit(0)
	}

	st, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read settings: %v\n", err)
	}

	// A file argument wins; otherwise reopen the last viewed file if it is
	// still around, otherwise start in the picker.
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	} else if st.LastFile != "" {
		if _, err := os.Stat(st.LastFile); err == nil {
			path = st.LastFile
		}
	}

	p := tea.NewProgram(ui.InitialModel(path, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
