package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/cheesecake-chat/internal/client/connection"
	"github.com/yourusername/cheesecake-chat/internal/client/ui"
	"github.com/yourusername/cheesecake-chat/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load .env file: %v\n", err)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	endpoint := flag.String("endpoint", cfg.Endpoint, "URL of the /chat endpoint")
	logFile := flag.String("log", cfg.LogFile, "Write logs to this file (empty disables logging)")
	timeout := flag.Duration("timeout", cfg.Timeout, "Per-request timeout (0 means none)")
	flag.Parse()

	if err := config.ValidateEndpoint(*endpoint); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(1)
	}

	// The alt screen owns stdout, so logs go to a file or nowhere
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "chat")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	connMgr := connection.NewManager(*endpoint, connection.WithTimeout(*timeout))
	log.Printf("Starting chat widget against %s", *endpoint)

	p := tea.NewProgram(ui.NewModel(connMgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Printf("program exited with error: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
