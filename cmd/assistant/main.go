package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/treykane/cli-assistant/internal/app"
	"github.com/treykane/cli-assistant/internal/config"
	"github.com/treykane/cli-assistant/internal/logging"
)

var log = logging.New("main")

func main() {
	if err := loadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "segment":
			if err := runSegment(os.Args[2:], os.Stdin, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			return
		case "-h", "--help", "help":
			fmt.Fprint(os.Stdout, usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
			os.Exit(2)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

const usage = `Usage:
  assistant                 start the chat assistant
  assistant segment [file]  print the text/code segments of a message as JSON lines
`

func run() error {
	cfg, err := loadOrInitConfig()
	if err != nil {
		return err
	}

	m := app.New(cfg)
	if path, err := config.ConfigPath(); err == nil {
		if err := m.WatchConfig(path); err != nil {
			log.Warn("config watcher disabled", "error", err)
		}
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("close config watcher", "error", err)
		}
	}()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// loadEnv reads .env from the working directory, if present, and then
// rebuilds the log handler so CLI_ASSISTANT_LOG_* from .env are honored.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	logging.Init()
	return nil
}

// loadOrInitConfig loads the saved config, writing defaults on first run.
func loadOrInitConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotConfigured) {
		return config.Config{}, err
	}
	cfg = config.DefaultConfig()
	if err := config.Save(cfg); err != nil {
		log.Warn("save default config", "error", err)
	}
	return cfg, nil
}
