// Package main is the entry point for the weekdaytab terminal program.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/weekdaytab/internal/config"
	"github.com/hy4ri/weekdaytab/internal/locale"
	"github.com/hy4ri/weekdaytab/internal/logging"
	"github.com/hy4ri/weekdaytab/internal/tui"
)

const version = "0.1.0"

const helpText = `weekdaytab - pick a day of the week from a tab strip

USAGE:
    weekdaytab [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --lang LANG         Display language (zh, en)
    --week-start DAY    First day of the week (monday, sunday)
    --save              Store --lang and --week-start in the config file

CONFIGURATION:
    Config file: ~/.config/weekdaytab/config.yaml
    Debug log:   ~/.config/weekdaytab/debug.log

CONTROLS:
    Click       Select a day
    [ / ]       Previous / next week
    t           Jump to today
    y           Copy the selected date
    ?           Toggle help
    q           Quit
`

const configTemplate = `# weekdaytab configuration
# Location: ~/.config/weekdaytab/config.yaml

ui:
  # Display language: zh or en (default: zh)
  language: zh

  # First day of the week: monday or sunday (default: monday)
  week_start: monday

  # Label shown on today's tab instead of its weekday name.
  # Empty uses the language's own word for today.
  # today_label: ""

  # Send a desktop notification when the selected day changes (default: false)
  notify_on_change: false

log:
  # debug, info, warn or error (default: info)
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		saveConfig  bool
		lang        string
		weekStart   string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&lang, "lang", "", "Display language")
	flag.StringVar(&weekStart, "week-start", "", "First day of the week")
	flag.BoolVar(&saveConfig, "save", false, "Store flag overrides in the config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("weekdaytab version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override the config file
	if lang != "" {
		cfg.UI.Language = lang
	}
	if weekStart != "" {
		cfg.UI.WeekStart = weekStart
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if saveConfig {
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("Config saved.")
	}

	return runApp(cfg)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the TUI.
func runApp(cfg *config.Config) error {
	closeLog, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	tr, err := locale.New(cfg.UI.Language)
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}

	slog.Info("starting", logging.KeyComponent, "main", "version", version, "lang", tr.Language())

	app := tui.NewApp(cfg, tr)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
