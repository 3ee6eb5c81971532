package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/superhawk610/sqlit/pkg/database"
	"github.com/superhawk610/sqlit/pkg/logging"
	"github.com/superhawk610/sqlit/pkg/ui"
	"github.com/superhawk610/sqlit/pkg/ui/base"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Configuration struct {
	DatabaseName string
	ImportFile   string
	DemoMode     bool
	Plain        bool
	Theme        string
	LogLevel     string
	LogFile      string
	LogFormat    string
}

func main() {
	config := parseArguments()

	if err := initializeLogging(config); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	palette, err := base.PaletteByName(config.Theme)
	if err != nil {
		log.Fatalf("Invalid theme: %v", err)
	}

	showSplashScreen(palette, !config.Plain)

	db, err := database.Open(config.DatabaseName)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if config.DemoMode {
		if err := runDemoMode(db); err != nil {
			log.Fatalf("Demo mode failed: %v", err)
		}
	}

	if config.ImportFile != "" {
		if err := importData(db, config.ImportFile); err != nil {
			log.Fatalf("Failed to import data: %v", err)
		}
	}

	if config.Plain {
		if err := runPlainMode(db, palette); err != nil {
			log.Fatalf("REPL failed: %v", err)
		}
		return
	}

	if err := startInteractiveMode(db, palette); err != nil {
		log.Fatalf("Failed to start UI: %v", err)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.DatabaseName, "db", "main", "Database name")
	flag.StringVar(&config.ImportFile, "import", "", "SQL script to run on startup")
	flag.BoolVar(&config.DemoMode, "demo", false, "Create sample tables and rows before starting")
	flag.BoolVar(&config.Plain, "plain", false, "Use a line-based prompt instead of the full-screen UI")
	flag.StringVar(&config.Theme, "theme", "dark", "Color theme (dark or light)")
	flag.StringVar(&config.LogLevel, "log-level", "", "Log level (debug, info, warn, error, off)")
	flag.StringVar(&config.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.StringVar(&config.LogFormat, "log-format", "text", "Log format (text or json)")

	flag.Parse()

	return config
}

// initializeLogging configures the global logger. The full-screen UI owns
// the terminal, so without a log file it runs with logging switched off.
func initializeLogging(config Configuration) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	if config.LogLevel == "" && !config.Plain && config.LogFile == "" {
		level = logging.LevelOff
	}

	return logging.Init(logging.Config{
		Level:      level,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	})
}

// showSplashScreen prints the banner, pausing briefly before the UI takes
// over the screen.
func showSplashScreen(palette base.ColorPalette, pause bool) {
	splash := `
███████╗ ██████╗ ██╗     ██╗████████╗
██╔════╝██╔═══██╗██║     ██║╚══██╔══╝
███████╗██║   ██║██║     ██║   ██║
╚════██║██║▄▄ ██║██║     ██║   ██║
███████║╚██████╔╝███████╗██║   ██║
╚══════╝ ╚══▀▀═╝ ╚══════╝╚═╝   ╚═╝
`

	style := lipgloss.NewStyle().
		Foreground(palette.Primary).
		Bold(true)
	tagline := lipgloss.NewStyle().
		Foreground(palette.Muted).
		Render(base.CenterString("an in-memory SQL database", 38))

	fmt.Println(style.Render(splash))
	fmt.Println(tagline)
	fmt.Println()

	if pause {
		time.Sleep(time.Second)
	}
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(db *database.Database, palette base.ColorPalette) error {
	p := tea.NewProgram(
		ui.NewModel(db, palette),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

var demoScript = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT UNIQUE,
	age INTEGER
);

CREATE TABLE products (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT DEFAULT 'General',
	price REAL
);

INSERT INTO users (id, name, email, age) VALUES
	(1, 'Alice Johnson', 'alice@example.com', 28),
	(2, 'Bob Smith', 'bob@example.com', 35),
	(3, 'Charlie Brown', 'charlie@example.com', 42),
	(4, 'Diana Prince', 'diana@example.com', 31);

INSERT INTO products (id, name, category, price) VALUES
	(1, 'Laptop Pro', 'Electronics', 1299.99),
	(2, 'Wireless Mouse', 'Electronics', 29.99),
	(3, 'Office Chair', 'Furniture', 399.99);

INSERT INTO products (id, name) VALUES (4, 'Gift Card');
`

// runDemoMode sets up sample tables and data
func runDemoMode(db *database.Database) error {
	fmt.Println("Creating sample database...")

	results, err := db.ExecuteScript(context.Background(), demoScript)
	if err != nil {
		return fmt.Errorf("failed to execute demo script: %w", err)
	}

	fmt.Printf("Demo database created (%d statements).\n", len(results))
	fmt.Println("Sample queries you can try:")
	fmt.Println("  SELECT * FROM users")
	fmt.Println("  SELECT name, age FROM users")
	fmt.Println("  SELECT DISTINCT category FROM products")
	fmt.Println()

	return nil
}

// importData runs the SQL script in filename. Nothing executes if any
// statement fails to parse.
func importData(db *database.Database, filename string) error {
	fmt.Printf("Importing %s...\n", filename)

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	results, err := db.ExecuteScript(context.Background(), string(content))
	if err != nil {
		return fmt.Errorf("import stopped after %d statement(s): %w", len(results), err)
	}

	inserted := 0
	for _, r := range results {
		inserted += r.RowsAffected
	}

	fmt.Printf("Import completed: %d statement(s), %d row(s) inserted\n", len(results), inserted)
	return nil
}

// truncateString limits string length for display
func truncateString(s string, maxLen int) string {
	return base.TruncateString(strings.Join(strings.Fields(s), " "), maxLen)
}
