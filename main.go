package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"sapopener/config"
	"sapopener/interpreter"
	"sapopener/launcher"
	"sapopener/logger"
	"sapopener/models"
	"sapopener/ui"
	"sapopener/updater"
)

func main() {
	logger.Init("info")
	defer logger.Sync()

	// Check for command-line arguments
	if len(os.Args) > 1 {
		handleCommandLineArgs()
		return
	}

	// Normal GUI mode
	cfg := config.NewManager()
	interp := interpreter.New(cfg, launcher.NewManager())

	app := ui.NewMainWindow(cfg, interp, updater.New())
	app.ShowAndRun()
}

// handleCommandLineArgs processes command-line arguments
func handleCommandLineArgs() {
	args := os.Args[1:]

	switch args[0] {
	case "-open", "--open":
		if len(args) < 2 {
			fmt.Println("Error: Shortcut code required")
			showUsage()
			return
		}
		openCode(args[1])
	case "-list", "--list":
		listShortcuts()
	case "-check-update", "--check-update":
		checkUpdate()
	case "-help", "--help", "-h", "--h":
		showUsage()
	default:
		fmt.Printf("Unknown option: %s\n", args[0])
		showUsage()
	}
}

// openCode dispatches a single shortcut code without showing the GUI
func openCode(code string) {
	cfg := config.NewManager()
	interp := interpreter.New(cfg, launcher.NewManager())

	if err := interp.Execute(code); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// listShortcuts prints the configured shortcuts and SAP defaults
func listShortcuts() {
	cfg := config.NewManager()

	fmt.Println("Application shortcuts:")
	fmt.Println("======================")
	for name, target := range cfg.AppShortcuts() {
		fmt.Printf("  %s -> %s\n", name, target)
	}

	fmt.Println()
	fmt.Println("Web shortcuts:")
	fmt.Println("==============")
	for name, target := range cfg.WebShortcuts() {
		fmt.Printf("  %s -> %s\n", name, target)
	}

	fmt.Println()
	fmt.Println("Default SAP clients:")
	fmt.Println("====================")
	for system, client := range cfg.SAPClients() {
		fmt.Printf("  %s -> %s\n", system, client)
	}

	fmt.Println()
	fmt.Printf("SAP launcher: %s\n", cfg.LauncherPath())
}

// checkUpdate queries the release feed and reports whether an update exists
func checkUpdate() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := updater.New().CheckForUpdate(ctx)
	if err != nil {
		fmt.Printf("Error checking for update: %v\n", err)
		return
	}

	fmt.Printf("Current version: %s\n", info.CurrentVersion)
	if info.UpdateAvailable {
		fmt.Printf("Update available: %s (%s)\n", info.LatestVersion, info.ReleaseURL)
	} else {
		fmt.Println("No update available.")
	}
}

// showUsage displays command-line usage information
func showUsage() {
	fmt.Printf("%s - Command Line Usage\n", models.AppName)
	fmt.Println("============================")
	fmt.Println()
	fmt.Println("GUI Mode (default):")
	fmt.Println("  sapopener.exe")
	fmt.Println()
	fmt.Println("Command Line Options:")
	fmt.Println("  -open <code>       Dispatch a shortcut code")
	fmt.Println("  -list              List configured shortcuts and defaults")
	fmt.Println("  -check-update      Check the release feed for a new version")
	fmt.Println("  -help              Show this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sapopener.exe -open qg1         # Open system QG1 with defaults")
	fmt.Println("  sapopener.exe -open enqg1200    # Language EN, system QG1, client 200")
	fmt.Println("  sapopener.exe -open w           # Open the configured web shortcut")
	fmt.Println("  sapopener.exe -list             # Show configured shortcuts")
}
