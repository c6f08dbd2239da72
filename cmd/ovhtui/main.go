package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ovhtui/internal/config"
	"ovhtui/internal/ovh"
	"ovhtui/internal/tui"
	"ovhtui/internal/version"
)

func main() {
	// Essential command line flags only (GNU-style double dashes)
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/ovhtui/config.json)")
	endpointFlag := flag.String("endpoint", "", "Base URL of the account proxy backend")
	setupFlag := flag.Bool("setup", false, "Write a default configuration file and exit")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	// Override flag usage text to show clean, simple usage
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Run with default configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --endpoint http://localhost:5000 # Point at a local proxy\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --setup                          # Write a default config file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --version                        # Show version information\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --config string\n        %s\n", "Path to JSON configuration file (default: ~/.config/ovhtui/config.json)")
		fmt.Fprintf(os.Stderr, "  --endpoint string\n        %s\n", "Base URL of the account proxy backend")
		fmt.Fprintf(os.Stderr, "  --setup\n        %s\n", "Write a default configuration file and exit")
		fmt.Fprintf(os.Stderr, "  --version\n        %s\n\n", "Show version information and exit")
		fmt.Fprintf(os.Stderr, "Environment Variables:\n")
		fmt.Fprintf(os.Stderr, "  OVHTUI_CONFIG    Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  OVHTUI_ENDPOINT  Override the proxy base URL\n")
		fmt.Fprintf(os.Stderr, "  OVHTUI_TOKEN     Bearer token forwarded to the proxy\n\n")
		fmt.Fprintf(os.Stderr, "For all other settings (timeouts, theme, key bindings), edit the config file.\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	if *setupFlag {
		runSetup()
		return
	}

	configPath := getConfigPath(*configPathFlag)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	cfg.Endpoint = getEndpoint(*endpointFlag, cfg.Endpoint)
	if env := os.Getenv("OVHTUI_TOKEN"); env != "" {
		cfg.Token = env
	}

	if cfg.Endpoint == "" {
		log.Fatal("Account proxy endpoint is required. Provide it via --endpoint, OVHTUI_ENDPOINT or the config file.")
	}

	client := ovh.NewClient(cfg.Endpoint, cfg.Token, cfg.GetTimeout())

	app := tui.NewApp(client, cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable OVHTUI_CONFIG
// 3. Default path ~/.config/ovhtui/config.json
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return expandPath(flagValue)
	}

	if envPath := os.Getenv("OVHTUI_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}

	return config.DefaultConfigPath()
}

// getEndpoint returns the proxy base URL using the following priority:
// 1. CLI flag
// 2. Environment variable OVHTUI_ENDPOINT
// 3. Config file setting
func getEndpoint(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if env := os.Getenv("OVHTUI_ENDPOINT"); env != "" {
		return env
	}

	return configValue
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}

// runSetup writes the default configuration file if one does not exist yet.
func runSetup() {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Configuration file already exists: %s\n", configPath)
		return
	}

	cfg := config.DefaultConfig()
	if err := cfg.SaveConfig(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create config file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created configuration file: %s\n", configPath)
	fmt.Printf("Edit it to set the proxy endpoint and token, then run %s\n", os.Args[0])
}
