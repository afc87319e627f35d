// Package main is the entry point for the wardrobe-cli application.
// It registers the administrative sub-commands (database, tokens, weather, outfits, uploads)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/CharlieZimmermann/wardrobe-app/cmd/wardrobe-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "wardrobe-cli",
		Short: "Administration CLI for the wardrobe backend",
		Long: `wardrobe-cli runs administrative tasks against the wardrobe backend configuration.
It can migrate the database, mint bearer tokens for local testing, look up weather,
print the outfit prompt a user would send to the stylist, and upload clothing photos
to a running server.

Configuration is read from the file given by --config (or CONFIG_PATH), then from
WARDROBE_* environment variables and .env.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", os.Getenv("CONFIG_PATH"), "Path to the YAML configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	initializers := []struct {
		name string
		init func(*cobra.Command) error
	}{
		{"database", commands.InitDatabaseCommands},
		{"token", commands.InitTokenCommands},
		{"weather", commands.InitWeatherCommands},
		{"outfit", commands.InitOutfitCommands},
		{"upload", commands.InitUploadCommands},
	}

	for _, i := range initializers {
		if err := i.init(rootCmd); err != nil {
			return fmt.Errorf("failed to initialize %s commands: %w", i.name, err)
		}
	}
	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
