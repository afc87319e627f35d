package commands

import (
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatabaseCommandHandler encapsulates database maintenance commands
type DatabaseCommandHandler struct {
	logger logger.Logger
}

// NewDatabaseCommandHandler creates a DatabaseCommandHandler
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &DatabaseCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates the schema of the configured database
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			commandHandler.logger.Warn("closing database failed", "error", err)
		}
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	commandHandler.logger.Info("database migrated", "type", cfg.Database.Type)
	return nil
}

// InitDatabaseCommands registers the database commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler: %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
