package commands

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CharlieZimmermann/wardrobe-app/internal/app"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/stylist"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// OutfitCommandHandler runs the outfit pipeline for a single user
type OutfitCommandHandler struct {
	logger logger.Logger
}

// NewOutfitCommandHandler creates an OutfitCommandHandler
func NewOutfitCommandHandler() (*OutfitCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &OutfitCommandHandler{logger: loggerInstance}, nil
}

// outfitService wires the service against the configured database. The caller closes db.
func (commandHandler *OutfitCommandHandler) outfitService(cmd *cobra.Command) (outfits.OutfitService, *gorm.DB, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	itemRepo, err := persistence.NewGormClothingItemRepository(db, commandHandler.logger)
	if err != nil {
		return nil, db, err
	}
	profileRepo, err := persistence.NewGormProfileRepository(db, commandHandler.logger)
	if err != nil {
		return nil, db, err
	}

	weatherService, err := newWeatherService(cfg, commandHandler.logger)
	if err != nil {
		return nil, db, err
	}

	stylistClient := stylist.NewAnthropicStylist(&cfg.Stylist, &http.Client{Timeout: cfg.Stylist.Timeout}, commandHandler.logger)

	service, err := app.NewOutfitService(itemRepo, profileRepo, weatherService, stylistClient, commandHandler.logger)
	if err != nil {
		return nil, db, err
	}
	return service, db, nil
}

func (commandHandler *OutfitCommandHandler) closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if err := persistence.CloseDB(db); err != nil {
		commandHandler.logger.Warn("closing database failed", "error", err)
	}
}

func userAndCity(cmd *cobra.Command) (string, string, error) {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		return "", "", fmt.Errorf("invalid user-id flag: %w", err)
	}
	if userID == "" {
		return "", "", fmt.Errorf("--user-id is required")
	}

	city := ""
	if cmd.Flags().Lookup("city") != nil {
		city, err = cmd.Flags().GetString("city")
		if err != nil {
			return "", "", fmt.Errorf("invalid city flag: %w", err)
		}
	}
	return userID, city, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// PromptCmd prints the stylist prompt for a user without calling the stylist
func (commandHandler *OutfitCommandHandler) PromptCmd(cmd *cobra.Command, _ []string) error {
	userID, city, err := userAndCity(cmd)
	if err != nil {
		return err
	}

	service, db, err := commandHandler.outfitService(cmd)
	defer commandHandler.closeDB(db)
	if err != nil {
		return err
	}

	prompt, err := service.Prompt(cmd.Context(), userID, city)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
	return err
}

// SuggestCmd generates an outfit for a user
func (commandHandler *OutfitCommandHandler) SuggestCmd(cmd *cobra.Command, _ []string) error {
	userID, city, err := userAndCity(cmd)
	if err != nil {
		return err
	}

	service, db, err := commandHandler.outfitService(cmd)
	defer commandHandler.closeDB(db)
	if err != nil {
		return err
	}

	suggestion, err := service.Generate(cmd.Context(), userID, city)
	if err != nil {
		return err
	}
	return printJSON(cmd, suggestion)
}

// GapReportCmd prints the essential categories missing from a user's wardrobe
func (commandHandler *OutfitCommandHandler) GapReportCmd(cmd *cobra.Command, _ []string) error {
	userID, _, err := userAndCity(cmd)
	if err != nil {
		return err
	}

	service, db, err := commandHandler.outfitService(cmd)
	defer commandHandler.closeDB(db)
	if err != nil {
		return err
	}

	report, err := service.FindGaps(cmd.Context(), userID)
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

// InitOutfitCommands registers the outfit commands
func InitOutfitCommands(rootCmd *cobra.Command) error {
	handler, err := NewOutfitCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create outfit command handler: %w", err)
	}
	registerOutfitCommands(rootCmd, handler)
	return nil
}

func registerOutfitCommands(rootCmd *cobra.Command, handler *OutfitCommandHandler) {
	var promptCmd = &cobra.Command{
		Use:   "outfit-prompt",
		Short: "Print the stylist prompt for a user's wardrobe and the weather in a city",
		RunE:  handler.PromptCmd,
	}
	promptCmd.Flags().StringP("user-id", "", "", "Owner of the wardrobe")
	promptCmd.Flags().StringP("city", "", outfits.DefaultCity, "City to dress for")
	rootCmd.AddCommand(promptCmd)

	var suggestCmd = &cobra.Command{
		Use:   "outfit-suggest",
		Short: "Ask the stylist for an outfit",
		RunE:  handler.SuggestCmd,
	}
	suggestCmd.Flags().StringP("user-id", "", "", "Owner of the wardrobe")
	suggestCmd.Flags().StringP("city", "", outfits.DefaultCity, "City to dress for")
	rootCmd.AddCommand(suggestCmd)

	var gapReportCmd = &cobra.Command{
		Use:   "gap-report",
		Short: "List essential clothing categories missing from a wardrobe",
		RunE:  handler.GapReportCmd,
	}
	gapReportCmd.Flags().StringP("user-id", "", "", "Owner of the wardrobe")
	rootCmd.AddCommand(gapReportCmd)
}
