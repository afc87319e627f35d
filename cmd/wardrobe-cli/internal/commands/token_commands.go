package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/auth"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// TokenCommandHandler mints and inspects bearer tokens
type TokenCommandHandler struct {
	logger logger.Logger
}

// NewTokenCommandHandler creates a TokenCommandHandler
func NewTokenCommandHandler() (*TokenCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &TokenCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *TokenCommandHandler) tokenService(cmd *cobra.Command) (*auth.JWTTokenService, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	tokens, err := auth.NewJWTTokenService(&cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	if !tokens.IsConfigured() {
		return nil, accounts.ErrSecretNotConfigured
	}
	return tokens, nil
}

// IssueTokenCmd prints a signed token for the given user
func (commandHandler *TokenCommandHandler) IssueTokenCmd(cmd *cobra.Command, _ []string) error {
	userID, err := cmd.Flags().GetString("user-id")
	if err != nil {
		return fmt.Errorf("invalid user-id flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	if strings.TrimSpace(userID) == "" {
		userID = uuid.NewString()
	}

	tokens, err := commandHandler.tokenService(cmd)
	if err != nil {
		return err
	}

	token, err := tokens.Issue(&accounts.Account{ID: userID, Email: accounts.NormalizeEmail(email)})
	if err != nil {
		return err
	}

	commandHandler.logger.Info("token issued", "user_id", userID, "expires_at", token.ExpiresAt)
	return json.NewEncoder(cmd.OutOrStdout()).Encode(token)
}

// VerifyTokenCmd prints the principal carried by a token
func (commandHandler *TokenCommandHandler) VerifyTokenCmd(cmd *cobra.Command, args []string) error {
	tokens, err := commandHandler.tokenService(cmd)
	if err != nil {
		return err
	}

	principal, err := tokens.Verify(args[0])
	if err != nil {
		return err
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(principal)
}

// InitTokenCommands registers the token commands
func InitTokenCommands(rootCmd *cobra.Command) error {
	handler, err := NewTokenCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create token command handler: %w", err)
	}
	registerTokenCommands(rootCmd, handler)
	return nil
}

func registerTokenCommands(rootCmd *cobra.Command, handler *TokenCommandHandler) {
	var issueTokenCmd = &cobra.Command{
		Use:   "issue-token",
		Short: "Sign a bearer token for a user id",
		RunE:  handler.IssueTokenCmd,
	}
	issueTokenCmd.Flags().StringP("user-id", "", "", "Subject of the token (random when empty)")
	issueTokenCmd.Flags().StringP("email", "", "", "Email claim of the token")
	rootCmd.AddCommand(issueTokenCmd)

	var verifyTokenCmd = &cobra.Command{
		Use:   "verify-token <token>",
		Short: "Verify a bearer token and print its principal",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.VerifyTokenCmd,
	}
	rootCmd.AddCommand(verifyTokenCmd)
}
