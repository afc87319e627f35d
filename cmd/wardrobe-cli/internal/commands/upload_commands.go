package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/httputil"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// UploadCommandHandler sends clothing photos to a running server
type UploadCommandHandler struct {
	httpClient *http.Client
	logger     logger.Logger
}

// NewUploadCommandHandler creates an UploadCommandHandler
func NewUploadCommandHandler() (*UploadCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &UploadCommandHandler{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     loggerInstance,
	}, nil
}

// UploadCmd posts a photo and its attributes to /api/clothing
func (commandHandler *UploadCommandHandler) UploadCmd(cmd *cobra.Command, _ []string) error {
	flags := map[string]string{}
	for _, name := range []string{"server", "token", "photo", "item-type", "color", "style-tags", "season"} {
		value, err := cmd.Flags().GetString(name)
		if err != nil {
			return fmt.Errorf("invalid %s flag: %w", name, err)
		}
		flags[name] = value
	}
	if flags["photo"] == "" || flags["token"] == "" {
		return fmt.Errorf("--photo and --token are required")
	}

	content, err := os.ReadFile(flags["photo"])
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}

	fields := map[string]string{"item_type": flags["item-type"]}
	for flag, field := range map[string]string{"color": "color", "style-tags": "style_tags", "season": "season"} {
		if flags[flag] != "" {
			fields[field] = flags[flag]
		}
	}

	body, contentType, err := httputil.NewMultipartBody(fields, httputil.PhotoField, filepath.Base(flags["photo"]), content)
	if err != nil {
		return err
	}

	url := strings.TrimSuffix(flags["server"], "/") + "/api/clothing"
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+flags["token"])

	resp, err := commandHandler.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	commandHandler.logger.Info("clothing item uploaded", "photo", flags["photo"])
	_, err = cmd.OutOrStdout().Write(append(respBody, '\n'))
	return err
}

// InitUploadCommands registers the upload command
func InitUploadCommands(rootCmd *cobra.Command) error {
	handler, err := NewUploadCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload command handler: %w", err)
	}
	registerUploadCommands(rootCmd, handler)
	return nil
}

func registerUploadCommands(rootCmd *cobra.Command, handler *UploadCommandHandler) {
	var uploadCmd = &cobra.Command{
		Use:   "upload",
		Short: "Upload a clothing photo to a running server",
		RunE:  handler.UploadCmd,
	}
	uploadCmd.Flags().StringP("server", "", "http://localhost:5000", "Base URL of the wardrobe server")
	uploadCmd.Flags().StringP("token", "", os.Getenv("WARDROBE_TOKEN"), "Bearer token of the wardrobe owner")
	uploadCmd.Flags().StringP("photo", "", "", "Path to the photo")
	uploadCmd.Flags().StringP("item-type", "", "", "Kind of item, e.g. shirt")
	uploadCmd.Flags().StringP("color", "", "", "Main color")
	uploadCmd.Flags().StringP("style-tags", "", "", "Comma separated style tags")
	uploadCmd.Flags().StringP("season", "", "", "Season the item is worn in")
	rootCmd.AddCommand(uploadCmd)
}
