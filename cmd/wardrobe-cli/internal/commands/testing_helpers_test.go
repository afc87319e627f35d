//go:build unit
// +build unit

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "cli-test-secret-0123456789abcdefghij"

// writeTestConfig writes a config file pointing at a sqlite file inside a temp dir
func writeTestConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "wardrobe.db")
	configPath = filepath.Join(dir, "cli.yaml")

	content := fmt.Sprintf(`database:
  type: sqlite
  dsn: %q
photo_storage:
  provider: local
  local_path: %q
auth:
  jwt_secret: %q
`, dbPath, filepath.Join(dir, "photos"), testJWTSecret)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))
	return configPath, dbPath
}

// captureLogs redirects CLI logging into a buffer for the duration of the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = previous })
	return &buf
}

func newTestRoot(configPath string) *cobra.Command {
	root := &cobra.Command{Use: "wardrobe-cli", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", configPath, "")
	return root
}

// execute runs args against a fresh root and returns what the command printed to stdout
func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
