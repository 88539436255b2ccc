package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it.

Known keys:
  storage.data_dir     directory holding the corpus database
  matching.neighbours  number of recommendations per query
  matching.watch       rebuild the model on corpus changes while serving`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := configStore.GetString(file.KeyDataDir)
	if dataDir == "" {
		dataDir = "(default: ~/.recipeml/data)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	cmd.Println("[Matching]")
	neighbours := configStore.GetInt(file.KeyNeighbours)
	if neighbours <= 0 {
		cmd.Printf("  Neighbours: (default: 6)\n")
	} else {
		cmd.Printf("  Neighbours: %d\n", neighbours)
	}
	cmd.Printf("  Watch: %t\n", configStore.GetBool(file.KeyWatch))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	if err := configStore.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, raw)
	return nil
}

// parseConfigValue keeps booleans and integers typed in the config file.
func parseConfigValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
