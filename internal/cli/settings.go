package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runConfigShow,
}

var configSetCapCmd = &cobra.Command{
	Use:   "set-cap <moves>",
	Short: "Set the default move cap for cycle searches (0 = built-in default)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetCap,
}

var configSetDBCmd = &cobra.Command{
	Use:   "set-db <path>",
	Short: "Set the default database path",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetDB,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCapCmd)
	configCmd.AddCommand(configSetDBCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	dbFile := settings.DBPath()
	if dbFile == "" {
		dbFile, _ = storage.DefaultDBPath()
		dbFile += " (default)"
	}

	moveCap := strconv.Itoa(settings.MoveCap())
	if settings.MoveCap() == 0 {
		moveCap = fmt.Sprintf("%d (default)", cubie.DefaultMoveCap)
	}

	lastRun := settings.LastRunID()
	if lastRun == "" {
		lastRun = "-"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Settings file: %s\n", settings.Path())
	fmt.Fprintf(out, "Database:      %s\n", dbFile)
	fmt.Fprintf(out, "Move cap:      %s\n", moveCap)
	fmt.Fprintf(out, "Last run:      %s\n", lastRun)
	return nil
}

func runConfigSetCap(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid move cap %q: %w", args[0], err)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settings.SetMoveCap(n); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Move cap set to %d\n", n)
	return nil
}

func runConfigSetDB(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settings.SetDBPath(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database set to %s\n", args[0])
	return nil
}
