package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/flatrunner/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flatrunner",
	Short: "flatrunner - per-application launch settings for sandboxed desktop applications.",
	Long: `flatrunner keeps the launch settings of sandboxed (Flatpak) desktop
applications: display names, icons, DPI and scaling overrides, and
environment variables.

Usage:
  flatrunner <command> [flags]

Available Commands:
  apps       Manage per-application launch settings

Run 'flatrunner help <command>' for more details on a specific command.
`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Run 'flatrunner --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.GetAppsCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
