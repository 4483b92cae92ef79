/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lifeos",
	Short: "Terminal client for the LifeOS 0-21 daily activity tracker",
	Long: `lifeos is a terminal dashboard for the LifeOS 0-21 backend.
It shows today's task checklist per developmental pillar, toggles task
completion, records the daily joy check-in, and renders progress stats.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
