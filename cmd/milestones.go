/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/lifeos-cli/internal/api"
	"github.com/nakachan-ing/lifeos-cli/internal/store"
	"github.com/spf13/cobra"
)

var milestonesChildID int

// milestonesCmd represents the milestones command
var milestonesCmd = &cobra.Command{
	Use:     "milestones",
	Short:   "Show developmental milestones per age phase",
	Aliases: []string{"m"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := milestonesChildID
		if childID == 0 {
			childID = config.DefaultChildID
		}

		milestones, err := api.New(*config).Milestones(context.Background(), childID)
		if err != nil {
			log.Printf("❌ Could not load milestones: %v\n", err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Age phase"),
			text.FgGreen.Sprintf("Focus"),
			text.FgGreen.Sprintf("Milestone"),
			text.FgGreen.Sprintf("Achieved"),
		})

		for _, milestone := range milestones {
			achieved := ""
			if milestone.Achieved {
				achieved = "✅"
			}
			t.AppendRow(table.Row{
				milestone.AgePhase,
				milestone.Focus,
				milestone.Title,
				achieved,
			})
		}

		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(milestonesCmd)
	milestonesCmd.Flags().IntVarP(&milestonesChildID, "child", "c", 0, "Child profile ID (defaults to config)")
}
