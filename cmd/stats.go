/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/lifeos-cli/internal/api"
	"github.com/nakachan-ing/lifeos-cli/internal/store"
	"github.com/spf13/cobra"
)

var statsChildID int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress analytics",
}

var weeklyStatsCmd = &cobra.Command{
	Use:     "weekly",
	Short:   "Show this week's completion metrics",
	Aliases: []string{"w"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := statsChildID
		if childID == 0 {
			childID = config.DefaultChildID
		}

		progress, err := api.New(*config).WeeklyProgress(context.Background(), childID)
		if err != nil {
			log.Printf("❌ Could not load weekly progress: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Week of %s (child %d)\n", progress.WeekStart, progress.ChildID)
		fmt.Println(strings.Repeat("=", 30))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Total"),
			text.FgGreen.Sprintf("Completed"),
			text.FgGreen.Sprintf("Rate"),
		})
		t.AppendRow(table.Row{
			progress.TotalTasks,
			progress.CompletedTasks,
			fmt.Sprintf("%.0f%%", progress.CompletionRate*100),
		})
		t.Render()
	},
}

var pillarStatsCmd = &cobra.Command{
	Use:     "pillars",
	Short:   "Show completed-task distribution per pillar",
	Aliases: []string{"p"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := statsChildID
		if childID == 0 {
			childID = config.DefaultChildID
		}

		rows, err := api.New(*config).PillarDistribution(context.Background(), childID)
		if err != nil {
			log.Printf("❌ Could not load pillar distribution: %v\n", err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Pillar"),
			text.FgGreen.Sprintf("Completed"),
		})
		for _, row := range rows {
			t.AppendRow(table.Row{
				pillarColored(row.Pillar),
				fmt.Sprintf("%d  %s", row.Count, strings.Repeat("█", row.Count)),
			})
		}
		t.Render()
	},
}

var difficultyStatsCmd = &cobra.Command{
	Use:     "difficulty",
	Short:   "Show the difficulty trend over recent days",
	Aliases: []string{"d"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := statsChildID
		if childID == 0 {
			childID = config.DefaultChildID
		}

		rows, err := api.New(*config).DifficultyTrend(context.Background(), childID)
		if err != nil {
			log.Printf("❌ Could not load difficulty trend: %v\n", err)
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Date"),
			text.FgGreen.Sprintf("Avg difficulty"),
		})
		for _, row := range rows {
			t.AppendRow(table.Row{row.Date, fmt.Sprintf("%.2f", row.AvgDifficulty)})
		}
		t.Render()
	},
}

func init() {
	statsCmd.AddCommand(weeklyStatsCmd)
	statsCmd.AddCommand(pillarStatsCmd)
	statsCmd.AddCommand(difficultyStatsCmd)
	rootCmd.AddCommand(statsCmd)
	statsCmd.PersistentFlags().IntVarP(&statsChildID, "child", "c", 0, "Child profile ID (defaults to config)")
}
