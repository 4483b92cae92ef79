/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/lifeos-cli/internal/api"
	"github.com/nakachan-ing/lifeos-cli/internal/model"
	"github.com/nakachan-ing/lifeos-cli/internal/plan"
	"github.com/nakachan-ing/lifeos-cli/internal/store"
	"github.com/spf13/cobra"
)

var planChildID int
var planPillar string
var planCached bool
var planUndone bool

func resolveChildID(config model.Config) int {
	if planChildID > 0 {
		return planChildID
	}
	return config.DefaultChildID
}

func pillarColored(pillar string) string {
	switch pillar {
	case model.PillarCognitive:
		return text.FgHiBlue.Sprintf("%s", pillar)
	case model.PillarPhysical:
		return text.FgHiRed.Sprintf("%s", pillar)
	case model.PillarLanguage:
		return text.FgHiYellow.Sprintf("%s", pillar)
	case model.PillarCharacter:
		return text.FgHiMagenta.Sprintf("%s", pillar)
	case model.PillarCreativity:
		return text.FgHiGreen.Sprintf("%s", pillar)
	default:
		return pillar
	}
}

func difficultyColored(level string) string {
	switch level {
	case model.DifficultyEasy:
		return text.FgHiGreen.Sprintf("%s", level)
	case model.DifficultyMedium:
		return text.FgHiYellow.Sprintf("%s", level)
	case model.DifficultyHard:
		return text.FgHiRed.Sprintf("%s", level)
	default:
		return level
	}
}

func renderPlanTable(tasks []model.Task, percent int) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Task ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
		text.FgGreen.Sprintf("Pillar"),
		text.FgGreen.Sprintf("Duration"),
		text.FgGreen.Sprintf("Difficulty"),
		text.FgGreen.Sprintf("Done"),
	})

	for _, task := range tasks {
		if planPillar != "" && !strings.EqualFold(task.Pillar, planPillar) {
			continue
		}

		done := "  "
		if task.Completed {
			done = "✅"
		}

		t.AppendRow(table.Row{
			task.ID,
			task.Title,
			pillarColored(task.Pillar),
			fmt.Sprintf("%d min", task.DurationMinutes),
			difficultyColored(task.DifficultyLevel),
			done,
		})
	}

	t.Render()
	fmt.Printf("\n📊 Today's completion: %d%%\n", percent)
}

// completionPercent mirrors the controller's derivation for cached plans.
func completionPercent(tasks []model.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(tasks))*100 + 0.5)
}

// planCmd represents the plan command
var planCmd = &cobra.Command{
	Use:     "plan",
	Short:   "Work with today's task checklist",
	Aliases: []string{"p"},
}

var listPlanCmd = &cobra.Command{
	Use:     "list",
	Short:   "Show today's tasks for a child",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := resolveChildID(*config)

		if planCached {
			snapshot, err := store.LoadPlanSnapshot(childID, *config)
			if err != nil {
				log.Printf("❌ No cached plan available: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(strings.Repeat("=", 30))
			fmt.Printf("Cached plan for child %d (%s)\n", childID, snapshot.Date)
			fmt.Println(strings.Repeat("=", 30))
			renderPlanTable(snapshot.Tasks, completionPercent(snapshot.Tasks))
			return
		}

		controller := plan.NewController(api.New(*config), childID)
		defer controller.Close()

		if err := controller.Load(context.Background()); err != nil {
			log.Printf("❌ Could not load today's plan: %v\n", err)
			os.Exit(1)
		}

		tasks := controller.Tasks()

		if config.Snapshot.Enable {
			if err := store.SavePlanSnapshot(tasks, childID, *config); err != nil {
				log.Printf("⚠️ Failed to cache plan locally: %v", err)
			}
		}

		fmt.Println(strings.Repeat("=", 30))
		fmt.Printf("Today's plan: %v tasks\n", len(tasks))
		fmt.Println(strings.Repeat("=", 30))
		renderPlanTable(tasks, controller.CompletionPercent())
	},
}

var togglePlanCmd = &cobra.Command{
	Use:     "toggle [taskID]",
	Short:   "Mark a task complete (or not done with --undone)",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"t"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			log.Printf("❌ Invalid task ID: %s\n", args[0])
			os.Exit(1)
		}

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := resolveChildID(*config)
		controller := plan.NewController(api.New(*config), childID)
		defer controller.Close()

		if err := controller.Load(context.Background()); err != nil {
			log.Printf("❌ Could not load today's plan: %v\n", err)
			os.Exit(1)
		}

		completed := !planUndone
		task, err := controller.Toggle(context.Background(), taskID, completed)
		if err != nil {
			// Rolled back: the collection is byte-for-byte its pre-toggle state
			log.Printf("❌ Task update failed, change reverted: %v\n", err)
			os.Exit(1)
		}

		if config.Snapshot.Enable {
			if err := store.SavePlanSnapshot(controller.Tasks(), childID, *config); err != nil {
				log.Printf("⚠️ Failed to cache plan locally: %v", err)
			}
		}

		if task.Completed {
			fmt.Printf("✅ Task %d (%s) marked complete\n", task.ID, task.Title)
			if task.CompletionTimestamp != "" {
				fmt.Printf("🕐 Completed at: %s\n", task.CompletionTimestamp)
			}
		} else {
			fmt.Printf("↩️ Task %d (%s) marked not done\n", task.ID, task.Title)
		}
		fmt.Printf("📊 Today's completion: %d%%\n", controller.CompletionPercent())
	},
}

var showPlanCmd = &cobra.Command{
	Use:     "show [taskID]",
	Short:   "Show task detail",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			log.Printf("❌ Invalid task ID: %s\n", args[0])
			os.Exit(1)
		}

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		client := api.New(*config)
		tasks, err := client.FetchPlan(context.Background(), resolveChildID(*config))
		if err != nil {
			log.Printf("❌ Could not load today's plan: %v\n", err)
			os.Exit(1)
		}

		var found *model.Task
		for i := range tasks {
			if tasks[i].ID == taskID {
				found = &tasks[i]
				break
			}
		}
		if found == nil {
			log.Printf("❌ Task with ID %d not found in today's plan", taskID)
			os.Exit(1)
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(found.ID), titleStyle(found.Title))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Pillar: %v\n", fieldStyle(found.Pillar))
		fmt.Printf("Duration: %v\n", fieldStyle(fmt.Sprintf("%d min", found.DurationMinutes)))
		fmt.Printf("Difficulty: %v\n", fieldStyle(found.DifficultyLevel))
		fmt.Printf("Assigned: %v\n", fieldStyle(found.DateAssigned))
		if found.Completed {
			fmt.Printf("Completed at: %v\n", fieldStyle(found.CompletionTimestamp))
		}

		renderedContent, err := glamour.Render(found.Description, "dark")
		if err != nil {
			log.Printf("⚠️ Failed to render task description: %v", err)
		} else {
			fmt.Println(renderedContent)
		}
	},
}

func init() {
	planCmd.AddCommand(listPlanCmd)
	planCmd.AddCommand(togglePlanCmd)
	planCmd.AddCommand(showPlanCmd)
	rootCmd.AddCommand(planCmd)
	planCmd.PersistentFlags().IntVarP(&planChildID, "child", "c", 0, "Child profile ID (defaults to config)")
	listPlanCmd.Flags().StringVar(&planPillar, "pillar", "", "Filter by pillar")
	listPlanCmd.Flags().BoolVar(&planCached, "cached", false, "Show the last cached plan without contacting the server")
	togglePlanCmd.Flags().BoolVar(&planUndone, "undone", false, "Mark the task as not done instead of complete")
}
