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

	"github.com/fatih/color"
	"github.com/nakachan-ing/lifeos-cli/internal/api"
	"github.com/nakachan-ing/lifeos-cli/internal/store"
	"github.com/spf13/cobra"
)

var profileDOB string
var profileInterests []string
var profilePriority string

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage child profiles",
}

var newProfileCmd = &cobra.Command{
	Use:     "new [name]",
	Short:   "Create a child profile",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"n"},
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		if profileDOB == "" {
			log.Printf("❌ --dob is required (YYYY-MM-DD)\n")
			os.Exit(1)
		}

		profile, err := api.New(*config).CreateProfile(context.Background(),
			name, profileDOB, profileInterests, profilePriority)
		if err != nil {
			log.Printf("❌ Failed to create profile: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✅ Profile created for %s (ID: %d)\n", profile.Name, profile.ID)
		fmt.Printf("💡 Set default_child_id: %d in config.yaml to make it the default\n", profile.ID)
	},
}

var showProfileCmd = &cobra.Command{
	Use:     "show [childID]",
	Short:   "Show a child profile",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"s"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := config.DefaultChildID
		if len(args) == 1 {
			childID, err = strconv.Atoi(args[0])
			if err != nil {
				log.Printf("❌ Invalid child ID: %s\n", args[0])
				os.Exit(1)
			}
		}

		profile, err := api.New(*config).GetProfile(context.Background(), childID)
		if err != nil {
			log.Printf("❌ Failed to load profile: %v\n", err)
			os.Exit(1)
		}

		titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
		fieldStyle := color.New(color.FgHiGreen).SprintFunc()

		fmt.Printf("[%v] %v\n", titleStyle(profile.ID), titleStyle(profile.Name))
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("Date of birth: %v\n", fieldStyle(profile.DateOfBirth))
		fmt.Printf("Interests: %v\n", fieldStyle(strings.Join(profile.Interests, ", ")))
		fmt.Printf("Parent priority: %v\n", fieldStyle(profile.ParentPriority))
	},
}

func init() {
	profileCmd.AddCommand(newProfileCmd)
	profileCmd.AddCommand(showProfileCmd)
	rootCmd.AddCommand(profileCmd)
	newProfileCmd.Flags().StringVar(&profileDOB, "dob", "", "Date of birth (YYYY-MM-DD)")
	newProfileCmd.Flags().StringSliceVarP(&profileInterests, "interest", "i", []string{}, "Interests")
	newProfileCmd.Flags().StringVarP(&profilePriority, "priority", "p", "balanced", "Parent priority focus")
}
