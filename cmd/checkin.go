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

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nakachan-ing/lifeos-cli/internal/api"
	"github.com/nakachan-ing/lifeos-cli/internal/checkin"
	"github.com/nakachan-ing/lifeos-cli/internal/model"
	"github.com/nakachan-ing/lifeos-cli/internal/store"
	"github.com/nakachan-ing/lifeos-cli/internal/util"
	"github.com/spf13/cobra"
)

var checkinChildID int
var checkinJoy int
var checkinNotes string
var checkinEdit bool

type checkinModel struct {
	flow      *checkin.Flow
	textInput textinput.Model
	editNotes bool
	done      bool
}

type checkinResultMsg struct{}

func newCheckinModel(flow *checkin.Flow) tea.Model {
	input := textinput.New()
	input.Placeholder = "How did the day go?"
	return &checkinModel{
		flow:      flow,
		textInput: input,
	}
}

func (m checkinModel) Init() tea.Cmd {
	return nil
}

func (m *checkinModel) submit() tea.Msg {
	m.flow.SetNotes(m.textInput.Value())
	// Result lands in the flow either way; the view reads it back
	_ = m.flow.Submit(context.Background())
	return checkinResultMsg{}
}

func (m *checkinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case checkinResultMsg:
		m.done = true
		return m, nil
	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}

		if m.editNotes {
			switch msg.String() {
			case "enter":
				m.textInput.Blur()
				return m, m.submit
			case "esc":
				m.editNotes = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "1", "2", "3", "4", "5":
			score := int(msg.String()[0] - '0')
			if err := m.flow.SetJoyScore(score); err != nil {
				log.Printf("⚠️ %v", err)
			}
		case "enter":
			m.editNotes = true
			m.textInput.SetValue(m.flow.Notes())
			m.textInput.Focus()
		}
	}

	return m, nil
}

func (m checkinModel) View() string {
	var s strings.Builder
	s.WriteString("\033[H\033[2J")
	s.WriteString("🌙 Daily check-in\n\n")

	if m.done {
		successMsg, errorMsg := m.flow.Result()
		if errorMsg != "" {
			s.WriteString("❌ " + errorMsg + "\n")
		} else {
			s.WriteString("✅ " + successMsg + "\n")
		}
		s.WriteString("\n(press any key to exit)\n")
		return s.String()
	}

	s.WriteString("Joy score: ")
	for i := checkin.MinJoyScore; i <= checkin.MaxJoyScore; i++ {
		if i == m.flow.JoyScore() {
			s.WriteString(fmt.Sprintf("[%d] ", i))
		} else {
			s.WriteString(fmt.Sprintf(" %d  ", i))
		}
	}
	s.WriteString("\n\n")

	if m.editNotes {
		s.WriteString("✏️  Parent notes:\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to submit, ESC to go back)\n")
	} else {
		s.WriteString("Notes: " + m.flow.Notes() + "\n\n")
		s.WriteString("1-5 to rate, Enter to edit notes & submit, Q to quit\n")
	}

	return s.String()
}

func runCheckinDirect(config model.Config, flow *checkin.Flow) {
	if checkinJoy > 0 {
		if err := flow.SetJoyScore(checkinJoy); err != nil {
			log.Printf("❌ %v\n", err)
			os.Exit(1)
		}
	}

	notes := checkinNotes
	if checkinEdit {
		edited, err := util.EditNotes(config)
		if err != nil {
			log.Printf("❌ Failed to open editor: %v\n", err)
			os.Exit(1)
		}
		notes = strings.TrimSpace(edited)
	}
	flow.SetNotes(notes)

	err := flow.Submit(context.Background())
	successMsg, errorMsg := flow.Result()
	if err != nil {
		log.Printf("❌ %s\n", errorMsg)
		os.Exit(1)
	}
	fmt.Println("✅ " + successMsg)
}

// checkinCmd represents the checkin command
var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Submit today's joy score and parent notes",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := store.LoadConfig()
		if err != nil {
			log.Printf("❌ Error loading config: %v\n", err)
			os.Exit(1)
		}

		childID := checkinChildID
		if childID == 0 {
			childID = config.DefaultChildID
		}

		client := api.New(*config)
		flow := checkin.NewFlow(client, childID)

		if checkinJoy > 0 || checkinNotes != "" || checkinEdit {
			runCheckinDirect(*config, flow)
		} else {
			if _, err := tea.NewProgram(newCheckinModel(flow)).Run(); err != nil {
				log.Fatalf("❌ Error running TUI: %v", err)
			}
		}

		// Log confirmed check-ins locally for the personal record
		if successMsg, _ := flow.Result(); successMsg != "" {
			record := model.Checkin{ChildID: childID, JoyScore: flow.JoyScore(), ParentNotes: flow.Notes()}
			if err := store.AppendCheckinRecord(record, *config); err != nil {
				log.Printf("⚠️ Failed to log check-in locally: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checkinCmd)
	checkinCmd.Flags().IntVarP(&checkinChildID, "child", "c", 0, "Child profile ID (defaults to config)")
	checkinCmd.Flags().IntVarP(&checkinJoy, "joy", "j", 0, "Joy score (1-5)")
	checkinCmd.Flags().StringVarP(&checkinNotes, "notes", "n", "", "Parent notes")
	checkinCmd.Flags().BoolVar(&checkinEdit, "edit", false, "Compose parent notes in $EDITOR")
}
