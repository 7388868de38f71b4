package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List all available agents",
	Long:  `Shows every agent that can decide moves, with whether it reads the keyboard.`,
	Args:  cobra.NoArgs,
	Run:   runAgents,
}

func runAgents(_ *cobra.Command, _ []string) {
	agents := agent.List()

	if len(agents) == 0 {
		fmt.Println("No agents available.")
		return
	}

	fmt.Println("Available agents:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, a := range agents {
		if len(a.Name) > maxNameLen {
			maxNameLen = len(a.Name)
		}
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "Name", "Keys", "Description")
	fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, "----", "----", "-----------")

	for _, a := range agents {
		keys := "no"
		if a.Interactive {
			keys = "yes"
		}
		fmt.Printf("  %-*s  %-5s  %s\n", maxNameLen, a.Name, keys, a.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tui2048 play --agent <name>' to use one.")
}
