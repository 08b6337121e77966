package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/diceroller/internal/dice"
)

var diceCmd = &cobra.Command{
	Use:   "dice",
	Short: "List the available dice",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for i, d := range dice.All() {
			fmt.Fprintf(out, "%d  %-5s %3d sides\n", i+1, d.Name, d.Sides)
		}
	},
}
