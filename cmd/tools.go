package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriChat/internal/tools"
	"github.com/Rorical/RoriChat/ui/components"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools advertised to the model",
	Run: func(cmd *cobra.Command, args []string) {
		catalog := tools.Catalog()
		fmt.Print(components.RenderCatalog(catalog))

		report := tools.CheckCatalog(catalog, tools.NewDispatcher())
		if report.OK() {
			fmt.Println("\nCatalog and dispatcher are in sync.")
			return
		}
		for _, name := range report.Undispatchable {
			fmt.Printf("\nadvertised but not dispatchable: %s", name)
		}
		for _, name := range report.Unadvertised {
			fmt.Printf("\ndispatchable but not advertised: %s", name)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
