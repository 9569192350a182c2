package cmd

import (
	"github.com/marquee-cli/marquee/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("favorites", "f", false, "Start from the saved favorites")
}

// miniCmd launches the application in a lightweight, prompt-driven interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, prompt-driven interface",
	Long:  `Browse lists, search and look at details and trailers through simple prompts.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckToken()

		options := mini.Options{
			Favorites: lo.Must(cmd.Flags().GetBool("favorites")),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
