package cmd

import (
	"context"
	"fmt"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/overlay"
	"github.com/marquee-cli/marquee/tmdb"
	"github.com/marquee-cli/marquee/trailer"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(trailerCmd)

	trailerCmd.Flags().BoolP("url", "u", false, "Print only the trailer link")
	trailerCmd.Flags().BoolP("open", "O", false, "Open the trailer in the browser")
}

// trailerCmd shows the detail overlay of a single item.
var trailerCmd = &cobra.Command{
	Use:     "trailer <id>",
	Short:   "Show the details and trailer of a movie or series",
	Example: "  marquee trailer movie/603\n  marquee trailer tv/1396 --open",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckToken()

		id, err := catalog.ParseID(args[0])
		handleErr(err)

		client, err := tmdb.New()
		handleErr(err)

		ctx := context.Background()

		erase := util.PrintErasable(fmt.Sprintf("%s Looking for a trailer...", icon.Get(icon.Progress)))
		item, err := client.Item(ctx, id)
		if err != nil {
			erase()
			handleErr(err)
		}

		registry := catalog.NewRegistry()
		registry.Put(item)

		resolver := trailer.NewResolver(client, registry, trailer.WithRetryFailed(viper.GetBool(key.TrailerRetryFailed)))
		driver := overlay.NewDriver(overlay.NewMachine(overlay.WithMinLoading(0)), resolver)

		_, states := driver.Open(ctx, item)
		st := <-states
		erase()

		if lo.Must(cmd.Flags().GetBool("url")) {
			if st.Record.Status != trailer.Found {
				handleErr(open.ErrNoTrailer)
			}
			fmt.Println(open.TrailerURL(st.Record.Key))
			return
		}

		width := 72
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Min(w, width)
		}
		fmt.Println(overlay.Render(driver.Machine().Snapshot(), width))

		if lo.Must(cmd.Flags().GetBool("open")) {
			if st.Record.Status != trailer.Found {
				handleErr(open.ErrNoTrailer)
			}
			handleErr(open.Trailer(st.Record.Key))
		}
	},
}
