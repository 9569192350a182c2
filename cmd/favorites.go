package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage the saved favorites",
}

func openFavorites() *favorites.Store {
	store, err := favorites.Open(func(err error) {
		handleErr(err)
	})
	handleErr(err)
	return store
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON array")
	favoritesListCmd.SetOut(os.Stdout)
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved favorites",
	Run: func(cmd *cobra.Command, args []string) {
		items := openFavorites().Items()

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(items))
			return
		}

		if len(items) == 0 {
			cmd.Println(style.Faint("No favorites yet"))
			return
		}

		for _, item := range items {
			line := fmt.Sprintf("%s %s", style.Fg(color.Crimson)(icon.Get(icon.Favorite)), style.Bold(catalog.DisplayTitle(item)))
			if year, ok := catalog.DisplayYear(item).Get(); ok {
				line += " " + style.Faint("("+year+")")
			}
			cmd.Println(line + " " + style.Fg(color.Yellow)(item.ID.String()))
		}
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
}

var favoritesAddCmd = &cobra.Command{
	Use:     "add <id>...",
	Short:   "Add items to the favorites by id, e.g. movie/603",
	Example: "  marquee favorites add movie/603 tv/1396",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckToken()

		ids := lo.Map(args, func(arg string, _ int) catalog.ID {
			id, err := catalog.ParseID(arg)
			handleErr(err)
			return id
		})

		client, err := tmdb.New()
		handleErr(err)

		store := openFavorites()
		for _, id := range ids {
			if store.IsFavorite(id) {
				fmt.Printf("%s %s is already a favorite\n", icon.Get(icon.Mark), id)
				continue
			}

			item, err := client.Item(context.Background(), id)
			handleErr(err)

			store.Add(item)
			fmt.Printf("%s added %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(catalog.DisplayTitle(item)))
		}
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <id>...",
	Aliases: []string{"rm"},
	Short:   "Remove items from the favorites by id",
	Args:    cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		items, _ := favorites.Load()
		return lo.Map(items.Items(), func(item *catalog.Item, _ int) string {
			return item.ID.String()
		}), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		store := openFavorites()

		for _, arg := range args {
			id, err := catalog.ParseID(arg)
			handleErr(err)

			if !store.IsFavorite(id) {
				fmt.Printf("%s %s is not a favorite\n", icon.Get(icon.Mark), id)
				continue
			}

			store.Remove(id)
			fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), id)
		}
	},
}
