package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/favorites"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/inline"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/query"
	"github.com/marquee-cli/marquee/tmdb"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search the catalog instead of reading a list")
	inlineCmd.Flags().StringP("list", "l", "", "The catalog list to read, defaults to "+key.CatalogDefaultList)
	inlineCmd.Flags().StringP("pick", "p", "", "Criteria for selecting a single item from the results")
	inlineCmd.Flags().IntP("limit", "n", 0, "Keep at most this many items, 0 keeps all")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("trailers", "t", false, "Resolve the trailer of every item")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	inlineCmd.MarkFlagsMutuallyExclusive("query", "list")
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("list", completionLists))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Print a catalog list or search results, optionally with their trailers.

Item selectors:
  first - first item in the list
  last - last item in the list
  exact - the item titled like the query
  [number] - select item by index (starting from 0)

Text output has one tab separated line per item: id, title, date and,
with --trailers, the trailer link.`,
	Example: "  marquee inline -l top_rated -t -j\n  marquee inline -q \"heat\" -p exact -t",
	Run: func(cmd *cobra.Command, args []string) {
		CheckToken()

		client, err := tmdb.New()
		handleErr(err)

		q := lo.Must(cmd.Flags().GetString("query"))

		list, err := catalog.ParseList(lo.Ternary(
			cmd.Flags().Changed("list"),
			lo.Must(cmd.Flags().GetString("list")),
			viper.GetString(key.CatalogDefaultList),
		))
		handleErr(err)

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		picker := mo.None[inline.ItemPicker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			fn, err := inline.ParseItemPicker(pick, q)
			handleErr(err)
			picker = mo.Some(fn)
		}

		store, err := favorites.Load()
		if err != nil {
			log.Warn(err)
		}

		options := &inline.Options{
			Out:         writer,
			Catalog:     client,
			Videos:      client,
			Favorites:   store,
			Query:       q,
			List:        list,
			Limit:       lo.Must(cmd.Flags().GetInt("limit")),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			Trailers:    lo.Must(cmd.Flags().GetBool("trailers")),
			RetryFailed: viper.GetBool(key.TrailerRetryFailed),
			ItemPicker:  picker,
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema of the structured inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "item", "entry", "trailer", "output":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
