// Package cmd implements the command-line interface for marquee.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/tui"
	"github.com/marquee-cli/marquee/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Language of titles and overviews, e.g. en-US")
	lo.Must0(viper.BindPFlag(key.TMDBLanguage, rootCmd.PersistentFlags().Lookup("language")))

	rootCmd.Flags().StringP("list", "l", "", "The catalog list to open first")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("list", completionLists))
	lo.Must0(viper.BindPFlag(key.CatalogDefaultList, rootCmd.Flags().Lookup("list")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

func completionLists(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return catalog.ListNames(), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd defines the entry point for the marquee application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A terminal browser for movies, series and their trailers",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal browser for movies, series and their trailers"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckToken()

		list, err := catalog.ParseList(viper.GetString(key.CatalogDefaultList))
		handleErr(err)

		handleErr(tui.Run(&tui.Options{List: list}))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
