package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the TMDB access token kept in the system keyring",
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("token", "t", "", "The token to store, prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a TMDB API read access token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "TMDB API read access token",
				Help:    "Create one at https://www.themoviedb.org/settings/api",
			}, &token, survey.WithValidator(survey.Required)))
		}

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("token is empty"))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved to the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the TMDB token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed from the keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which TMDB token is in use",
	Run: func(cmd *cobra.Command, args []string) {
		credential, ok := auth.Token().Get()
		if !ok {
			fmt.Printf("%s no token, run %s or set %s\n",
				style.Fg(color.Red)(icon.Get(icon.Fail)),
				style.Fg(color.Yellow)("auth set"),
				style.Fg(color.Purple)(key.TMDBToken),
			)
			return
		}

		fmt.Printf("%s using %s from the %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(masked(key.TMDBToken, credential.Value)),
			credential.Source,
		)
	},
}
