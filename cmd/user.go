package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/spf13/cobra"
)

var profile manager.UserProfile

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "manage per user overrides",
	Long:  `manage the quality profile and root folder overrides used for a user's requests`,
}

var setUserCmd = &cobra.Command{
	Use:   "set <user id>",
	Short: "set the overrides for a user",
	Long:  `set the overrides for a user. Zero values fall back to the sonarr settings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		err := withApp(ctx, writer, func(a *app) error {
			profile.UserID = args[0]
			saved, err := a.manager.SetUserProfile(ctx, profile)
			if err != nil {
				return fmt.Errorf("failed to set user profile: %w", err)
			}
			return printJSON(cmd, saved)
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var getUserCmd = &cobra.Command{
	Use:   "get <user id>",
	Short: "show the overrides for a user",
	Long:  `show the overrides for a user`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		err := withApp(ctx, readOnly, func(a *app) error {
			p, err := a.manager.GetUserProfile(ctx, args[0])
			if manager.IsNotFound(err) {
				return fmt.Errorf("no overrides for user %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to get user profile: %w", err)
			}
			return printJSON(cmd, p)
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func init() {
	setUserCmd.Flags().Int32Var(&profile.QualityProfile, "quality", 0, "quality profile id")
	setUserCmd.Flags().Int32Var(&profile.QualityProfileAnime, "quality-anime", 0, "quality profile id for anime")
	setUserCmd.Flags().Int32Var(&profile.RootPath, "root", 0, "root folder id")
	setUserCmd.Flags().Int32Var(&profile.RootPathAnime, "root-anime", 0, "root folder id for anime")

	userCmd.AddCommand(setUserCmd)
	userCmd.AddCommand(getUserCmd)
	rootCmd.AddCommand(userCmd)
}
