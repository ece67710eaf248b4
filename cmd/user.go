package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/emrgen/tinytweet/internal/config"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "user commands",
}

func init() {
	userCmd.AddCommand(listUsersCmd())
	userCmd.AddCommand(deactivateUserCmd())
}

func listUsersCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "list users",
		Run: func(cmd *cobra.Command, args []string) {
			gormStore := store.NewGormStore(config.GetDb(config.LoadConfig()))

			users, err := gormStore.ListUsers(context.Background())
			if err != nil {
				color.Red("error listing users: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Username", "Nickname", "Email", "Active"})
			for _, user := range users {
				table.Append([]string{user.Username, user.Nickname, user.Email, strconv.FormatBool(user.IsActive)})
			}
			table.Render()
		},
	}

	return command
}

func deactivateUserCmd() *cobra.Command {
	var username string

	command := &cobra.Command{
		Use:   "deactivate",
		Short: "deactivate a user",
		Run: func(cmd *cobra.Command, args []string) {
			if username == "" {
				color.Red("missing: --username")
				return
			}

			ctx := context.Background()
			gormStore := store.NewGormStore(config.GetDb(config.LoadConfig()))

			user, err := gormStore.GetUserByUsername(ctx, username)
			if err != nil {
				color.Red("error finding user %s: %v", username, err)
				return
			}

			if err := gormStore.SetUserActive(ctx, user.ID, false); err != nil {
				color.Red("error deactivating user %s: %v", username, err)
				return
			}

			color.Green("deactivated %s", username)
		},
	}

	command.Flags().StringVarP(&username, "username", "u", "", "username")

	return command
}
