package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/emrgen/tinytweet/internal/config"
	"github.com/emrgen/tinytweet/internal/model"
	"github.com/emrgen/tinytweet/internal/store"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tweetCmd = &cobra.Command{
	Use:   "tweet",
	Short: "tweet commands",
}

func init() {
	tweetCmd.AddCommand(listTweetsCmd())
}

func listTweetsCmd() *cobra.Command {
	var username string

	command := &cobra.Command{
		Use:   "list",
		Short: "list tweets, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			gormStore := store.NewGormStore(config.GetDb(config.LoadConfig()))

			var tweets []*model.Tweet
			var err error
			if username != "" {
				var user *model.User
				user, err = gormStore.GetUserByUsername(ctx, username)
				if err != nil {
					color.Red("error finding user %s: %v", username, err)
					return
				}
				tweets, err = gormStore.ListUserTweets(ctx, user.ID)
			} else {
				tweets, err = gormStore.ListTweets(ctx)
			}
			if err != nil {
				color.Red("error listing tweets: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Content", "Likes", "Created"})
			for _, tweet := range tweets {
				count, err := gormStore.CountLikes(ctx, tweet.ID)
				if err != nil {
					color.Red("error counting likes: %v", err)
					return
				}
				table.Append([]string{tweet.ID, tweet.Content, strconv.FormatInt(count, 10), tweet.CreatedAt.Format("2006-01-02 15:04")})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&username, "username", "u", "", "only tweets of this user")

	return command
}
