package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-resource-client/models"
)

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "resource-client",
		Short: "Query the posts and users of a JSON resource service",
		Long: `resource-client talks to a JSON resource service serving posts and users.

Every failure is classified as one of:
  remote_response       the service answered with an error status
  no_response           the request was sent but nothing came back
  request_construction  the request could not be built`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipSetup"] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.flags.baseURL, "base-url", "", "base URL of the resource service")
	flags.DurationVar(&a.flags.timeout, "timeout", 0, "timeout of every request (e.g. 5s)")
	flags.StringVarP(&a.flags.configPath, "config", "c", "", "path to a JSON config file")
	flags.StringVar(&a.flags.logLevel, "log-level", "", "minimum level of log entries written to stderr")

	root.AddCommand(
		a.postsCommand(),
		a.usersCommand(),
		a.feedCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) postsCommand() *cobra.Command {
	posts := &cobra.Command{
		Use:   "posts",
		Short: "List, fetch and create posts",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			payloads, err := a.client.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return a.printJSON(payloads)
		},
	}
	list.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of posts (0 means the service default)")

	var withAuthor bool
	get := &cobra.Command{
		Use:   "get ID",
		Short: "Fetch a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if withAuthor {
				item, err := a.services.FeedService.PostWithAuthor(cmd.Context(), id)
				if err != nil {
					return err
				}
				return a.printJSON(item)
			}

			payload, err := a.client.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printJSON(payload)
		},
	}
	get.Flags().BoolVar(&withAuthor, "with-author", false, "also fetch the post's author")

	var (
		data   string
		post   models.Post
		userID int64
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Long: `Create a post from a raw JSON document (--data), sent as is, or from
--title, --body and --user-id, validated before sending.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				created models.Payload
				err     error
			)
			switch {
			case data != "":
				created, err = a.client.Create(cmd.Context(), json.RawMessage(data))
			case post.Title != "" || userID != 0:
				post.UserID = userID
				created, err = a.services.FeedService.Publish(cmd.Context(), post)
			default:
				return errNoPostDataGiven
			}
			if err != nil {
				return err
			}
			return a.printJSON(created)
		},
	}
	create.Flags().StringVarP(&data, "data", "d", "", "raw JSON document sent as the post")
	create.Flags().StringVar(&post.Title, "title", "", "title of the post")
	create.Flags().StringVar(&post.Body, "body", "", "body of the post")
	create.Flags().Int64Var(&userID, "user-id", 0, "id of the post's author")
	create.MarkFlagsMutuallyExclusive("data", "title")
	create.MarkFlagsMutuallyExclusive("data", "user-id")

	posts.AddCommand(list, get, create)
	return posts
}

func (a *App) usersCommand() *cobra.Command {
	users := &cobra.Command{
		Use:   "users",
		Short: "Fetch users",
	}

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Fetch a single user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			payload, err := a.client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printJSON(payload)
		},
	}

	users.AddCommand(get)
	return users
}

func (a *App) feedCommand() *cobra.Command {
	var (
		limit    int
		watch    bool
		interval time.Duration
	)

	feed := &cobra.Command{
		Use:   "feed",
		Short: "List posts together with their authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval < 0 {
				return errNegativeInterval
			}

			if !watch {
				items, err := a.services.FeedService.Feed(cmd.Context(), limit)
				if err != nil {
					return err
				}
				return a.printJSON(items)
			}

			ctx := cmd.Context()
			a.services.FeedWatcher.Start(ctx, limit, interval, func(items []models.FeedItem, err error) {
				if err != nil {
					a.reportError(err)
					return
				}
				if err = a.printJSON(items); err != nil {
					a.logger.Err(err).Msg("error printing feed")
				}
			})
			<-ctx.Done()
			a.services.FeedWatcher.Stop()
			return nil
		},
	}
	feed.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of posts (0 means the service default)")
	feed.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild the feed periodically until interrupted")
	feed.Flags().DurationVar(&interval, "interval", 30*time.Second, "rebuild interval in watch mode")

	return feed
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipSetup": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(a.stdout, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
				orNA(a.buildInfo.BuildVersion()),
				orNA(a.buildInfo.BuildDate()),
				orNA(a.buildInfo.BuildCommit()),
			)
			return err
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
