package cli

import (
	"Recipe-Share/domain"
	"Recipe-Share/pkg/feed"
	"errors"
	"github.com/spf13/cobra"
	"io"
	"strconv"
	"strings"
)

func newFeedCommand(app *App) *cobra.Command {
	var (
		author string
		pages  int
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List the newest recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewer, err := app.viewer()
			if err != nil {
				return err
			}
			spec := domain.FeedSpec{Author: author}
			c := app.newController(viewer, nil)

			if err := c.LoadFirst(ctx(cmd), spec); err != nil {
				return explain(err)
			}
			for i := 1; i < pages && !c.ReachedEnd(); i++ {
				if err := c.LoadNext(ctx(cmd), spec); err != nil {
					if errors.Is(err, domain.ErrEmptyFeed) {
						break
					}
					return explain(err)
				}
			}

			app.printRecipes(c.List())
			if !c.ReachedEnd() {
				app.printf("More recipes available, use --pages to load more.\n")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&author, "author", "a", "", "only recipes by this user")
	cmd.Flags().IntVarP(&pages, "pages", "n", 1, "number of pages to load")
	return cmd
}

const browseHelp = `Commands:
  n        load the next page
  r        reload from the newest recipe
  f <#>    toggle favourite on recipe #
  s <#>    show recipe #
  q        quit
`

func newBrowseCommand(app *App) *cobra.Command {
	var author string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the feed interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			viewer, err := app.viewer()
			if err != nil {
				return err
			}
			spec := domain.FeedSpec{Author: author}
			c := app.newController(viewer, func(s feed.State) {
				if s.IsLoading {
					app.printf("Loading...\n")
				}
			})

			if err := c.LoadFirst(ctx(cmd), spec); err != nil {
				return explain(err)
			}
			app.printRecipes(c.List())
			app.printf("%s", browseHelp)

			for {
				line, err := app.prompt(">")
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}
				cmdName, arg, _ := strings.Cut(line, " ")

				switch cmdName {
				case "", "h", "help":
					app.printf("%s", browseHelp)
				case "q", "quit":
					return nil
				case "r":
					err = c.LoadFirst(ctx(cmd), spec)
				case "n":
					if c.ReachedEnd() {
						app.printf("End of feed.\n")
						continue
					}
					err = c.LoadNext(ctx(cmd), spec)
				case "f":
					var idx int
					if idx, err = strconv.Atoi(strings.TrimSpace(arg)); err == nil {
						err = c.ToggleFavourite(ctx(cmd), idx)
					}
				case "s":
					var idx int
					if idx, err = strconv.Atoi(strings.TrimSpace(arg)); err == nil {
						list := c.List()
						if idx < 0 || idx >= len(list) {
							err = domain.ErrIndexOutOfRange
							break
						}
						var d *domain.RecipeDetail
						if d, err = app.Client.GetRecipeDetail(ctx(cmd), list[idx].ID); err == nil {
							app.printDetail(d)
						}
					}
					if err == nil {
						continue
					}
				default:
					app.printf("Unknown command %q\n", cmdName)
					continue
				}

				if err != nil {
					app.printf("Error: %v\n", explain(err))
					continue
				}
				app.printRecipes(c.List())
			}
		},
	}
	cmd.Flags().StringVarP(&author, "author", "a", "", "only recipes by this user")
	return cmd
}

func newFavouritesCommand(app *App) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "favourites",
		Short: "List your favourite recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}
			res, err := app.Client.GetFavourites(ctx(cmd), nil, limit)
			if err != nil {
				return explain(err)
			}
			app.printRecipes(res.Recipes)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", domain.DefaultPageSize, "number of favourites to show")
	return cmd
}
