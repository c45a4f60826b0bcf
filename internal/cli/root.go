// Package cli is the recipes command line client.
package cli

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/localstore"
	"Recipe-Share/internal/utils"
	"Recipe-Share/pkg/client"
	"Recipe-Share/pkg/feed"
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"io"
	"time"
)

// App holds what every command needs once the root command has started.
type App struct {
	Config    *Config
	Client    *client.Client
	Store     *localstore.Store
	validator *validator.Validate

	in  *bufio.Reader
	out io.Writer
}

// NewRootCommand builds the command tree. Configuration is loaded from
// configPath unless --config overrides it.
func NewRootCommand(configPath string) *cobra.Command {
	app := &App{validator: utils.NewValidator()}
	var serverURL string

	root := &cobra.Command{
		Use:           "recipes",
		Short:         "Share and browse recipes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				conf.ServerURL = serverURL
			}
			store, err := localstore.Open(conf.StatePath)
			if err != nil {
				return err
			}
			session, err := store.LoadSession(cmd.Context())
			if err != nil {
				_ = store.Close()
				return err
			}

			app.Config = conf
			app.Store = store
			app.Client = client.New(conf.ServerURL,
				client.WithTimeout(time.Duration(conf.TimeoutSeconds)*time.Second),
				client.WithSession(session),
			)
			app.in = bufio.NewReader(cmd.InOrStdin())
			app.out = cmd.OutOrStdout()
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if app.Store != nil {
				return app.Store.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "client configuration file")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "server URL, overrides the configuration")

	root.AddCommand(
		newRegisterCommand(app),
		newLoginCommand(app),
		newLogoutCommand(app),
		newWhoamiCommand(app),
		newFeedCommand(app),
		newBrowseCommand(app),
		newShowCommand(app),
		newUploadCommand(app),
		newDeleteCommand(app),
		newFavouritesCommand(app),
		newProfileCommand(app),
	)
	return root
}

var errNotSignedIn = errors.New("not signed in, run `recipes login` first")

func (a *App) viewer() (string, error) {
	s := a.Client.Session()
	if s == nil {
		return "", errNotSignedIn
	}
	return s.Username, nil
}

func (a *App) newController(viewer string, onChange func(feed.State)) *feed.Controller {
	opts := []feed.Option{
		feed.WithPageSize(a.Config.PageSize),
		feed.WithFanOutLimit(a.Config.FanOut),
	}
	if onChange != nil {
		opts = append(opts, feed.WithOnChange(onChange))
	}
	return feed.NewController(a.Client, viewer, opts...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// explain adds a retry hint to transient backend failures.
func explain(err error) error {
	if domain.IsTransient(err) {
		return fmt.Errorf("%w (the server could not be reached, try again)", err)
	}
	return err
}

// ctx is the command's context; cobra leaves it nil when Execute is used.
func ctx(cmd *cobra.Command) context.Context {
	if c := cmd.Context(); c != nil {
		return c
	}
	return context.Background()
}
