package cli

import (
	"github.com/spf13/cobra"
)

func newProfileCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [username]",
		Short: "Show your profile or another user's",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}
			if len(args) == 1 {
				p, err := app.Client.GetProfile(ctx(cmd), args[0])
				if err != nil {
					return explain(err)
				}
				app.printProfile(p)
				return nil
			}
			p, err := app.Client.Me(ctx(cmd))
			if err != nil {
				return explain(err)
			}
			app.printProfile(p)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "photo <file>",
		Short: "Replace your profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}
			dataURL, err := readPhoto(args[0])
			if err != nil {
				return err
			}
			p, err := app.Client.UpdatePhoto(ctx(cmd), dataURL)
			if err != nil {
				return explain(err)
			}
			if err := app.Store.SaveSession(ctx(cmd), app.Client.Session()); err != nil {
				return err
			}
			app.printf("Profile photo updated: %s\n", p.PhotoURL)
			return nil
		},
	})
	return cmd
}
