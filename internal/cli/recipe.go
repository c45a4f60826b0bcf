package cli

import (
	"Recipe-Share/domain"
	"Recipe-Share/internal/utils/imaging"
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"strings"
)

func newShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe-id>",
		Short: "Show a recipe with its ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}
			d, err := app.Client.GetRecipeDetail(ctx(cmd), args[0])
			if err != nil {
				return explain(err)
			}
			app.printDetail(d)
			return nil
		},
	}
}

// readPhoto loads an image file and normalises it before upload.
func readPhoto(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	normalized, err := imaging.Normalize(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return imaging.ToDataURL(normalized), nil
}

// parseIngredient reads "name:quantity"; the quantity is optional.
func parseIngredient(s string) domain.IngredientRequest {
	name, qty, _ := strings.Cut(s, ":")
	return domain.IngredientRequest{Name: strings.TrimSpace(name), Quantity: strings.TrimSpace(qty)}
}

// parseStep reads "description" or "description@photo-file".
func parseStep(s string) (domain.StepRequest, error) {
	desc, photo, found := strings.Cut(s, "@")
	step := domain.StepRequest{Description: strings.TrimSpace(desc)}
	if found && strings.TrimSpace(photo) != "" {
		dataURL, err := readPhoto(strings.TrimSpace(photo))
		if err != nil {
			return step, err
		}
		step.Photo = dataURL
	}
	return step, nil
}

func newUploadCommand(app *App) *cobra.Command {
	var (
		title, description, photo string
		ingredients, steps        []string
		retry                     bool
	)
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a recipe",
		Long: `Upload a recipe with a photo, ingredients and steps.

Ingredients are given as "name:quantity" and steps as "description" or
"description@photo.jpg". When the upload fails the recipe is kept and can be
sent again with --retry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}

			var req domain.CreateRecipeRequest
			if retry {
				draft, err := app.Store.LoadDraft(ctx(cmd))
				if err != nil {
					return err
				}
				if draft == nil {
					return fmt.Errorf("no failed upload to retry")
				}
				req = *draft
			} else {
				req = domain.CreateRecipeRequest{Title: title, Description: description}
				if photo != "" {
					dataURL, err := readPhoto(photo)
					if err != nil {
						return err
					}
					req.Photo = dataURL
				}
				for _, in := range ingredients {
					req.Ingredients = append(req.Ingredients, parseIngredient(in))
				}
				for _, st := range steps {
					step, err := parseStep(st)
					if err != nil {
						return err
					}
					req.Steps = append(req.Steps, step)
				}
			}
			if err := app.validator.Struct(req); err != nil {
				return formError(err)
			}

			res, err := app.Client.WriteRecipe(ctx(cmd), req)
			if err != nil {
				if saveErr := app.Store.SaveDraft(ctx(cmd), req); saveErr != nil {
					return fmt.Errorf("%w (saving the draft also failed: %v)", explain(err), saveErr)
				}
				return fmt.Errorf("%w; run `recipes upload --retry` to send it again", explain(err))
			}
			if err := app.Store.ClearDraft(ctx(cmd)); err != nil {
				return err
			}
			app.printf("Uploaded %s (%s)\n", req.Title, res.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "recipe title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "recipe description")
	cmd.Flags().StringVar(&photo, "photo", "", "main photo file")
	cmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "ingredient as name:quantity, repeatable")
	cmd.Flags().StringArrayVarP(&steps, "step", "s", nil, "step as description[@photo], repeatable")
	cmd.Flags().BoolVar(&retry, "retry", false, "resend the last failed upload")
	return cmd
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <recipe-id>",
		Short: "Delete one of your recipes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.viewer(); err != nil {
				return err
			}
			if err := app.Client.DeleteRecipe(ctx(cmd), args[0]); err != nil {
				return explain(err)
			}
			app.printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
