package cli

import (
	"Recipe-Share/domain"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"strings"
	"text/tabwriter"
)

// formError turns validation failures into one readable line per field.
func formError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, "email is not a valid address")
		case "username":
			msgs = append(msgs, "username must be 3-20 lowercase letters, digits or underscores")
		case "password":
			msgs = append(msgs, domain.ErrWeakPassword.Error())
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (a *App) printRecipes(recipes []domain.RecipeSummary) {
	if len(recipes) == 0 {
		a.printf("No recipes.\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tFAV\tTITLE\tAUTHOR\tCREATED\tID")
	for i, r := range recipes {
		fav := " "
		if r.IsFavourite {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i, fav, r.Title, r.Author, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.ID)
	}
	_ = w.Flush()
}

func (a *App) printDetail(d *domain.RecipeDetail) {
	fav := ""
	if d.IsFavourite {
		fav = " [favourite]"
	}
	a.printf("%s by %s%s\n", d.Title, d.Author, fav)
	if d.Description != "" {
		a.printf("%s\n", d.Description)
	}
	if d.PhotoURL != "" {
		a.printf("Photo: %s\n", d.PhotoURL)
	}
	a.printf("\nIngredients:\n")
	for _, in := range d.Ingredients {
		a.printf("  - %s %s\n", in.Quantity, in.Name)
	}
	a.printf("\nSteps:\n")
	for _, st := range d.Steps {
		a.printf("  %d. %s\n", st.Position, st.Description)
		if st.PhotoURL != "" {
			a.printf("     Photo: %s\n", st.PhotoURL)
		}
	}
}

func (a *App) printProfile(p *domain.UserProfile) {
	a.printf("%s\n", p.Username)
	if p.Email != "" {
		a.printf("Email:   %s\n", p.Email)
	}
	if p.PhotoURL != "" {
		a.printf("Photo:   %s\n", p.PhotoURL)
	}
	a.printf("Recipes: %d\n", p.RecipeCount)
	a.printf("Joined:  %s\n", p.CreatedAt.Local().Format("2006-01-02"))
}
