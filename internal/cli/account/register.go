package account

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/validation"
)

type RegisterCmd struct {
	Email    string `short:"e" help:"Email address."`
	Password string `short:"p" help:"Password (prompted interactively when omitted)."`
	Name     string `short:"n" help:"Display name."`
}

func (c *RegisterCmd) Run(ctx *cli.Context) error {
	if c.Email == "" || c.Password == "" || c.Name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Name").
					Value(&c.Name).
					Validate(validation.ValidateName),
				huh.NewInput().
					Title("Email").
					Value(&c.Email).
					Validate(validation.ValidateEmail),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&c.Password).
					Validate(validation.ValidatePassword),
			),
		).WithTheme(huh.ThemeDracula())
		if err := form.Run(); err != nil {
			return err
		}
	}

	fmt.Println("Creating account...")
	user, err := ctx.Auth.Register(context.Background(), c.Email, c.Password, c.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}
