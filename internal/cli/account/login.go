package account

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/validation"
)

type LoginCmd struct {
	Email    string `short:"e" help:"Email address."`
	Password string `short:"p" help:"Password (prompted interactively when omitted)."`
	Google   bool   `short:"g" help:"Sign in with Google (simulated)."`
}

func (c *LoginCmd) Run(ctx *cli.Context) error {
	if c.Google {
		fmt.Println("Signing in with Google...")
		user, err := ctx.Auth.LoginWithGoogle(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Welcome, %s!\n", user.Name)
		return nil
	}

	if c.Email == "" || c.Password == "" {
		form := huh.NewForm(
			huh.NewGroup(
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

	fmt.Println("Logging in...")
	user, err := ctx.Auth.Login(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}
