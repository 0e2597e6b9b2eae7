package account

import (
	"fmt"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/models"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	if !ctx.Auth.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := ctx.Auth.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *cli.Context) error {
	user, err := ctx.RequireUser()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.FitnessGoal != "" {
		fmt.Printf("Goal: %s\n", user.FitnessGoal)
	}
	return nil
}

type ProfileCmd struct {
	Name  *string `short:"n" help:"New display name."`
	Email *string `short:"e" help:"New email address."`
	Goal  *string `short:"g" help:"Fitness goal."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.RequireUser(); err != nil {
		return err
	}

	if c.Name == nil && c.Email == nil && c.Goal == nil {
		return fmt.Errorf("nothing to update (see 'liftlog profile --help')")
	}

	user, err := ctx.Auth.UpdateProfile(models.UserPatch{
		Name:        c.Name,
		Email:       c.Email,
		FitnessGoal: c.Goal,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}
