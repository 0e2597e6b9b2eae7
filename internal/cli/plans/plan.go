package plans

import (
	"fmt"
	"strings"

	"github.com/acormier/liftlog/internal/cli"
	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/models"
)

type PlanAddCmd struct {
	Name        string `arg:"" help:"Plan name."`
	Description string `short:"d" help:"Plan description."`
}

func (c *PlanAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("plan name cannot be empty")
	}
	return nil
}

func (c *PlanAddCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.Store.AddPlan(c.Name, c.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Created plan %q (%s)\n", plan.Name, plan.ID)
	return nil
}

type PlanListCmd struct{}

func (c *PlanListCmd) Run(ctx *cli.Context) error {
	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return err
	}
	if len(plans) == 0 {
		fmt.Println("No plans yet. Create one with 'liftlog plan add'.")
		return nil
	}

	for _, p := range plans {
		fmt.Printf("%s  %s (%d exercises)\n", p.ID, p.Name, len(p.Exercises))
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}
	return nil
}

type PlanShowCmd struct {
	ID string `arg:"" help:"Plan id."`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.FindPlan(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", plan.Name)
	if plan.Description != "" {
		fmt.Printf("%s\n", plan.Description)
	}
	fmt.Printf("Created %s\n\n", plan.CreatedAt.Format(constants.DateFormat))

	if len(plan.Exercises) == 0 {
		fmt.Println("No exercises yet. Add one with 'liftlog plan exercise add'.")
		return nil
	}
	for _, ex := range plan.Exercises {
		fmt.Printf("%s  %-20s %dx%d @ %gkg  [%s]\n",
			ex.ID, ex.Name, ex.DefaultSets, ex.DefaultReps, ex.Weight, ex.Category)
	}
	return nil
}

type PlanEditCmd struct {
	ID          string  `arg:"" help:"Plan id."`
	Name        *string `short:"n" help:"New plan name."`
	Description *string `short:"d" help:"New plan description."`
}

func (c *PlanEditCmd) Validate() error {
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("plan name cannot be empty")
	}
	return nil
}

func (c *PlanEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.FindPlan(c.ID); err != nil {
		return err
	}
	if c.Name == nil && c.Description == nil {
		return fmt.Errorf("nothing to update (see 'liftlog plan edit --help')")
	}

	err := ctx.Store.UpdatePlan(c.ID, models.PlanPatch{
		Name:        c.Name,
		Description: c.Description,
	})
	if err != nil {
		return err
	}
	fmt.Println("Plan updated.")
	return nil
}

type PlanDeleteCmd struct {
	ID string `arg:"" help:"Plan id."`
}

func (c *PlanDeleteCmd) Run(ctx *cli.Context) error {
	plan, err := ctx.FindPlan(c.ID)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeletePlan(c.ID); err != nil {
		return err
	}
	// Logged workouts keep their exercise snapshots
	fmt.Printf("Deleted plan %q. Existing workout logs are unchanged.\n", plan.Name)
	return nil
}
