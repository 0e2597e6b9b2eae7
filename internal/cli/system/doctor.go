package system

import (
	"fmt"

	"github.com/acormier/liftlog/internal/cli"
)

type DoctorCmd struct{}

// Run performs basic consistency checks on the stored data and reports
// anything a user would want to know about before trusting their history.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	problems := 0

	plans, err := ctx.Store.GetAllPlans()
	if err != nil {
		return fmt.Errorf("failed to read plans: %w", err)
	}
	fmt.Printf("✓ %d plan(s) loaded\n", len(plans))

	planIDs := make(map[string]bool)
	for _, p := range plans {
		if planIDs[p.ID] {
			fmt.Printf("✗ duplicate plan id: %s\n", p.ID)
			problems++
		}
		planIDs[p.ID] = true

		if err := p.Validate(); err != nil {
			fmt.Printf("✗ plan %s: %v\n", p.ID, err)
			problems++
		}
		exIDs := make(map[string]bool)
		for _, ex := range p.Exercises {
			if exIDs[ex.ID] {
				fmt.Printf("✗ plan %s: duplicate exercise id: %s\n", p.ID, ex.ID)
				problems++
			}
			exIDs[ex.ID] = true
		}
	}

	logs, err := ctx.Store.GetAllLogs()
	if err != nil {
		return fmt.Errorf("failed to read logs: %w", err)
	}
	fmt.Printf("✓ %d workout log(s) loaded\n", len(logs))

	logIDs := make(map[string]bool)
	for _, l := range logs {
		if logIDs[l.ID] {
			fmt.Printf("✗ duplicate log id: %s\n", l.ID)
			problems++
		}
		logIDs[l.ID] = true

		if err := l.Validate(); err != nil {
			fmt.Printf("✗ log %s: %v\n", l.ID, err)
			problems++
		}
	}

	if user, ok, err := ctx.Store.GetUser(); err != nil {
		return fmt.Errorf("failed to read user: %w", err)
	} else if ok {
		fmt.Printf("✓ logged in as %s\n", user.Email)
	} else {
		fmt.Println("- no active session")
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Println("All checks passed.")
	return nil
}
