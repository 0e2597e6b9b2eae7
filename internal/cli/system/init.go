package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/acormier/liftlog/internal/cli"
)

type InitCmd struct {
	Force bool `short:"f" help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		dir := filepath.Dir(path)
		for _, f := range []string{path, filepath.Join(dir, "user.json"), filepath.Join(dir, "plans.json"), filepath.Join(dir, "logs.json")} {
			if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove %s: %w", f, err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized liftlog storage at %s with sample data.\n", path)
	return nil
}
