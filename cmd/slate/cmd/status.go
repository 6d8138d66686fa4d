package cmd

import (
	"fmt"

	"github.com/go-slate/slate/cmd/slate/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project status",
		Long: `Show the resolved configuration of the current Slate project.

Values come from slate.yaml where present, with defaults derived from
go.mod and the project directory.`,
		Usage: "slate status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Printf("  root:   %s\n", cfg.Root)
	fmt.Printf("  module: %s\n", cfg.ModulePath)
	if cfg.InspectPort != 0 {
		fmt.Printf("  inspect server port: %d\n", cfg.InspectPort)
	} else {
		fmt.Printf("  inspect server: disabled\n")
	}

	return nil
}
