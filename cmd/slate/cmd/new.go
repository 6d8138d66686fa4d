package cmd

import (
	"fmt"

	"github.com/go-slate/slate/cmd/slate/internal/config"
	"github.com/go-slate/slate/cmd/slate/internal/scaffold"
)

func init() {
	RegisterCommand(&Command{
		Name:  "new",
		Short: "Generate a controller/view pair",
		Long: `Generate a controller/view component in the current package.

The generated file contains three types: the widget (immutable
configuration), the controller (mutable state and operations), and the
view delegate (render logic reading from the controller).

Examples:
  slate new component Settings
  slate new component userProfile`,
		Usage: "slate new component <Name>",
		Run:   runNew,
	})
}

func runNew(args []string) error {
	if len(args) < 2 || args[0] != "component" {
		return fmt.Errorf("usage: slate new component <Name>")
	}
	name := args[1]

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	// Generated code lives in package main at the project root.
	data, err := scaffold.NewComponentData("main", name)
	if err != nil {
		return err
	}
	path, err := scaffold.Component(root, data)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s in %s\n", path, resolved.AppName)
	fmt.Printf("  widget:     %s\n", data.TypeName)
	fmt.Printf("  controller: %s\n", data.ControllerName)
	fmt.Printf("  view:       %s\n", data.ViewName)
	return nil
}
