package main

import (
	"context"
	"fmt"
	"os"

	"portfoliosim/cmd"
	"portfoliosim/internal/logger"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// app carries the dependencies every subcommand shares. They are built
// lazily so --help works without a database.
type app struct {
	deps  *cmd.Dependencies
	plain bool
}

func (a *app) init(c *cobra.Command, _ []string) error {
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	a.deps = deps
	c.SetContext(logger.WithLogger(c.Context(), logger.New().With("command", c.CommandPath())))
	return nil
}

func (a *app) close(*cobra.Command, []string) {
	if a.deps != nil {
		cmd.CloseDependencies(a.deps)
	}
}

// render prints markdown through glamour unless --plain was given.
func (a *app) render(c *cobra.Command, markdown string) error {
	if a.plain {
		_, err := fmt.Fprint(c.OutOrStdout(), markdown)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = fmt.Fprint(c.OutOrStdout(), out)
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "script",
		Short:             "Maintenance tasks for the portfolio simulator",
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
		PersistentPostRun: a.close,
	}
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "print raw markdown instead of rendering it")

	root.AddCommand(
		newSeedCmd(a),
		newSimulateCmd(a),
		newRebalanceCmd(a),
		newHistoryCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
