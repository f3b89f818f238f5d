package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/linkdraw/internal/diagram"
	"github.com/dshills/linkdraw/internal/script"
)

func inspectCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "inspect [scene.lua]",
		Short: "Run a scene script and list the diagram it builds",
		Long: "Run a Lua scene script without opening the editor and print its\n" +
			"nodes and links. With no argument the built-in scene is used.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			model := diagram.NewModel()
			name := "built-in scene"
			var err error
			if len(args) == 0 {
				err = script.RunDefault(ctx, model)
			} else {
				name = args[0]
				err = script.RunFile(ctx, model, name,
					script.WithTimeout(timeout),
					script.WithOutput(cmd.ErrOrStderr()))
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", bad.Sprint("Error:"), err)
				return err
			}

			printModel(cmd, name, model)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", script.DefaultTimeout, "maximum time the script may run (0 for no limit)")
	return cmd
}

func printModel(cmd *cobra.Command, name string, model *diagram.Model) {
	out := cmd.OutOrStdout()
	nodes, links := model.Nodes(), model.Links()

	fmt.Fprintf(out, "%s %s\n", brand.Sprint("scene"), name)
	fmt.Fprintln(out, subtle.Sprintf("%d nodes, %d links", len(nodes), len(links)))
	fmt.Fprintln(out)

	if len(nodes) > 0 {
		rows := make([][]string, 0, len(nodes))
		for _, n := range nodes {
			rows = append(rows, []string{n.Label, fmt.Sprintf("%g", n.Pos.X), fmt.Sprintf("%g", n.Pos.Y)})
		}
		table(out, []string{"NODE", "X", "Y"}, rows)
		fmt.Fprintln(out)
	}

	if len(links) > 0 {
		rows := make([][]string, 0, len(links))
		for _, l := range links {
			rows = append(rows, []string{
				l.Source.Label,
				l.Target.Label,
				fmt.Sprintf("%.1f", l.Source.Pos.Distance(l.Target.Pos)),
			})
		}
		table(out, []string{"FROM", "TO", "LENGTH"}, rows)
	}
}
