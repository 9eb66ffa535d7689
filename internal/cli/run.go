package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gobart/pkg/bart"
	"gobart/pkg/cfl"
)

func newCmdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmd <tool> [key=value...]",
		Short: "Print the command line a call would run",
		Long: "Print the command line a call would run without running it.\n" +
			"Array values are given as @path, lists as comma-separated values.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, callArgs, err := resolveCall(args)
			if err != nil {
				return err
			}
			c, err := a.client(cmd.Context())
			if err != nil {
				return err
			}
			defer a.release(cmd.Context())

			inv, err := c.Command(tool.Name, callArgs)
			if err != nil {
				return classify(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), inv.String())
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <tool> [key=value...]",
		Short: "Run a toolbox command and save its outputs",
		Long: "Run a toolbox command. Array values are given as @path, the CFL base\n" +
			"path without extension. Each output is written to <out>_<name>.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, a, args)
		},
	}
	cmd.Flags().String("out", "", "Output base path prefix (default: the tool name)")
	return cmd
}

func resolveCall(args []string) (*bart.Tool, bart.Args, error) {
	tool, ok := bart.Lookup(args[0])
	if !ok {
		return nil, nil, exitError(exitValidation, "unknown tool: %s", args[0])
	}
	callArgs, err := parseArgs(tool, args[1:])
	if err != nil {
		return nil, nil, classify(err)
	}
	return tool, callArgs, nil
}

func runTool(cmd *cobra.Command, a *app, args []string) error {
	tool, callArgs, err := resolveCall(args)
	if err != nil {
		return err
	}
	prefix, _ := cmd.Flags().GetString("out")
	if prefix == "" {
		prefix = tool.Name
	}

	c, err := a.client(cmd.Context())
	if err != nil {
		return err
	}
	defer a.release(cmd.Context())

	res, err := c.Run(cmd.Context(), tool.Name, callArgs)
	if err != nil {
		return classify(err)
	}

	out := cmd.OutOrStdout()
	for _, p := range tool.Outputs() {
		arr := res.Output(p.Name)
		if arr == nil {
			continue
		}
		path := prefix + "_" + p.Name
		if err := cfl.WriteCFL(path, arr); err != nil {
			return exitError(exitRuntime, "saving %s: %s", p.Name, err)
		}
		fmt.Fprintf(out, "%s: %s %s\n", p.Name, path, formatDims(arr.Dims))
	}
	if text := res.Text(); text != "" {
		fmt.Fprintln(out, text)
	}
	return nil
}

func formatDims(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprint(d)
	}
	return "[" + strings.Join(parts, "x") + "]"
}
