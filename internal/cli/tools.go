package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gobart/pkg/bart"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [name]",
		Short: "List toolbox commands or describe one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTools,
	}
}

func runTools(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	writer := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)

	if len(args) == 0 {
		fmt.Fprintln(writer, "NAME\tSUMMARY")
		for _, t := range bart.Tools() {
			fmt.Fprintf(writer, "%s\t%s\n", t.Name, t.Summary)
		}
		return writer.Flush()
	}

	tool, ok := bart.Lookup(args[0])
	if !ok {
		return exitError(exitValidation, "unknown tool: %s", args[0])
	}
	fmt.Fprintf(out, "%s\n\nusage: %s\n\n", tool.Summary, tool.Usage())
	fmt.Fprintln(writer, "KEY\tKIND\tFLAG\tREQUIRED\tDESCRIPTION")
	for _, p := range tool.Params {
		for _, key := range p.Keys() {
			flag := p.Flag
			if flag == "" {
				flag = "-"
			}
			required := "no"
			if !p.Kind.IsFlag() && !p.Optional && p.Kind != bart.Output {
				required = "yes"
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", key, p.Kind, flag, required, p.Doc)
		}
	}
	return writer.Flush()
}
