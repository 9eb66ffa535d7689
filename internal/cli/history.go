package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"gobart/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show recorded toolbox calls",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.history()
			if err != nil {
				return err
			}
			defer a.release(cmd.Context())

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				inv, err := store.Get(cmd.Context(), args[0])
				if errors.Is(err, history.ErrNotFound) {
					return exitError(exitValidation, "no call with id %s", args[0])
				}
				if err != nil {
					return exitError(exitRuntime, "%s", err)
				}
				fmt.Fprintf(out, "id:       %s\n", inv.ID)
				fmt.Fprintf(out, "tool:     %s\n", inv.Tool)
				fmt.Fprintf(out, "started:  %s\n", inv.StartedAt.Format(time.RFC3339))
				fmt.Fprintf(out, "duration: %s\n", inv.Duration)
				fmt.Fprintf(out, "exit:     %d\n", inv.ExitCode)
				fmt.Fprintf(out, "command:  %s\n", strings.Join(inv.Argv, " "))
				if inv.Error != "" {
					fmt.Fprintf(out, "error:    %s\n", inv.Error)
				}
				if inv.Stderr != "" {
					fmt.Fprintf(out, "stderr:\n%s\n", inv.Stderr)
				}
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			calls, err := store.List(cmd.Context(), limit)
			if err != nil {
				return exitError(exitRuntime, "%s", err)
			}
			writer := tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tSTARTED\tTOOL\tEXIT\tDURATION\tSTATUS")
			for _, inv := range calls {
				status := "ok"
				if !inv.Succeeded() {
					status = "failed"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\t%s\n",
					inv.ID, inv.StartedAt.Format(time.RFC3339), inv.Tool, inv.ExitCode,
					inv.Duration.Round(time.Millisecond), status)
			}
			return writer.Flush()
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum number of calls to list")
	return cmd
}
