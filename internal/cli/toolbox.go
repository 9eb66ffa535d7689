package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newBitmaskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bitmask [dim...]",
		Short: "Convert between dimension lists and bitmasks",
		Example: "  gobart bitmask 0 1 2\n" +
			"  gobart bitmask --mask 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, _ := cmd.Flags().GetInt("mask")
			reverse := cmd.Flags().Changed("mask")
			if reverse == (len(args) > 0) {
				return exitError(exitValidation, "give either dimensions or --mask")
			}

			dims := make([]int, len(args))
			for i, s := range args {
				d, err := strconv.Atoi(s)
				if err != nil {
					return exitError(exitValidation, "invalid dimension %q", s)
				}
				dims[i] = d
			}

			c, err := a.client(cmd.Context())
			if err != nil {
				return err
			}
			defer a.release(cmd.Context())

			out := cmd.OutOrStdout()
			if reverse {
				dims, err := c.BitmaskDims(cmd.Context(), mask)
				if err != nil {
					return classify(err)
				}
				strs := make([]string, len(dims))
				for i, d := range dims {
					strs[i] = strconv.Itoa(d)
				}
				fmt.Fprintln(out, strings.Join(strs, " "))
				return nil
			}
			m, err := c.Bitmask(cmd.Context(), dims...)
			if err != nil {
				return classify(err)
			}
			fmt.Fprintln(out, m)
			return nil
		},
	}
	cmd.Flags().Int("mask", 0, "Print the dimensions set in this bitmask")
	return cmd
}

func newVersionCmd(a *app, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gobart and toolbox versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", appName, version)

			c, err := a.client(cmd.Context())
			if err != nil {
				return err
			}
			defer a.release(cmd.Context())

			v, err := c.Version(cmd.Context())
			if err != nil {
				return classify(err)
			}
			fmt.Fprintf(out, "bart %s (%s)\n", v, c.Executable())
			return nil
		},
	}
}
