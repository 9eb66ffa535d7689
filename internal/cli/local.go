package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gobart/pkg/cfl"
	"gobart/pkg/metrics"
	"gobart/pkg/preview"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <reference> <candidate>",
		Short: "Compare two CFL arrays",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := cfl.ReadCFL(args[0])
			if err != nil {
				return exitError(exitValidation, "reading reference: %s", err)
			}
			cand, err := cfl.ReadCFL(args[1])
			if err != nil {
				return exitError(exitValidation, "reading candidate: %s", err)
			}
			report, err := metrics.Compare(ref, cand)
			if err != nil {
				return exitError(exitValidation, "%s", err)
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
			fmt.Fprintf(writer, "RMSE\t%.6g\n", report.RMSE)
			fmt.Fprintf(writer, "NRMSE\t%.6g\n", report.NRMSE)
			fmt.Fprintf(writer, "PSNR\t%.3f dB\n", report.PSNR)
			fmt.Fprintf(writer, "Correlation\t%.6f\n", report.Correlation)
			fmt.Fprintf(writer, "SSIM\t%.6f\n", report.SSIM)
			fmt.Fprintf(writer, "Mutual information\t%.3f\n", report.MutualInformation)
			fmt.Fprintf(writer, "Entropy difference\t%.3f\n", report.EntropyDiff)
			fmt.Fprintf(writer, "Max abs error\t%.6g\n", report.MaxAbsError)
			return writer.Flush()
		},
	}
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <output> <image...>",
		Short: "Convert PNG or JPEG images into a CFL array",
		Long: "Convert images into a real-valued CFL array with intensities in [0, 1].\n" +
			"Several images of equal size are stacked along dimension 2.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := preview.LoadImages(args[1:])
			if err != nil {
				return exitError(exitValidation, "%s", err)
			}
			if err := cfl.WriteCFL(args[0], arr); err != nil {
				return exitError(exitRuntime, "%s", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s %s\n", args[0], formatDims(arr.Dims))
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <input> <output>",
		Short: "Render a magnitude slice of a CFL array as PNG or JPEG",
		Long: "Render a magnitude slice of a CFL array. With --sequence, output is a\n" +
			"directory and one PNG is written per index along that dimension.",
		Example: "  gobart preview phantom slice.png --dims 0,1\n" +
			"  gobart preview volume frames --dims 0,1 --sequence 2",
		Args: cobra.ExactArgs(2),
		RunE: runPreview,
	}
	cmd.Flags().String("dims", "0,1", "Slice plane as columns,rows")
	cmd.Flags().StringSlice("at", nil, "Fixed indices of other dimensions, e.g. 2=3")
	cmd.Flags().Int("sequence", -1, "Write every slice along this dimension")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	dimsFlag, _ := cmd.Flags().GetString("dims")
	atFlag, _ := cmd.Flags().GetStringSlice("at")
	sequence, _ := cmd.Flags().GetInt("sequence")

	dims, err := parseInts(dimsFlag)
	if err != nil || len(dims) != 2 {
		return exitError(exitValidation, "--dims wants two dimensions, got %q", dimsFlag)
	}
	fixed, err := parsePositions(atFlag)
	if err != nil {
		return exitError(exitValidation, "%s", err)
	}

	arr, err := cfl.ReadCFL(args[0])
	if err != nil {
		return exitError(exitValidation, "reading input: %s", err)
	}
	viewer := preview.NewViewer(arr)
	out := cmd.OutOrStdout()

	if sequence >= 0 {
		files, err := viewer.SaveSliceSequence(dims[0], dims[1], sequence, fixed, args[1])
		if err != nil {
			return exitError(exitRuntime, "%s", err)
		}
		fmt.Fprintf(out, "wrote %d slices to %s\n", len(files), filepath.Clean(args[1]))
		return nil
	}

	img, err := viewer.ExtractSlice(dims[0], dims[1], fixed)
	if err != nil {
		return exitError(exitValidation, "%s", err)
	}
	if err := preview.SaveSlice(img, args[1]); err != nil {
		return exitError(exitRuntime, "%s", err)
	}
	fmt.Fprintf(out, "wrote %s\n", args[1])
	return nil
}
