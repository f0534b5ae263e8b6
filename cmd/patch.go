package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mutline/mutline/internal/domain"
	m "github.com/mutline/mutline/internal/model"
)

var patchIndexFlag int

// patchCmd represents the patch command.
var patchCmd = newPatchCmd()

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch FILE",
		Short: "Print the unified diff for one mutation candidate",
		Long: `Generate the mutation candidates for FILE, apply the candidate selected by
--index (default: the first) and print the resulting unified diff. The diff
can be fed directly to patch(1) or git apply.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Patch(context.Background(), domain.PatchArgs{
				File:  m.Path(args[0]),
				Index: patchIndexFlag,
			})
		},
	}

	cmd.Flags().IntVarP(&patchIndexFlag, "index", "i", 0, "candidate index in generation order")

	return cmd
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
