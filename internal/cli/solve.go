package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/gridsolver/internal/domain"
)

// NewSolveCommand creates the one-shot solve command. The puzzle is 81
// digits ('0' or '.' for blanks), read from a file argument or stdin.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		solverKind string
		cpuProfile bool
	)

	cmd := &cobra.Command{
		Use:   "solve [puzzle-file]",
		Short: "Solve a single puzzle and print the completed grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			grid, err := domain.Parse(string(data))
			if err != nil {
				return err
			}

			if cpuProfile {
				defer profile.Start().Stop()
			}

			s := newSolver(solverKind)
			out, st, err := s.Solve(cmd.Context(), &domain.Board{Values: grid})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Values.String())
			fmt.Fprintf(cmd.ErrOrStderr(), "solved in %v, nodes=%d\n", st.Duration, st.Nodes)
			return nil
		},
	}

	cmd.Flags().StringVar(&solverKind, "solver", "backtrack", "solver to use: backtrack|sat")
	cmd.Flags().BoolVar(&cpuProfile, "profile", false, "write a CPU profile for the solve")

	return cmd
}
