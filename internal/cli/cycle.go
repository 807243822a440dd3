package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie"
	"github.com/SeamusWaldron/cubie/internal/storage"
)

var (
	cycleSequence string
	cycleCap      int
	cycleSave     bool
	cycleWatch    bool
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Count repetitions of a sequence until the cube is solved again",
	Long: `Start from a solved cube and apply a fixed move sequence over and over
until the cube returns to solved or the move cap is passed.

Sequences:
  rdlu        R+ D+ L+ U+ (default)
  commutator  R+ U+ R- U-

The cap defaults to the value in the settings file, or 1,000,000 moves.`,
	RunE: runCycle,
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	cycleCmd.Flags().StringVarP(&cycleSequence, "sequence", "s", "rdlu", "Named sequence to repeat")
	cycleCmd.Flags().IntVar(&cycleCap, "cap", 0, "Move cap (0 = settings or default)")
	cycleCmd.Flags().BoolVar(&cycleSave, "save", false, "Record the run in the database")
	cycleCmd.Flags().BoolVarP(&cycleWatch, "watch", "w", false, "Show live progress")
}

// lookupSequence resolves a sequence name.
func lookupSequence(name string) (cubie.Sequence, error) {
	seq, ok := cubie.NamedSequences[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(cubie.NamedSequences))
		for n := range cubie.NamedSequences {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown sequence %q (use one of: %s)", name, strings.Join(names, ", "))
	}
	return seq, nil
}

func runCycle(cmd *cobra.Command, args []string) error {
	seq, err := lookupSequence(cycleSequence)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	moveCap := cycleCap
	if moveCap <= 0 {
		moveCap = settings.MoveCap()
	}
	if moveCap <= 0 {
		moveCap = cubie.DefaultMoveCap
	}

	logger.Debug("cycle start", "sequence", seq.String(), "cap", moveCap)

	start := time.Now()
	var res cubie.CycleResult
	if cycleWatch {
		model := newCycleModel(seq, moveCap)
		p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("watch error: %w", err)
		}
		res = model.result()
		if !model.done {
			fmt.Fprintln(cmd.OutOrStdout(), statusStyle.Render("Stopped before the search finished"))
			return nil
		}
	} else {
		res, err = cubie.CycleOrder(seq, cubie.WithMoveCap(moveCap), cubie.WithContext(cmd.Context()))
		if err != nil && !errors.Is(err, cubie.ErrCapExceeded) {
			return fmt.Errorf("cycle search failed: %w", err)
		}
	}
	elapsed := time.Since(start)

	logger.Debug("cycle finished", "repetitions", res.Repetitions, "moves", res.Moves, "solved", res.Solved)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sequence: %s\n", moveStyle.Render(seq.String()))
	if res.Solved {
		fmt.Fprintln(out, solvedStyle.Render(fmt.Sprintf(
			"Cube solved after %d moves, the pattern repeated %d times", res.Moves, res.Repetitions)))
	} else {
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf(
			"Not solved after %d moves (%d repetitions, cap %d)", res.Moves, res.Repetitions, moveCap)))
	}
	fmt.Fprintf(out, "Time: %s\n", formatDuration(elapsed))

	if !cycleSave {
		return nil
	}

	moveCap64 := int64(moveCap)
	id, err := saveRun(settings, storage.Run{
		Kind:        storage.KindCycle,
		Sequence:    seq.String(),
		MoveCap:     &moveCap64,
		Moves:       int64(res.Moves),
		Repetitions: int64(res.Repetitions),
		Solved:      res.Solved,
		StartedAt:   start,
		DurationMs:  elapsed.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	fmt.Fprintf(out, "Saved run: %s\n", id)

	return nil
}
