package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubie/internal/storage"
)

var (
	runsLimit int
	showLast  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect recorded runs",
	Long:  `Commands for listing, showing and deleting runs saved with --save.`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show details of a run",
	Long:  `Display a recorded run. Use --last to show the most recent run.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRunsShow,
}

var runsDeleteCmd = &cobra.Command{
	Use:   "delete <run-id>",
	Short: "Delete a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsDelete,
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.AddCommand(runsListCmd)
	runsListCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to display")

	runsCmd.AddCommand(runsShowCmd)
	runsShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent run")

	runsCmd.AddCommand(runsDeleteCmd)
}

func openRunRepository() (*storage.DB, *storage.RunRepository, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}

	db, err := openDB(settings)
	if err != nil {
		return nil, nil, err
	}

	return db, storage.NewRunRepository(db), nil
}

func runRunsList(cmd *cobra.Command, args []string) error {
	db, repo, err := openRunRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := repo.List(runsLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet")
		fmt.Fprintln(out, "Record one with: cubie cycle --save")
		return nil
	}

	fmt.Fprintf(out, "Recent runs (showing %d):\n\n", len(runs))
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-36s  %-8s  %-19s  %-8s  %-6s  %s",
		"ID", "Kind", "Started", "Moves", "Solved", "Sequence")))

	for _, r := range runs {
		seq := r.Sequence
		if len(seq) > 40 {
			seq = seq[:37] + "..."
		}
		fmt.Fprintf(out, "%-36s  %-8s  %-19s  %-8d  %-6v  %s\n",
			r.RunID,
			r.Kind,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Moves,
			r.Solved,
			seq,
		)
	}

	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && !showLast {
		return fmt.Errorf("specify a run ID or use --last")
	}

	db, repo, err := openRunRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	var run *storage.Run
	if showLast {
		run, err = repo.Latest()
	} else {
		run, err = repo.Get(args[0])
	}
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Run "+run.RunID))
	fmt.Fprintf(out, "Kind:        %s\n", run.Kind)
	fmt.Fprintf(out, "Started:     %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Duration:    %s\n", formatDuration(time.Duration(run.DurationMs)*time.Millisecond))
	fmt.Fprintf(out, "Moves:       %d\n", run.Moves)
	if run.Kind == storage.KindCycle {
		fmt.Fprintf(out, "Repetitions: %d\n", run.Repetitions)
		if run.MoveCap != nil {
			fmt.Fprintf(out, "Cap:         %d\n", *run.MoveCap)
		}
	}
	if run.Seed != nil {
		fmt.Fprintf(out, "Seed:        %d\n", *run.Seed)
	}
	fmt.Fprintf(out, "Solved:      %v\n", run.Solved)
	fmt.Fprintf(out, "Sequence:    %s\n", moveStyle.Render(run.Sequence))

	return nil
}

func runRunsDelete(cmd *cobra.Command, args []string) error {
	db, repo, err := openRunRepository()
	if err != nil {
		return err
	}
	defer db.Close()

	run, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", args[0])
	}

	if err := repo.Delete(run.RunID); err != nil {
		return err
	}

	logger.Debug("run deleted", "run_id", run.RunID)
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted run: %s\n", run.RunID)
	return nil
}
