package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/aoc/internal/config"
	"github.com/danieljhkim/aoc/internal/engine"
)

var (
	solveDay     int
	solveWorkers int
)

var solveCmd = &cobra.Command{
	Use:   "solve --day N [input]",
	Short: "Solve a puzzle by day number",
	Long: `Solve the puzzle for --day. Without [input] the file is read from the
configured input directory as dayNN.txt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if solveDay == 0 {
			return fmt.Errorf("%w: --day is required", engine.ErrValidation)
		}

		path := config.InputPath(cfg.InputDir, solveDay)
		if len(args) == 1 {
			path = args[0]
		}

		result, err := newEngine().Solve(context.Background(), &engine.SolveRequest{
			Day:       solveDay,
			InputPath: path,
			Workers:   solveWorkers,
		})
		if err != nil {
			return err
		}
		return printSolve(cmd, result)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solvable puzzles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := engine.Days()
		if jsonOutput {
			type entry struct {
				Day   int    `json:"day"`
				Title string `json:"title"`
				Input string `json:"input"`
			}
			entries := make([]entry, 0, len(days))
			for _, day := range days {
				entries = append(entries, entry{day, engine.Title(day), config.InputPath(cfg.InputDir, day)})
			}
			return outputJSON(cmd.OutOrStdout(), entries)
		}

		rows := make([][]string, 0, len(days))
		for _, day := range days {
			rows = append(rows, []string{
				strconv.Itoa(day),
				engine.Title(day),
				config.InputPath(cfg.InputDir, day),
			})
		}
		PrintTable(cmd.OutOrStdout(), []string{"DAY", "TITLE", "DEFAULT INPUT"}, rows)
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVarP(&solveDay, "day", "d", 0, "Puzzle day to solve")
	solveCmd.Flags().IntVarP(&solveWorkers, "workers", "w", 0, "Accumulation shards for day 3 (default: config workers)")
}

func sprintTitle(result *engine.SolveResult) string {
	return fmt.Sprintf("Day %d: %s", result.Day, result.Title)
}
