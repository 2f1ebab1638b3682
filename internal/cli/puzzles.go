package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/aoc/internal/engine"
)

var fabricWorkers int

var frequencyCmd = &cobra.Command{
	Use:   "frequency <input>",
	Short: "Solve day 1: frequency calibration",
	Long: `Apply the signed frequency changes in <input> starting from 0.

Part 1 is the resulting frequency; part 2 is the first frequency reached
twice while cycling through the changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newEngine().Frequency(context.Background(), &engine.PuzzleRequest{
			InputPath: args[0],
		})
		if err != nil {
			return err
		}
		return printSolve(cmd, &engine.SolveResult{Day: 1, Title: engine.Title(1), Frequency: result})
	},
}

var boxesCmd = &cobra.Command{
	Use:   "boxes <input>",
	Short: "Solve day 2: box id inventory",
	Long: `Inspect the box ids in <input>, one per line.

Part 1 is the checksum; part 2 is the letters shared by the two ids that
differ in exactly one position.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newEngine().BoxIDs(context.Background(), &engine.PuzzleRequest{
			InputPath: args[0],
		})
		if err != nil {
			return err
		}
		return printSolve(cmd, &engine.SolveResult{Day: 2, Title: engine.Title(2), BoxIDs: result})
	},
}

var fabricCmd = &cobra.Command{
	Use:   "fabric <input>",
	Short: "Solve day 3: overlapping fabric claims",
	Long: `Lay the claims in <input> ("#id @ left,top: WxH") over the fabric.

Part 1 is the number of square inches claimed two or more times; part 2
is the id of the only claim that overlaps no other.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newEngine().Fabric(context.Background(), &engine.PuzzleRequest{
			InputPath: args[0],
			Workers:   fabricWorkers,
		})
		if err != nil {
			return err
		}
		return printSolve(cmd, &engine.SolveResult{Day: 3, Title: engine.Title(3), Fabric: result})
	},
}

func init() {
	fabricCmd.Flags().IntVarP(&fabricWorkers, "workers", "w", 0, "Accumulation shards (default: config workers)")
}

// printSolve prints a solve result as JSON or as a labelled section.
func printSolve(cmd *cobra.Command, result *engine.SolveResult) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, result)
	}

	partA, partB := result.Answers()
	PrintSection(out, sprintTitle(result))
	PrintAnswer(out, "Part 1", partA)
	PrintAnswer(out, "Part 2", partB)

	switch {
	case result.Frequency != nil:
		printSummary(out, result.Frequency.Summary)
	case result.BoxIDs != nil:
		printSummary(out, result.BoxIDs.Summary)
	case result.Fabric != nil:
		printSummary(out, result.Fabric.Summary)
	}
	return nil
}
