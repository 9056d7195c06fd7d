package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/newsflow/hotaggr/pkg/config"
	"github.com/newsflow/hotaggr/pkg/merge"
)

var (
	mergeWindow time.Duration
	mergeCount  int
)

var mergeCmd = &cobra.Command{
	Use:   "merge {incremental|daily|custom|manual <id1,id2,...>}",
	Short: "Run one merge pass over recent events",
	Long: `Run one merge pass over recent events.

Modes:
  incremental   short window, for frequent runs
  daily         full-day consolidation pass
  custom        window and candidate count from --window / --count
  manual        merge the given event ids without LLM analysis;
                the first id survives as primary`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().DurationVar(&mergeWindow, "window", 0, "Candidate window for custom mode")
	mergeCmd.Flags().IntVar(&mergeCount, "count", 0, "Candidate count for custom mode")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, closer, err := setup(ctx)
	if err != nil {
		return err
	}
	defer closer()

	mode := args[0]
	var cfg *config.MergeConfig
	switch mode {
	case "incremental":
		cfg = a.cfg.Merge.Incremental()
	case "daily":
		cfg = a.cfg.Merge.Daily()
	case "custom":
		cfg = a.cfg.Merge.Custom(mergeWindow, mergeCount)
	case "manual":
		cfg = a.cfg.Merge
	default:
		return fmt.Errorf("unknown merge mode %q", mode)
	}

	engine := merge.NewEngine(a.db.Client, a.dispatcher, a.cache, cfg)

	if mode == "manual" {
		if len(args) < 2 {
			return fmt.Errorf("manual mode requires a comma-separated list of event ids")
		}
		ids, err := parseIDs(args[1])
		if err != nil {
			return err
		}
		summary, err := engine.ManualMerge(ctx, ids)
		if errors.Is(err, merge.ErrNothingToMerge) {
			fmt.Println("nothing to merge")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("manual merge %s: merged=%d\n", summary.TaskID, summary.MergedCount)
		return nil
	}

	summary, err := engine.Run(ctx)
	if err != nil {
		return err
	}
	if summary.SuggestionsCount == 0 {
		fmt.Println("nothing to merge")
		return nil
	}
	fmt.Printf("merge %s: suggestions=%d merged=%d failed=%d duration=%s\n",
		summary.TaskID, summary.SuggestionsCount, summary.MergedCount,
		summary.FailedCount, summary.Duration)
	if summary.FailedCount > 0 {
		return fmt.Errorf("%d merge groups failed", summary.FailedCount)
	}
	return nil
}

func parseIDs(raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid event id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no event ids given")
	}
	return ids, nil
}
