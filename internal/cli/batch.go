package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fnoltriage/internal/model"
	"github.com/ppiankov/fnoltriage/internal/pipeline"
	"github.com/ppiankov/fnoltriage/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir|list-file>",
	Short: "Process multiple FNOL documents in parallel",
	Long: `Batch processes FNOL documents concurrently:
- A directory argument processes its .txt/.pdf/.html files
- A list-file argument processes the paths it names (one per line)
- Results are written as JSON, one file per document

Example:
  fnoltriage batch ./inbox --output-dir ./results
  fnoltriage batch claims.list --concurrency 8`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of parallel workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "results", "directory for per-document JSON results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := worker.CollectPaths(args[0])
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents found in %s", args[0])
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing %d documents with %d workers\n", len(paths), concurrency)
	}

	pipe := buildPipeline()
	pool := worker.NewPool(concurrency, func(ctx context.Context, path string) (*model.Result, error) {
		text, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		return pipe.Process(ctx, text), nil
	})

	results := pool.Run(ctx, paths)

	renderer := pipeline.NewRenderer(false)
	failed := 0
	routeCounts := map[model.Route]int{}
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, res.Err)
			continue
		}
		out := filepath.Join(outputDir, resultFileName(res.Path))
		if err := renderer.RenderJSON(res.Result, out); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Path, err)
			continue
		}
		routeCounts[res.Result.RecommendedRoute]++
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", res.Path, res.Result.RecommendedRoute)
		}
	}

	fmt.Printf("Processed %d documents (%d failed)\n", len(results), failed)
	for _, route := range []model.Route{
		model.RouteManualReview, model.RouteInvestigation, model.RouteSpecialist,
		model.RouteFastTrack, model.RouteStandard,
	} {
		if n := routeCounts[route]; n > 0 {
			fmt.Printf("  %-18s %d\n", route, n)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}

// resultFileName maps a document path to its result file name.
func resultFileName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + ".json"
}
