package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/fnoltriage/internal/doc"
	"github.com/ppiankov/fnoltriage/internal/llm"
	"github.com/ppiankov/fnoltriage/internal/model"
	"github.com/ppiankov/fnoltriage/internal/pipeline"
)

var (
	outJSON        string
	outMD          string
	outYAML        string
	thresholdFlag  float64
	thresholdSet   bool
	processTimeout time.Duration
	noFooter       bool
	llmEnabled     bool
	llmModel       string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a single FNOL document and print the triage result",
	Long: `Process extracts structured fields from one FNOL document (.txt, .pdf,
.html), reports missing mandatory fields, and routes the claim.

Example:
  fnoltriage process claim.txt
  fnoltriage process claim.pdf --json result.json --md report.md
  fnoltriage process claim.txt --threshold 10000
  fnoltriage process claim.txt --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	// Output flags
	processCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	processCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	processCmd.Flags().StringVar(&outYAML, "yaml", "", "output YAML path (optional)")
	processCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Routing flags
	processCmd.Flags().Float64Var(&thresholdFlag, "threshold", 0, "fast-track damage threshold override (default: use config)")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 2*time.Minute, "processing timeout (only relevant with --llm)")

	// LLM flags
	processCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an adjuster note with an LLM (never affects routing)")
	processCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (default from config)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	path := args[0]
	thresholdSet = cmd.Flags().Changed("threshold")
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	text, err := readDocument(path)
	if err != nil {
		return err
	}

	pipe := buildPipeline()
	if llmEnabled {
		notes, err := buildNoteGenerator()
		if err != nil {
			return err
		}
		pipe.WithNotes(notes)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Threshold: %.1f\n", thresholdOrConfig())
		fmt.Fprintln(os.Stderr)
	}

	result := pipe.Process(ctx, text)

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d fields\n", extractedCount(result))
		fmt.Fprintf(os.Stderr, "✓ Missing %d mandatory fields\n", len(result.MissingFields))
		fmt.Fprintln(os.Stderr)
	}

	return renderOutputs(result)
}

// readDocument loads a document file and flattens it to extractor input.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	text, err := doc.FromUpload(ext, data)
	if err != nil {
		return "", fmt.Errorf("convert %s: %w", path, err)
	}
	return text, nil
}

// buildPipeline wires a pipeline whose threshold honors the --threshold
// flag, falling back to the live configuration value.
func buildPipeline() *pipeline.Pipeline {
	return pipeline.NewWithSource(thresholdOrConfig)
}

// thresholdOrConfig prefers an explicit --threshold flag, including an
// explicit zero ("never fast-track"), over the live configuration value.
func thresholdOrConfig() float64 {
	if thresholdSet {
		return thresholdFlag
	}
	return currentThreshold()
}

func buildNoteGenerator() (*llm.NoteGenerator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	llmCfg := cfg.LLM
	if llmCfg.Provider == "" {
		llmCfg.Provider = "openai"
	}
	if llmModel != "" {
		llmCfg.Model = llmModel
	}
	if llmCfg.APIKey == "" {
		llmCfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if llmCfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return llm.NewNoteGenerator(llmCfg)
}

func renderOutputs(result *model.Result) error {
	renderer := pipeline.NewRenderer(!noFooter)

	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outYAML != "" {
		if err := renderer.RenderYAML(result, outYAML); err != nil {
			return fmt.Errorf("render YAML: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote YAML: %s\n", outYAML)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", outMD)
		}
	}

	renderer.RenderSummary(result)
	return nil
}

func extractedCount(result *model.Result) int {
	n := 0
	for _, name := range []string{
		model.FieldPolicyNumber, model.FieldIncidentDate, model.FieldIncidentLocation,
		model.FieldIncidentDescription, model.FieldClaimantName, model.FieldClaimType,
		model.FieldVehicleMake, model.FieldVehicleModel, model.FieldVIN, model.FieldEstimatedDamage,
	} {
		if result.ExtractedFields.HasField(name) {
			n++
		}
	}
	return n
}
