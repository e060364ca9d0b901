package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/karnai/cardir/internal/model"
	"github.com/karnai/cardir/internal/pipeline"
	"github.com/karnai/cardir/internal/worker"
)

var (
	cfgFile     string
	verbose     bool
	inputPath   string
	outputPath  string
	batchMode   bool
	concurrency int
)

// rootCmd represents the base command. The conversion contract lives on the
// root itself: --input and --output name a file pair, or a directory pair
// when --batch is set.
var rootCmd = &cobra.Command{
	Use:   "cardir",
	Short: "cardir - Scryfall card to IR converter",
	Long: `cardir converts Scryfall JSON card records into the normalized
Intermediate Representation (IR) consumed by the simulation and
training stack.

The converter is best-effort lexical matching over oracle text: cards
whose text falls outside the known patterns receive empty structures,
never errors.

Example:
  cardir --input sample_card_lightning_bolt.json --output ir_lightning_bolt.json
  cardir --input ./cards --output ./ir --batch
  cardir fetch "Lightning Bolt" --output ./cards`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runConvert,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and IR schema version for cardir.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardir v0.1.0 (ir %s)\n", model.IRVersion)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.cardir/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Conversion contract flags
	rootCmd.Flags().StringVar(&inputPath, "input", "", "input file, or input directory with --batch")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "output file, or output directory with --batch")
	rootCmd.Flags().BoolVar(&batchMode, "batch", false, "process a directory of card files")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "batch conversion workers (1 = strictly sequential)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if inputPath == "" && outputPath == "" {
		return cmd.Help()
	}
	if inputPath == "" || outputPath == "" {
		return fmt.Errorf("both --input and --output are required")
	}

	workers := concurrency
	if !cmd.Flags().Changed("concurrency") && viper.IsSet("concurrency.workers") {
		workers = viper.GetInt("concurrency.workers")
	}

	generator := pipeline.NewGenerator()

	if !batchMode {
		ir, err := generator.ConvertFile(inputPath, outputPath)
		if err != nil {
			return err
		}
		if verbose {
			generator.Renderer().RenderSummary(ir, os.Stderr)
		}
		fmt.Fprintf(os.Stderr, "✓ Wrote IR: %s\n", outputPath)
		return nil
	}

	return runBatch(cmd.Context(), generator, workers)
}

// runBatch converts every eligible file in the input directory. The first
// fatal error aborts the remainder of the batch.
func runBatch(ctx context.Context, generator *pipeline.Generator, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  cardir Batch Conversion\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input dir:   %s\n", inputPath)
	fmt.Fprintf(os.Stderr, "  Output dir:  %s\n", outputPath)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", workers)
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(generator, workers)
	results, batchErr := processor.ProcessDir(ctx, inputPath, outputPath)

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	succeeded := 0
	for _, result := range results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", filepath.Base(result.InputPath), result.Err)
			continue
		}
		succeeded++
		fmt.Fprintf(os.Stderr, "✓ %s → %s\n", filepath.Base(result.InputPath), filepath.Base(result.OutputPath))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Converted:  %d\n", succeeded)
	fmt.Fprintf(os.Stderr, "  Output:     %s\n", outputPath)
	fmt.Fprintf(os.Stderr, "\n")

	if batchErr != nil {
		return fmt.Errorf("batch aborted: %w", batchErr)
	}
	return nil
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.cardir")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CARDIR_*
	viper.SetEnvPrefix("CARDIR")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
