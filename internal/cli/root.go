package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/fnoltriage/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fnoltriage",
	Short: "fnoltriage - FNOL field extraction and rule-based claim routing",
	Long: `fnoltriage ingests First Notice of Loss documents (text, PDF or HTML)
and produces a structured, explainable triage result:

- Extracts named fields from loosely structured prose
- Reports the mandatory fields that could not be found
- Routes the claim with a human-readable justification

Routing is a fixed, ordered rule list. There is no scoring and no model in
the decision path: the same document always yields the same route, and the
reasoning names the exact data that triggered it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for fnoltriage.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fnoltriage v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fnoltriage/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults()

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
		viper.AddConfigPath(home + "/.fnoltriage")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match FNOLTRIAGE_*
	viper.SetEnvPrefix("FNOLTRIAGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers the built-in defaults with viper so every key
// resolves even without a config file.
func setDefaults() {
	def := model.DefaultConfig()
	viper.SetDefault("routing.fast_track_damage_threshold", def.Routing.FastTrackDamageThreshold)
	viper.SetDefault("http.addr", def.HTTP.Addr)
	viper.SetDefault("http.max_upload_bytes", def.HTTP.MaxUploadBytes)
	viper.SetDefault("http.read_timeout", def.HTTP.ReadTimeout)
	viper.SetDefault("http.write_timeout", def.HTTP.WriteTimeout)
	viper.SetDefault("http.requests_per_second", def.HTTP.RequestsPerSecond)
	viper.SetDefault("http.burst", def.HTTP.Burst)
	viper.SetDefault("cache.enabled", def.Cache.Enabled)
	viper.SetDefault("cache.ttl", def.Cache.TTL)
	viper.SetDefault("cache.cleanup_interval", def.Cache.CleanupInterval)
	viper.SetDefault("llm.provider", def.LLM.Provider)
	viper.SetDefault("llm.model", def.LLM.Model)
	viper.SetDefault("llm.timeout", def.LLM.Timeout)
	viper.SetDefault("llm.max_tokens", def.LLM.MaxTokens)
	viper.SetDefault("output.include_footer", def.Output.IncludeFooter)
}

// loadConfig materializes the viper state into a Config.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// currentThreshold reads the fast-track threshold from viper. Called once
// per routing invocation so runtime overrides take effect between requests.
func currentThreshold() float64 {
	return viper.GetFloat64("routing.fast_track_damage_threshold")
}
