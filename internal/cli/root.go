package cli

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sozercan/truthlens/internal/analysis"
	"github.com/sozercan/truthlens/internal/config"
	"github.com/sozercan/truthlens/internal/llm"
	"github.com/sozercan/truthlens/internal/webhook"
)

type rootOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "truthlens",
		Short: "Fake news and deepfake checks backed by an automation workflow",
		Long: `TruthLens serves a page where visitors paste text, an article URL or a video URL
and get back a verdict from an external analysis workflow.

The same checks can be run from the terminal with "truthlens analyze".`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newServerCommand(opts))
	rootCmd.AddCommand(newAnalyzeCommand(opts))
	rootCmd.AddCommand(newVersionCommand(version, commit))

	return rootCmd
}

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "truthlens %s (%s)\n", version, commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	}
}

// loadConfig reads the configuration and installs the slog handler it asks for.
func (o *rootOptions) loadConfig(logOut io.Writer) (*config.Config, error) {
	cfg, err := config.LoadConfig(o.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Log.SlogLevel()
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	return cfg, nil
}

// newBackend builds the analysis backend selected in the configuration.
func newBackend(cfg *config.Config) (analysis.Backend, error) {
	switch cfg.Analysis.Backend {
	case config.BackendOpenAI:
		provider, err := llm.NewOpenAI(&cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("creating LLM provider: %w", err)
		}
		return llm.NewBackend(provider), nil
	default:
		client, err := webhook.NewClient(map[analysis.Kind]string{
			analysis.TextOrURL: cfg.Webhook.FakeNewsURL,
			analysis.VideoURL:  cfg.Webhook.DeepfakeURL,
		}, cfg.Webhook.Timeout)
		if err != nil {
			return nil, fmt.Errorf("creating webhook client: %w", err)
		}
		return client, nil
	}
}
