// Package cmd implements the cxcomplete command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/cxcomplete/internal/cel"
	"github.com/oakwood-commons/cxcomplete/internal/chunk"
	"github.com/oakwood-commons/cxcomplete/internal/completion"
	"github.com/oakwood-commons/cxcomplete/internal/formatter"
	"github.com/oakwood-commons/cxcomplete/internal/limiter"
	"github.com/oakwood-commons/cxcomplete/pkg/loader"
	"github.com/oakwood-commons/cxcomplete/pkg/logger"
	"github.com/oakwood-commons/cxcomplete/pkg/settings"
)

var (
	outputFormat string
	expression   string
	extraSpace   bool
	dedupe       bool
	workers      int
	snippets     bool
	noColor      bool
	widthFlag    int
	configFile   string
	debugLog     bool
	logFormat    string
	limitFlag    int
	offsetFlag   int
	tailFlag     int
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file|-]",
	Short: "Render completion candidates into menu entries",
	Long: `cxcomplete reads completion candidates, as produced by a C-family
semantic analyzer, and renders each into the strings a completion UI needs:
insert text, display text, annotation, preview and documentation.

Candidates are read from a file or stdin, in YAML, JSON, NDJSON or TOML.`,
	Example: `  cxcomplete candidates.yaml
  cxcomplete -o lsp --snippets < candidates.json
  cxcomplete -e '_.filter(r, r.category == "function").map(r, r.displayText)' candidates.yaml`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
	RunE:              runRender,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		v := settings.VersionInformation
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s, %s)\n",
			settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
		return err
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&outputFormat, "output", "o", "menu", "output format: menu, table, preview, tree, yaml, json, toml, csv, lsp, raw")
	f.StringVarP(&expression, "expression", "e", "", "CEL expression evaluated over the records, bound to _")
	f.BoolVar(&extraSpace, "extra-space", false, "pad parameter lists: foo( int x )")
	f.BoolVar(&dedupe, "dedupe", false, "drop records equal to an earlier one")
	f.IntVar(&workers, "workers", 0, "render workers (0 = GOMAXPROCS)")
	f.BoolVar(&snippets, "snippets", true, "emit placeholders as snippet tab stops in lsp output")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	f.IntVar(&widthFlag, "width", 0, "menu and table width in columns (0 = terminal width)")
	f.IntVar(&limitFlag, "limit", 0, "show only the first N records")
	f.IntVar(&offsetFlag, "offset", 0, "skip the first N records")
	f.IntVar(&tailFlag, "tail", 0, "show only the last N records")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config-file", "", "config file (default $XDG_CONFIG_HOME/cxcomplete/config.yaml)")
	pf.BoolVar(&debugLog, "debug", false, "log at debug level")
	pf.StringVar(&logFormat, "log-format", "json", "log format: json or console")

	rootCmd.AddCommand(versionCmd, configCmd)
}

// setupRun resolves the configuration, initializes the logger and stores
// both in the command context. Subcommands load what they need themselves.
func setupRun(cmd *cobra.Command, args []string) error {
	if cmd.HasParent() {
		return nil
	}
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	run := runSettings(cfg, path, args)
	formatter.SetTableTheme(tableTheme(cfg.Output.Colors))

	log := logger.Setup(logger.Options{Level: run.MinLogLevel, Format: cfg.Log.Format})
	log.V(1).Info("configuration loaded", "configFile", path, "format", run.OutputFormat)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, log)
	ctx = settings.IntoContext(ctx, run)
	cmd.SetContext(ctx)
	return nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	run, ok := settings.FromContext(ctx)
	if !ok {
		return fmt.Errorf("run settings missing from context")
	}
	inputName := run.Input.Path
	if inputName == "" {
		inputName = "-"
	}
	log := logger.WithValues(logger.FromContext(ctx), "input", inputName)

	lim := limiter.Config{Limit: limitFlag, Offset: offsetFlag, Tail: tailFlag}
	if err := lim.Validate(); err != nil {
		return err
	}

	var prog *cel.Program
	if run.Expression != "" {
		ev, err := cel.NewEvaluator()
		if err != nil {
			return err
		}
		if prog, err = ev.Compile(run.Expression); err != nil {
			return err
		}
	}

	cands, err := readCandidates(cmd, run)
	if err != nil {
		return err
	}
	log.V(1).Info("candidates loaded", "count", len(cands), "workers", run.Workers)

	b := completion.NewBuilder(completion.Options{ExtraSpace: run.ExtraSpace, Logger: *log})
	records, err := completion.BuildAll(ctx, b, cands, run.Workers)
	if err != nil {
		return err
	}
	if run.Dedupe {
		before := len(records)
		records = completion.Dedupe(records)
		log.V(1).Info("deduplicated records", "before", before, "after", len(records))
	}

	out := cmd.OutOrStdout()
	if prog != nil {
		result, err := prog.EvalRecords(records)
		if err != nil {
			return err
		}
		return writeValue(out, lim.ApplyAny(result), run.OutputFormat)
	}
	return writeRecords(out, limiter.Apply(lim, records), run)
}

func readCandidates(cmd *cobra.Command, run *settings.Run) ([]chunk.Candidate, error) {
	if run.Input.Path != "" {
		return loader.LoadCandidatesFile(run.Input.Path)
	}
	return loader.LoadCandidatesReader(cmd.InOrStdin())
}

// Execute runs the root command. An interrupt cancels in-flight rendering.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
