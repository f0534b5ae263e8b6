// Package cmd provides the root command and CLI setup for mutline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mutline/mutline/internal/adapter"
	"github.com/mutline/mutline/internal/controller"
	"github.com/mutline/mutline/internal/domain"
	m "github.com/mutline/mutline/internal/model"
)

var fsAdapter adapter.SourceFS
var testRunner adapter.TestRunner
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// extensionsFlag selects the file extensions scanned for candidates.
var extensionsFlag []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFS()
	testRunner = adapter.NewLocalTestRunner()
	reportStore = adapter.NewYAMLReportStore()

	simple := controller.NewSimpleUI(rootCmd)
	if controller.IsTTY(os.Stdout) {
		ui = controller.NewTUI(os.Stdout, simple)
	} else {
		ui = simple
	}

	workflow = domain.NewWorkflow(fsAdapter, testRunner, reportStore, ui)
}

const rootLongDescription = `Mutline is a mutation testing tool that works on raw line text. It scans
source files against a fixed catalog of textual mutation operators
(relational, logical, None-check, arithmetic and constant replacements),
applies one mutation at a time to an isolated copy of the project and runs
your test command to check whether the tests notice.

Because matching is textual, candidates can fall inside string literals or
comments; mutants that fail to even parse are simply killed by the first
test that imports them.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutline",
		Short: "Line-level mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringArrayVar(&extensionsFlag, extensionsFlagName, viper.GetStringSlice(extensionsConfigKey), "file extensions to scan (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(extensionsFlagName), extensionsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", viper.GetBool(logVerboseKey), "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
