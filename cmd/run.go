package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mutline/mutline/internal/domain"
	m "github.com/mutline/mutline/internal/model"
)

var runParallelFlag int
var runTestCommandFlag string
var runTimeoutFlag time.Duration

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run mutation testing",
		Long: `Run mutation testing for the given paths (default: current directory).

Each candidate is applied to an isolated temporary copy of the project and
the test command is executed there. Failing tests kill the mutant; passing
tests mean it survived.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Trial(context.Background(), domain.TrialArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:      parsePaths(args),
					Exclude:    viper.GetStringSlice(excludeConfigKey),
					Extensions: viper.GetStringSlice(extensionsConfigKey),
				},
				Root:            ".",
				Reports:         m.Path(viper.GetString(outputFlagName)),
				Threads:         viper.GetInt(runParallelConfigKey),
				TestCommand:     viper.GetString(testCommandConfigKey),
				MutationTimeout: viper.GetDuration(mutationTimeoutKey),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for mutant trials")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&runTestCommandFlag, testCommandFlagName, "t", viper.GetString(testCommandConfigKey), "test command executed against each mutant")
	bindFlagToConfig(cmd.Flags().Lookup(testCommandFlagName), testCommandConfigKey)

	cmd.Flags().DurationVar(&runTimeoutFlag, timeoutFlagName, viper.GetDuration(mutationTimeoutKey), "per-mutation timeout")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), mutationTimeoutKey)
}
