/*
 *     Copyright 2024 The Pima Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"context"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pima-analytics/pima/cmd/dependency"
	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/dfpath"
	"github.com/pima-analytics/pima/pkg/types"
	"github.com/pima-analytics/pima/trainer"
	"github.com/pima-analytics/pima/trainer/config"
	"github.com/pima-analytics/pima/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "the trainer of the diabetes risk model",
	Long: `Trainer is a batch process that loads the Pima Indians Diabetes dataset, imputes missing values,
trains a logistic regression model on a stratified split, evaluates it on the held-out records
and saves the model and its metrics for the dashboard.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Initialize dfpath.
		d, err := initDfpath(&cfg.Server)
		if err != nil {
			return err
		}

		// Convert config.
		if err := cfg.Convert(d.DataDir()); err != nil {
			return err
		}

		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups}

		// Initialize logger.
		if err := logger.InitTrainer(cfg.Verbose, cfg.Console, d.LogDir(), rotateConfig); err != nil {
			return fmt.Errorf("init trainer logger: %w", err)
		}
		logger.RedirectStdoutAndStderr(cfg.Console, path.Join(d.LogDir(), types.TrainerName))

		return runTrainer(ctx, cancel, d)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default trainer config.
	cfg = config.New()

	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)

	flags := rootCmd.Flags()
	flags.String("dataset", "", "the path of the ';' separated dataset, default is diabetes.csv in the data directory")
	if err := viper.BindPFlag("dataset.path", flags.Lookup("dataset")); err != nil {
		panic(fmt.Errorf("bind dataset flag to viper: %w", err))
	}
}

func initDfpath(cfg *config.ServerConfig) (dfpath.Dfpath, error) {
	var options []dfpath.Option
	if cfg.WorkHome != "" {
		options = append(options, dfpath.WithWorkHome(cfg.WorkHome))
	}

	if cfg.LogDir != "" {
		options = append(options, dfpath.WithLogDir(cfg.LogDir))
	}

	if cfg.DataDir != "" {
		options = append(options, dfpath.WithDataDir(cfg.DataDir))
	}

	return dfpath.New(options...)
}

func runTrainer(ctx context.Context, cancel context.CancelFunc, d dfpath.Dfpath) error {
	logger.Infof("version:\n%s", version.Version())

	// Initialize verbose mode.
	dependency.InitVerboseMode(cfg.Verbose, cfg.PProfPort)

	svr, err := trainer.New(cfg, d)
	if err != nil {
		return err
	}

	if err := svr.Serve(); err != nil {
		return err
	}
	defer svr.Stop()

	dependency.SetupQuitSignalHandler(cancel)

	output, err := svr.Run(ctx)
	if err != nil {
		return err
	}

	for _, name := range output.Report.Summary.Names() {
		fmt.Fprintf(os.Stdout, "%-10s %.4f\n", name, output.Report.Summary[name])
	}
	fmt.Fprintf(os.Stdout, "model saved to %s\nmetrics saved to %s\n", output.ModelHandle, output.MetricsHandle)

	return nil
}
