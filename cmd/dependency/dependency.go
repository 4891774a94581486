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

package dependency

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"
	"syscall"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	logger "github.com/pima-analytics/pima/internal/dflog"
	"github.com/pima-analytics/pima/pkg/dfpath"
)

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to the configuration struct of the service.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	rootName := cmd.Root().Name()

	flags := cmd.PersistentFlags()
	flags.Bool("console", false, "whether logger output records to the stdout")
	flags.Bool("verbose", false, "whether logger use debug level")
	flags.Int("pprof-port", 0, "listen port for pprof and statsview, 0 represents a random port")

	if useConfigFile {
		flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s", defaultConfigFile(rootName)))
	}

	// Bind common flags.
	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Errorf("bind flags to viper: %w", err))
	}

	// Config for binding env.
	viper.SetEnvPrefix(strings.ToUpper(rootName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// Initialize cobra.dependency.
	cobra.OnInitialize(func() {
		if err := initConfig(useConfigFile, rootName, config); err != nil {
			logger.Fatalf("init config: %s", err.Error())
		}
	})

	// Add common cmds only on root cmd.
	if !cmd.HasParent() {
		cmd.AddCommand(VersionCmd)
	}
}

// InitVerboseMode sets debug level and serves statsview with pprof.
func InitVerboseMode(verbose bool, pprofPort int) {
	if !verbose {
		return
	}

	logger.SetLevel(zapcore.DebugLevel)

	// Enable go pprof and statsview.
	go func() {
		if pprofPort == 0 {
			pprofPort, _ = freeport.GetFreePort()
		}

		debugAddr := fmt.Sprintf("localhost:%d", pprofPort)
		viewer.SetConfiguration(viewer.WithAddr(debugAddr))

		logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
			"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
			Infof("enable pprof at %s", debugAddr)

		if err := statsview.New().Start(); err != nil {
			logger.Warnf("serve pprof error: %s", err.Error())
		}
	}()
}

// SetupQuitSignalHandler calls handler once on the first SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Warnf("receive %s signal", sig.String())
			if !done {
				handler()
				done = true
			}
		}
	}()
}

func defaultConfigFile(name string) string {
	return filepath.Join(dfpath.DefaultConfigDir, fmt.Sprintf("%s.yaml", name))
}

// initConfig reads in config file and env variables if set.
func initConfig(useConfigFile bool, name string, config any) error {
	if useConfigFile {
		cfgFile := viper.GetString("config")
		explicit := cfgFile != ""
		if !explicit {
			cfgFile = defaultConfigFile(name)
		}
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
		} else {
			logger.Infof("use config file %s", viper.ConfigFileUsed())
		}
	}

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		return fmt.Errorf("unmarshal config to struct: %w", err)
	}

	return nil
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.TagName = "mapstructure"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		trimStringHookFunc,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// trimStringHookFunc drops surrounding spaces of string values read from env.
func trimStringHookFunc(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String {
		return data, nil
	}

	return strings.TrimSpace(data.(string)), nil
}
