/*
 *     Copyright 2025 The CNAI Authors
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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelpack/trendctl/pkg/config"
)

var rootConfig *config.Root

// rootCmd represents the trendctl command.
var rootCmd = &cobra.Command{
	Use:                "trendctl",
	Short:              "A command line tool for collecting and reporting Hugging Face model trends",
	Args:               cobra.NoArgs,
	DisableAutoGenTag:  true,
	SilenceUsage:       true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootConfig.Validate(); err != nil {
			return err
		}

		logLevel, err := logrus.ParseLevel(rootConfig.LogLevel)
		if err != nil {
			return err
		}

		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootConfig = config.NewRoot()

	// Bind common persistent flags.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfig.DataDir, "data-dir", rootConfig.DataDir, "specify the snapshot data directory")
	flags.StringVar(&rootConfig.OutputDir, "output-dir", rootConfig.OutputDir, "specify the site output directory")
	flags.StringVar(&rootConfig.LogLevel, "log-level", rootConfig.LogLevel, "specify the log level")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	// Add sub command.
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(renderChartsCmd)
	rootCmd.AddCommand(renderReportCmd)
}
