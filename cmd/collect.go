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
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelpack/trendctl/pkg/config"
	"github.com/modelpack/trendctl/pkg/hub"
	"github.com/modelpack/trendctl/pkg/snapshot"
	"github.com/modelpack/trendctl/pkg/trending"
)

var collectConfig = config.NewCollect()

// collectCmd represents the trendctl command for collect.
var collectCmd = &cobra.Command{
	Use:                "collect",
	Short:              "Collect ranked model listings from the hub into a dated snapshot",
	Args:               cobra.NoArgs,
	DisableAutoGenTag:  true,
	SilenceUsage:       true,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(context.Background())
	},
}

// init initializes collect command.
func init() {
	flags := collectCmd.Flags()
	flags.StringVar(&collectConfig.BaseURL, "hub-url", collectConfig.BaseURL, "specify the hub base URL")
	flags.IntVar(&collectConfig.FetchLimit, "limit", collectConfig.FetchLimit, "specify the number of records fetched per ranked view")
	flags.IntVar(&collectConfig.KeepLimit, "keep", collectConfig.KeepLimit, "specify the number of records kept per ranked list")
	flags.IntVar(&collectConfig.TopPerCategory, "top-per-category", collectConfig.TopPerCategory, "specify the number of models kept per category")
	flags.DurationVar(&collectConfig.Timeout, "timeout", collectConfig.Timeout, "specify the per-request timeout")

	if err := viper.BindPFlags(flags); err != nil {
		panic(fmt.Errorf("bind collect flags to viper: %w", err))
	}
}

// runCollect runs the collect trendctl.
func runCollect(ctx context.Context) error {
	if err := collectConfig.Validate(); err != nil {
		return err
	}

	store, err := snapshot.NewStore(rootConfig.DataDir)
	if err != nil {
		return err
	}

	collector := trending.NewCollector(
		hub.NewClient(collectConfig.BaseURL, collectConfig.Timeout),
		trending.NewClassifier(trending.DefaultCategories(), trending.DefaultSizeBuckets()),
		trending.NewKeywordExtractor(trending.DefaultVocabulary()),
		trending.CollectorOptions{
			FetchLimit:     collectConfig.FetchLimit,
			KeepLimit:      collectConfig.KeepLimit,
			TopPerCategory: collectConfig.TopPerCategory,
		},
	)

	snap := collector.Collect(ctx)
	if err := store.Persist(ctx, snap); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stderr, 0, 0, 4, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "RANK\tMODEL\tCATEGORY\tDOWNLOADS\tLIKES")

	for i, model := range snap.TrendingModels {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, model.ID, model.TechCategory,
			humanize.Comma(model.Downloads), humanize.Comma(model.Likes))
	}

	return nil
}
