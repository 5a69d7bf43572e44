/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/internal/dataset"
	"github.com/packagewjx/temperature-clusterer/internal/preprocess"
	"github.com/packagewjx/temperature-clusterer/internal/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"os"
)

const DefaultMetricsFile = "data/clustering_metrics.json"

const (
	FlagInput       = "input"
	FlagMetricsFile = "metrics-file"
	FlagNumClass    = "class"
	FlagMaxRound    = "round"
	FlagNumInit     = "init"
	FlagRandomState = "seed"
	FlagNormalize   = "normalize"
)

var (
	inputFile     string
	metricsFile   string
	numClass      int
	maxRound      int
	numInit       int
	randomState   int64
	normalizeData bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "对观测数据执行K-Means聚类，输出结果记录文件",
	Long: "读取collect产生的观测数据CSV文件，执行K-Means聚类，计算聚类质量指标，\n" +
		"并将包含类中心、标签与各项分数的结果记录写入JSON文件，供visualize与查询接口使用。",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := inputFile
		if !cmd.Flags().Changed(FlagInput) && viper.IsSet("output.input_data") {
			input = viper.GetString("output.input_data")
		}
		metricsPath := metricsFile
		if !cmd.Flags().Changed(FlagMetricsFile) && viper.IsSet("output.metrics_file") {
			metricsPath = viper.GetString("output.metrics_file")
		}

		config := &cluster.KMeansConfig{
			NumClass:    numClass,
			MaxRound:    maxRound,
			NumInit:     numInit,
			RandomState: randomState,
		}
		applyClusteringParams(cmd, config)

		log.Printf("正在读取观测数据文件%s\n", input)
		f, err := os.Open(input)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("打开%s失败", input))
		}
		data, err := dataset.ReadMatrix(f)
		_ = f.Close()
		if err != nil {
			return err
		}
		log.Printf("读取完成，共%d条观测\n", len(data))

		if normalizeData {
			log.Println("正在归一化特征")
			preprocess.Default().Preprocess(data)
		}

		log.Printf("正在运行K-Means算法，类别数为%d\n", config.NumClass)
		result, err := cluster.GetAlgorithm(cluster.KMeans, config).Run(data)
		if err != nil {
			return errors.Wrap(err, "聚类执行出错")
		}
		log.Printf("聚类完成，迭代%d轮，惯性为%f\n", result.Rounds, result.Inertia)

		quality, err := cluster.Evaluate(data, result)
		if err != nil {
			return errors.Wrap(err, "评估聚类质量出错")
		}

		record := report.Build(config, data, result, quality)
		err = report.Write(metricsPath, record)
		if err != nil {
			return err
		}
		log.Printf("结果记录已写入%s\n", metricsPath)

		fmt.Println(report.Summary(record))
		return nil
	},
}

// 配置文件clustering段提供默认值，显式指定的命令行参数优先
func applyClusteringParams(cmd *cobra.Command, config *cluster.KMeansConfig) {
	if !cmd.Flags().Changed(FlagNumClass) && viper.IsSet("clustering.n_clusters") {
		config.NumClass = viper.GetInt("clustering.n_clusters")
	}
	if !cmd.Flags().Changed(FlagMaxRound) && viper.IsSet("clustering.max_iter") {
		config.MaxRound = viper.GetInt("clustering.max_iter")
	}
	if !cmd.Flags().Changed(FlagNumInit) && viper.IsSet("clustering.n_init") {
		config.NumInit = viper.GetInt("clustering.n_init")
	}
	if !cmd.Flags().Changed(FlagRandomState) && viper.IsSet("clustering.random_state") {
		config.RandomState = viper.GetInt64("clustering.random_state")
	}
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&inputFile, FlagInput, "i", DefaultDataFile,
		"观测数据CSV文件路径。配置文件output.input_data提供默认值")
	processCmd.Flags().StringVarP(&metricsFile, FlagMetricsFile, "m", DefaultMetricsFile,
		"结果记录JSON输出路径。配置文件output.metrics_file提供默认值")
	processCmd.Flags().IntVarP(&numClass, FlagNumClass, "c", cluster.DefaultNumClass,
		"聚类类别数量。配置文件clustering.n_clusters提供默认值")
	processCmd.Flags().IntVarP(&maxRound, FlagMaxRound, "r", cluster.DefaultMaxRound,
		"单次运行的最大迭代轮次。配置文件clustering.max_iter提供默认值")
	processCmd.Flags().IntVar(&numInit, FlagNumInit, cluster.DefaultNumInit,
		"独立重启次数，取惯性最小的一次结果。配置文件clustering.n_init提供默认值")
	processCmd.Flags().Int64Var(&randomState, FlagRandomState, cluster.DefaultRandomState,
		"随机种子，相同种子与数据产生相同结果。配置文件clustering.random_state提供默认值")
	processCmd.Flags().BoolVar(&normalizeData, FlagNormalize, false,
		"聚类前将特征归一化到[0,1]")
}
