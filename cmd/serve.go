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
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/internal/render"
	"github.com/packagewjx/temperature-clusterer/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"time"
)

const (
	FlagPort              = "port"
	FlagReClusterInterval = "interval"
	FlagDataFile          = "data-file"
	FlagMysqlHost         = "mysql-host"
)

var (
	port              uint16
	reClusterInterval time.Duration
	serveDataFile     string
	serveNumClass     int
	serveMaxRound     int
	serveNumInit      int
	serveRandomState  int64
	serveNormalize    bool
	mysqlHost         string
	serveColormap     string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "聚类服务器",
	Long: "本服务器每隔一段时间（通过interval指定）重新读取观测数据文件并执行聚类，\n" +
		"通过HTTP接口提供最近一次的结果记录、文本摘要与交互式图表。\n" +
		"指定mysql-host时每次聚类结果将归档到MySQL，用于追踪聚类质量随时间的变化。",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataFile := serveDataFile
		if !cmd.Flags().Changed(FlagDataFile) && viper.IsSet("output.input_data") {
			dataFile = viper.GetString("output.input_data")
		}

		config := &server.ServerConfig{
			Port:              port,
			ReClusterInterval: reClusterInterval,
			DataFile:          dataFile,
			Clustering: cluster.KMeansConfig{
				NumClass:    serveNumClass,
				MaxRound:    serveMaxRound,
				NumInit:     serveNumInit,
				RandomState: serveRandomState,
			},
			Normalize: serveNormalize,
			MysqlHost: mysqlHost,
			Colormap:  serveColormap,
		}
		applyClusteringParams(cmd, &config.Clustering)

		s, err := server.NewServer(config)
		if err != nil {
			return err
		}

		return s.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Uint16VarP(&port, FlagPort, "p", server.DefaultPort,
		"服务端口号")
	serveCmd.Flags().DurationVarP(&reClusterInterval, FlagReClusterInterval, "i", server.DefaultReClusterInterval,
		"重新聚类的间隔，至少为1m")
	serveCmd.Flags().StringVarP(&serveDataFile, FlagDataFile, "f", DefaultDataFile,
		"观测数据CSV文件路径，每次聚类重新读取。配置文件output.input_data提供默认值")
	serveCmd.Flags().IntVarP(&serveNumClass, FlagNumClass, "c", cluster.DefaultNumClass,
		"聚类类别数量。配置文件clustering.n_clusters提供默认值")
	serveCmd.Flags().IntVarP(&serveMaxRound, FlagMaxRound, "r", cluster.DefaultMaxRound,
		"单次运行的最大迭代轮次。配置文件clustering.max_iter提供默认值")
	serveCmd.Flags().IntVar(&serveNumInit, FlagNumInit, cluster.DefaultNumInit,
		"独立重启次数。配置文件clustering.n_init提供默认值")
	serveCmd.Flags().Int64Var(&serveRandomState, FlagRandomState, cluster.DefaultRandomState,
		"随机种子。配置文件clustering.random_state提供默认值")
	serveCmd.Flags().BoolVar(&serveNormalize, FlagNormalize, false,
		"聚类前将特征归一化到[0,1]")
	serveCmd.Flags().StringVar(&mysqlHost, FlagMysqlHost, "",
		"Mysql服务器主机端口，格式为：host:port。不为空时每次聚类结果将归档")
	serveCmd.Flags().StringVar(&serveColormap, FlagColormap, render.DefaultColormap,
		"图表配色方案，可选值：viridis、plasma、classic")
}
