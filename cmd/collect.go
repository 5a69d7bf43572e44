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
	"context"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/internal/dataset"
	"github.com/packagewjx/temperature-clusterer/internal/noaa"
	"github.com/packagewjx/temperature-clusterer/internal/utils"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	SourceSynthetic = "synthetic"
	SourceNoaa      = "noaa"
)

const DefaultDataFile = "data/temperature_data.csv"

const (
	FlagSource    = "source"
	FlagSamples   = "samples"
	FlagOutput    = "output"
	FlagToken     = "token"
	FlagStations  = "stations"
	FlagStartDate = "start-date"
	FlagEndDate   = "end-date"
	FlagDataset   = "dataset"
	FlagDataTypes = "data-types"
	FlagBaseUrl   = "url"
)

var (
	source           string
	samplesPerRegion int
	outputFile       string
	noaaToken        string
	noaaStations     []string
	noaaStartDate    string
	noaaEndDate      string
	noaaDataset      string
	noaaDataTypes    []string
	noaaBaseUrl      string
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "获取观测数据并写入CSV文件",
	Long: "数据来源为synthetic时生成四个气候区域的合成观测数据，适合演示与测试。\n" +
		"数据来源为noaa时从NOAA Climate Data Online接口下载逐日气温，按站点聚合为平均气温与气温方差。\n" +
		"访问NOAA接口需要申请令牌：https://www.ncdc.noaa.gov/cdo-web/token",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if source != SourceSynthetic && source != SourceNoaa {
			return fmt.Errorf("数据来源只能为%s或%s，现在为%s", SourceSynthetic, SourceNoaa, source)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		output := outputFile
		if !cmd.Flags().Changed(FlagOutput) && viper.IsSet("output.input_data") {
			output = viper.GetString("output.input_data")
		}

		var observations []*core.StationObservation
		var err error
		switch source {
		case SourceNoaa:
			observations, err = collectNoaa(cmd)
			if err != nil {
				return err
			}
		default:
			log.Println("正在生成合成观测数据")
			observations = dataset.Generate(samplesPerRegion)
		}

		err = os.MkdirAll(filepath.Dir(output), 0755)
		if err != nil {
			return errors.Wrap(err, "创建输出目录失败")
		}
		fout, err := os.Create(output)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("创建%s失败", output))
		}
		counter := &utils.WriterCounter{Writer: fout}
		err = dataset.WriteObservations(counter, observations)
		_ = fout.Close()
		if err != nil {
			return err
		}

		log.Printf("已写入%d条观测数据到%s，共%d字节\n", len(observations), output, counter.Count())
		return nil
	},
}

func collectNoaa(cmd *cobra.Command) ([]*core.StationObservation, error) {
	fetchConfig := &noaa.FetchConfig{
		BaseUrl:   noaaBaseUrl,
		Token:     noaaToken,
		Dataset:   noaaDataset,
		Stations:  noaaStations,
		DataTypes: noaaDataTypes,
		StartDate: noaaStartDate,
		EndDate:   noaaEndDate,
	}

	// 配置文件提供默认值，显式指定的命令行参数优先
	if !cmd.Flags().Changed(FlagStations) && viper.IsSet("data.stations") {
		fetchConfig.Stations = viper.GetStringSlice("data.stations")
	}
	if !cmd.Flags().Changed(FlagStartDate) && viper.IsSet("data.start_date") {
		fetchConfig.StartDate = viper.GetString("data.start_date")
	}
	if !cmd.Flags().Changed(FlagEndDate) && viper.IsSet("data.end_date") {
		fetchConfig.EndDate = viper.GetString("data.end_date")
	}
	if !cmd.Flags().Changed(FlagDataset) && viper.IsSet("data.dataset") {
		fetchConfig.Dataset = viper.GetString("data.dataset")
	}
	if !cmd.Flags().Changed(FlagDataTypes) && viper.IsSet("data.dataTypes") {
		fetchConfig.DataTypes = viper.GetStringSlice("data.dataTypes")
	}
	if !cmd.Flags().Changed(FlagBaseUrl) && viper.IsSet("data.url") {
		fetchConfig.BaseUrl = viper.GetString("data.url")
	}
	if !cmd.Flags().Changed(FlagToken) && viper.IsSet("data.token") {
		fetchConfig.Token = viper.GetString("data.token")
	}

	log.Println("正在从NOAA下载逐日观测数据")
	body, err := noaa.Fetch(context.Background(), fetchConfig)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = body.Close()
	}()

	counter := &utils.ReadCounter{Reader: body}
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				fmt.Printf("\r下载完成\n")
				return
			case <-time.After(time.Second):
				fmt.Printf("\r已下载%d字节", counter.Count())
			}
		}
	}()

	values, err := noaa.ParseDaily(counter)
	done <- struct{}{}
	if err != nil {
		return nil, err
	}
	log.Printf("下载完成，共%d条逐日观测\n", len(values))

	observations := noaa.Aggregate(values)
	log.Printf("聚合完成，共%d个站点\n", len(observations))
	return observations, nil
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringVarP(&source, FlagSource, "s", SourceSynthetic,
		"数据来源，可选值：synthetic、noaa")
	collectCmd.Flags().IntVar(&samplesPerRegion, FlagSamples, dataset.DefaultSamplesPerRegion,
		"合成数据中每个气候区域的观测数量")
	collectCmd.Flags().StringVarP(&outputFile, FlagOutput, "o", DefaultDataFile,
		"观测数据CSV输出路径。配置文件output.input_data提供默认值")
	collectCmd.Flags().StringVar(&noaaToken, FlagToken, "",
		"NOAA接口令牌。配置文件data.token提供默认值")
	collectCmd.Flags().StringSliceVar(&noaaStations, FlagStations, nil,
		"NOAA站点编号列表。配置文件data.stations提供默认值")
	collectCmd.Flags().StringVar(&noaaStartDate, FlagStartDate, "",
		"观测起始日期，格式为2006-01-02")
	collectCmd.Flags().StringVar(&noaaEndDate, FlagEndDate, "",
		"观测结束日期，格式为2006-01-02")
	collectCmd.Flags().StringVar(&noaaDataset, FlagDataset, noaa.DefaultDataset,
		"NOAA数据集名称")
	collectCmd.Flags().StringSliceVar(&noaaDataTypes, FlagDataTypes, noaa.DefaultDataTypes,
		"NOAA数据类型列表")
	collectCmd.Flags().StringVar(&noaaBaseUrl, FlagBaseUrl, noaa.DefaultBaseUrl,
		"NOAA接口地址")
}
