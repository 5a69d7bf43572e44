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
	"github.com/packagewjx/temperature-clusterer/internal/render"
	"github.com/packagewjx/temperature-clusterer/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log"
	"path/filepath"
	"strings"
)

const DefaultVisualizationFile = "data/cluster_visualization.png"

const (
	FlagVizMetricsFile = "metrics-file"
	FlagVizOutput      = "output"
	FlagFigureWidth    = "width"
	FlagFigureHeight   = "height"
	FlagDPI            = "dpi"
	FlagColormap       = "colormap"
	FlagHtml           = "html"
)

var (
	vizMetricsFile string
	vizOutputFile  string
	figureWidth    float64
	figureHeight   float64
	dpi            int
	colormap       string
	htmlOutput     bool
)

// visualizeCmd represents the visualize command
var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "读取聚类结果记录，绘制散点图",
	Long: "读取process产生的结果记录JSON文件，将观测点按类别着色绘制为散点图PNG，\n" +
		"类中心以红色叉号标出。指定html参数时额外输出可交互的HTML图表。",
	RunE: func(cmd *cobra.Command, args []string) error {
		metricsPath := vizMetricsFile
		if !cmd.Flags().Changed(FlagVizMetricsFile) && viper.IsSet("output.metrics_file") {
			metricsPath = viper.GetString("output.metrics_file")
		}
		output := vizOutputFile
		if !cmd.Flags().Changed(FlagVizOutput) && viper.IsSet("output.visualization") {
			output = viper.GetString("output.visualization")
		}

		scatterConfig := &render.ScatterConfig{
			Width:    figureWidth,
			Height:   figureHeight,
			DPI:      dpi,
			Colormap: colormap,
		}
		if !cmd.Flags().Changed(FlagFigureWidth) && viper.IsSet("visualization.figure_width") {
			scatterConfig.Width = viper.GetFloat64("visualization.figure_width")
		}
		if !cmd.Flags().Changed(FlagFigureHeight) && viper.IsSet("visualization.figure_height") {
			scatterConfig.Height = viper.GetFloat64("visualization.figure_height")
		}
		if !cmd.Flags().Changed(FlagDPI) && viper.IsSet("visualization.dpi") {
			scatterConfig.DPI = viper.GetInt("visualization.dpi")
		}
		if !cmd.Flags().Changed(FlagColormap) && viper.IsSet("visualization.colormap") {
			scatterConfig.Colormap = viper.GetString("visualization.colormap")
		}

		log.Printf("正在读取结果记录文件%s\n", metricsPath)
		record, err := report.Load(metricsPath)
		if err != nil {
			return err
		}

		err = render.Scatter(record, scatterConfig, output)
		if err != nil {
			return err
		}
		log.Printf("散点图已保存到%s\n", output)

		if htmlOutput {
			htmlPath := strings.TrimSuffix(output, filepath.Ext(output)) + ".html"
			err = render.WriteChart(record, scatterConfig, htmlPath)
			if err != nil {
				return err
			}
			log.Printf("交互式图表已保存到%s\n", htmlPath)
		}

		fmt.Println(report.Summary(record))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visualizeCmd)

	visualizeCmd.Flags().StringVarP(&vizMetricsFile, FlagVizMetricsFile, "m", DefaultMetricsFile,
		"结果记录JSON文件路径。配置文件output.metrics_file提供默认值")
	visualizeCmd.Flags().StringVarP(&vizOutputFile, FlagVizOutput, "o", DefaultVisualizationFile,
		"散点图PNG输出路径。配置文件output.visualization提供默认值")
	visualizeCmd.Flags().Float64Var(&figureWidth, FlagFigureWidth, render.DefaultWidth,
		"图像宽度，英寸。配置文件visualization.figure_width提供默认值")
	visualizeCmd.Flags().Float64Var(&figureHeight, FlagFigureHeight, render.DefaultHeight,
		"图像高度，英寸。配置文件visualization.figure_height提供默认值")
	visualizeCmd.Flags().IntVar(&dpi, FlagDPI, render.DefaultDPI,
		"图像分辨率。配置文件visualization.dpi提供默认值")
	visualizeCmd.Flags().StringVar(&colormap, FlagColormap, render.DefaultColormap,
		"配色方案，可选值：viridis、plasma、classic。配置文件visualization.colormap提供默认值")
	visualizeCmd.Flags().BoolVar(&htmlOutput, FlagHtml, false,
		"额外输出可交互的HTML图表")
}
