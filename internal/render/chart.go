package render

import (
	"fmt"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
)

// Chart 构造聚类结果的交互式散点图。数据点第三维为类别编号，颜色由VisualMap按类别映射，
// 类中心与所属类别同色，以菱形区分
func Chart(record *core.MetricsRecord, config *ScatterConfig) (*charts.Scatter, error) {
	if err := config.Complete(); err != nil {
		return nil, err
	}
	if len(record.DataPoints) == 0 || len(record.DataPoints) != len(record.Labels) {
		return nil, fmt.Errorf("结果记录数据有误，数据点%d个，标签%d个", len(record.DataPoints), len(record.Labels))
	}

	points := make([]opts.ScatterData, 0, len(record.DataPoints))
	for i, point := range record.DataPoints {
		if len(point) < core.NumFeatures {
			continue
		}
		points = append(points, opts.ScatterData{Value: []interface{}{point[0], point[1], record.Labels[i]}})
	}

	centers := make([]opts.ScatterData, 0, len(record.ClusterCenters))
	for class, center := range record.ClusterCenters {
		if len(center) < core.NumFeatures {
			continue
		}
		centers = append(centers, opts.ScatterData{
			Value:      []interface{}{center[0], center[1], class},
			Symbol:     "diamond",
			SymbolSize: 20,
		})
	}

	numClass := len(record.ClusterCenters)
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Temperature Clusters", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "K-Means Clustering of Temperature Data",
			Subtitle: fmt.Sprintf("clusters=%d samples=%d", record.NumClusters, record.NumSamples),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Average Temperature (°C)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Temperature Variance", NameLocation: "middle", NameGap: 40}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(numClass - 1),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: Palette(config.Colormap)},
		}),
	)

	scatter.AddSeries("observations", points, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	scatter.AddSeries("centers", centers)

	return scatter, nil
}

// WriteChart 渲染交互式散点图到HTML文件
func WriteChart(record *core.MetricsRecord, config *ScatterConfig, path string) error {
	chart, err := Chart(record, config)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return errors.Wrap(err, "创建输出目录失败")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("创建%s失败", path))
	}
	defer func() {
		_ = f.Close()
	}()

	return chart.Render(f)
}
