package render

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"image/color"
	"os"
	"path/filepath"
)

const (
	DefaultWidth  = 10.0
	DefaultHeight = 6.0
	DefaultDPI    = 300
)

type ScatterConfig struct {
	Width    float64 // 图像宽度，英寸
	Height   float64 // 图像高度，英寸
	DPI      int
	Colormap string // 配色方案名称，见colormaps
}

func (c *ScatterConfig) Complete() error {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.DPI <= 0 {
		c.DPI = DefaultDPI
	}
	if c.Colormap == "" {
		c.Colormap = DefaultColormap
	}

	if _, ok := colormaps[c.Colormap]; !ok {
		return fmt.Errorf("未知的配色方案%s", c.Colormap)
	}

	return nil
}

// Scatter 将聚类结果绘制为散点图并保存为PNG文件，每个类别一种颜色，类中心画为叉号
func Scatter(record *core.MetricsRecord, config *ScatterConfig, path string) error {
	if err := config.Complete(); err != nil {
		return err
	}
	if len(record.DataPoints) == 0 || len(record.DataPoints) != len(record.Labels) {
		return fmt.Errorf("结果记录数据有误，数据点%d个，标签%d个", len(record.DataPoints), len(record.Labels))
	}

	p := plot.New()
	p.Title.Text = "K-Means Clustering of Temperature Data"
	p.X.Label.Text = "Average Temperature (°C)"
	p.Y.Label.Text = "Temperature Variance"
	p.Add(plotter.NewGrid())

	palette := Palette(config.Colormap)
	numClass := len(record.ClusterCenters)
	for class := 0; class < numClass; class++ {
		points := make(plotter.XYs, 0)
		for i, label := range record.Labels {
			if label != class || len(record.DataPoints[i]) < core.NumFeatures {
				continue
			}
			points = append(points, plotter.XY{X: record.DataPoints[i][0], Y: record.DataPoints[i][1]})
		}
		if len(points) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return errors.Wrap(err, "构造散点失败")
		}
		scatter.GlyphStyle.Color = ClusterColor(palette, class, numClass)
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("Cluster %d", class), scatter)
	}

	centerPoints := make(plotter.XYs, 0, numClass)
	for _, center := range record.ClusterCenters {
		if len(center) < core.NumFeatures {
			continue
		}
		centerPoints = append(centerPoints, plotter.XY{X: center[0], Y: center[1]})
	}
	if len(centerPoints) > 0 {
		centers, err := plotter.NewScatter(centerPoints)
		if err != nil {
			return errors.Wrap(err, "构造中心点失败")
		}
		centers.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		centers.GlyphStyle.Radius = vg.Points(8)
		centers.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(centers)
		p.Legend.Add("Cluster Centers", centers)
	}
	p.Legend.Top = true

	return savePNG(p, config, path)
}

func savePNG(p *plot.Plot, config *ScatterConfig, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return errors.Wrap(err, "创建输出目录失败")
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(vg.Length(config.Width)*vg.Inch, vg.Length(config.Height)*vg.Inch),
		vgimg.UseDPI(config.DPI),
	)
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("创建%s失败", path))
	}
	defer func() {
		_ = f.Close()
	}()

	png := vgimg.PngCanvas{Canvas: canvas}
	_, err = png.WriteTo(f)
	if err != nil {
		return errors.Wrap(err, "写入PNG失败")
	}

	return nil
}
