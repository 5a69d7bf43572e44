package render

import (
	"image/color"
	"strconv"
)

const DefaultColormap = "viridis"

// 与matplotlib同名配色方案的十六进制色值
var colormaps = map[string][]string{
	"viridis": {"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"},
	"plasma":  {"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786", "#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921"},
	"classic": {"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf"},
}

// Palette 返回指定配色方案的色值列表，未知名称时回退到默认配色
func Palette(colormap string) []string {
	if palette, ok := colormaps[colormap]; ok {
		return palette
	}
	return colormaps[DefaultColormap]
}

// ClusterColor 为第i类选取颜色，各类别在配色上均匀取点
func ClusterColor(palette []string, i, numClass int) color.Color {
	idx := 0
	if numClass > 1 {
		idx = i * (len(palette) - 1) / (numClass - 1)
	}
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return hexColor(palette[idx])
}

func hexColor(hex string) color.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return color.Black
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
