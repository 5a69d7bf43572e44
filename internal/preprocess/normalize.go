package preprocess

import (
	"gonum.org/v1/gonum/floats"
)

// Normalize 将每个特征列线性缩放到[0,1]。列内数值全部相同时该列保持不变
func Normalize() Preprocessor {
	return &normalize{}
}

type normalize struct {
}

var _ Preprocessor = &normalize{}

func (n *normalize) Preprocess(data [][]float64) {
	if len(data) == 0 {
		return
	}

	column := make([]float64, len(data))
	for j := 0; j < len(data[0]); j++ {
		for i := 0; i < len(data); i++ {
			column[i] = data[i][j]
		}
		min := floats.Min(column)
		max := floats.Max(column)
		if max == min {
			continue
		}

		for i := 0; i < len(data); i++ {
			data[i][j] = (data[i][j] - min) / (max - min)
		}
	}
}
