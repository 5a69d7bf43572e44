package preprocess

// Preprocessor 聚类前的数据预处理器，就地修改数据矩阵
type Preprocessor interface {
	Preprocess(data [][]float64)
}

type defaultPreprocess struct {
	chain []Preprocessor
}

func (d *defaultPreprocess) Preprocess(data [][]float64) {
	for _, processor := range d.chain {
		processor.Preprocess(data)
	}
}

func Default() Preprocessor {
	return &defaultPreprocess{chain: []Preprocessor{Normalize()}}
}
