package dataset

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"io"
	"strconv"
)

// NewCsvObservationSource 创建读取观测CSV数据的数据源。首行若为表头则自动跳过
func NewCsvObservationSource(reader io.Reader) ObservationSource {
	return &csvObservationSource{reader: csv.NewReader(reader)}
}

type csvObservationSource struct {
	reader *csv.Reader
	line   int
}

var _ ObservationSource = &csvObservationSource{}

func (c *csvObservationSource) Load() (*core.StationObservation, error) {
	record, err := c.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	} else if err != nil {
		return nil, errors.Wrap(err, "读取CSV记录出错")
	}
	c.line++

	if len(record) < 3 {
		return nil, fmt.Errorf("第%d行只有%d列，至少需要3列", c.line, len(record))
	}

	if c.line == 1 && record[0] == core.ObservationHeader[0] {
		return c.Load()
	}

	avgTemp, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("第%d行平均气温有误，数据为[%s]", c.line, record[1]))
	}
	variance, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("第%d行气温方差有误，数据为[%s]", c.line, record[2]))
	}

	return &core.StationObservation{
		StationId:    record[0],
		AvgTemp:      avgTemp,
		TempVariance: variance,
	}, nil
}

// ReadAll 读取数据源的全部观测，保持读取顺序
func ReadAll(source ObservationSource) ([]*core.StationObservation, error) {
	result := make([]*core.StationObservation, 0, 16)
	var observation *core.StationObservation
	var err error
	for observation, err = source.Load(); err == nil; observation, err = source.Load() {
		result = append(result, observation)
	}
	if err != io.EOF {
		return nil, errors.Wrap(err, "读取观测数据出现问题")
	}
	return result, nil
}

// Matrix 将观测转换为聚类输入矩阵，行顺序与观测顺序一致
func Matrix(observations []*core.StationObservation) [][]float64 {
	data := make([][]float64, len(observations))
	for i, observation := range observations {
		data[i] = observation.Features()
	}
	return data
}

// ReadMatrix 从CSV数据直接读出聚类输入矩阵
func ReadMatrix(reader io.Reader) ([][]float64, error) {
	observations, err := ReadAll(NewCsvObservationSource(reader))
	if err != nil {
		return nil, err
	}
	return Matrix(observations), nil
}
