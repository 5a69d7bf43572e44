package dataset

import "github.com/packagewjx/temperature-clusterer/pkg/core"

// 观测数据源。读取完毕时error为io.EOF，error为其他时表示读取出错
type ObservationSource interface {
	Load() (*core.StationObservation, error)
}
