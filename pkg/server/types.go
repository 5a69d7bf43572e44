package server

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
)

var ErrNoReport = fmt.Errorf("尚未产生任何聚类结果")

type API interface {
	// QueryLatestMetrics 返回最近一次聚类运行的完整结果。服务器启动后尚未完成
	// 首次聚类时返回ErrNoReport
	QueryLatestMetrics() (*core.MetricsRecord, error)

	// ReCluster 请求立即执行一次聚类
	ReCluster() error
}
