package core

// 观测特征维度。本系统的观测为各站点的平均气温与气温方差
const NumFeatures = 2

// 观测数据CSV文件的表头列名
var ObservationHeader = []string{"region_id", "avg_temp_celsius", "temp_variance"}

const AlgorithmName = "K-Means"

// 单个观测站的聚类输入数据
type StationObservation struct {
	StationId    string
	AvgTemp      float64 // 平均气温，摄氏度
	TempVariance float64 // 气温方差
}

func (s *StationObservation) Features() []float64 {
	return []float64{s.AvgTemp, s.TempVariance}
}

// MetricsRecord 是一次聚类运行的完整结果，序列化为JSON文件后供可视化与查询接口使用。
// 退化场景下无法计算的评估分数置为nil，序列化时省略对应字段
type MetricsRecord struct {
	Algorithm             string      `json:"algorithm"`
	NumClusters           int         `json:"n_clusters"`
	NumSamples            int         `json:"n_samples"`
	NumFeatures           int         `json:"n_features"`
	RandomState           int64       `json:"random_state"`
	Inertia               float64     `json:"inertia"`
	SilhouetteScore       *float64    `json:"silhouette_score,omitempty"`
	DaviesBouldinScore    *float64    `json:"davies_bouldin_score,omitempty"`
	CalinskiHarabaszScore *float64    `json:"calinski_harabasz_score,omitempty"`
	ClusterCenters        [][]float64 `json:"cluster_centers"`
	ClusterSizes          []int       `json:"cluster_sizes"`
	Labels                []int       `json:"labels"`
	DataPoints            [][]float64 `json:"data_points"`
}
