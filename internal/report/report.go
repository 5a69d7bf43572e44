package report

import (
	"encoding/json"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
)

// Build 组装一次聚类运行的完整结果记录。无法计算或非有限的评估分数不写入记录
func Build(config *cluster.KMeansConfig, data [][]float64, runResult *cluster.RunResult, quality *cluster.QualityReport) *core.MetricsRecord {
	record := &core.MetricsRecord{
		Algorithm:      core.AlgorithmName,
		NumClusters:    config.NumClass,
		NumSamples:     len(data),
		RandomState:    config.RandomState,
		Inertia:        runResult.Inertia,
		ClusterCenters: runResult.Centers,
		ClusterSizes:   quality.Sizes,
		Labels:         runResult.Labels,
		DataPoints:     data,
	}
	if len(data) > 0 {
		record.NumFeatures = len(data[0])
	}

	record.SilhouetteScore = finiteScore(quality.Silhouette)
	record.DaviesBouldinScore = finiteScore(quality.DaviesBouldin)
	record.CalinskiHarabaszScore = finiteScore(quality.CalinskiHarabasz)

	return record
}

// JSON无法表示NaN与Inf
func finiteScore(score *float64) *float64 {
	if score == nil || math.IsNaN(*score) || math.IsInf(*score, 0) {
		return nil
	}
	return score
}

// Write 将结果记录写入JSON文件，自动创建所在目录
func Write(path string, record *core.MetricsRecord) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return errors.Wrap(err, "创建输出目录失败")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.Wrap(err, "序列化结果记录失败")
	}

	err = ioutil.WriteFile(path, data, 0644)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("写入%s失败", path))
	}

	return nil
}

// Load 读取Write输出的JSON结果记录
func Load(path string) (*core.MetricsRecord, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("读取%s失败", path))
	}

	record := &core.MetricsRecord{}
	err = json.Unmarshal(data, record)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("解析%s失败", path))
	}

	return record, nil
}
