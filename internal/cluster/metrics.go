package cluster

import (
	"fmt"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"math"
)

// QualityReport 聚类质量评估报告。退化场景下无定义的分数为nil
type QualityReport struct {
	Inertia          float64
	Silhouette       *float64
	DaviesBouldin    *float64
	CalinskiHarabasz *float64
	Sizes            []int
}

// Evaluate 根据原始观测与聚类结果计算评估报告。不修改输入。
// 单个指标退化时仅省略该指标，其他错误则直接返回
func Evaluate(data [][]float64, result *RunResult) (*QualityReport, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) != len(result.Labels) {
		return nil, errors.Wrap(ErrInvalidConfiguration,
			fmt.Sprintf("观测数量%d与标签数量%d不一致", len(data), len(result.Labels)))
	}

	report := &QualityReport{
		Inertia: result.Inertia,
		Sizes:   ClusterSizes(result.Labels, len(result.Centers)),
	}

	silhouette, err := SilhouetteScore(data, result.Labels)
	if err == nil {
		report.Silhouette = &silhouette
	} else if !errors.Is(err, ErrDegenerateClustering) {
		return nil, err
	}

	daviesBouldin, err := DaviesBouldinScore(data, result.Labels, result.Centers)
	if err == nil {
		report.DaviesBouldin = &daviesBouldin
	} else if !errors.Is(err, ErrDegenerateClustering) {
		return nil, err
	}

	calinskiHarabasz, err := CalinskiHarabaszScore(data, result.Labels, result.Centers)
	if err == nil {
		report.CalinskiHarabasz = &calinskiHarabasz
	} else if !errors.Is(err, ErrDegenerateClustering) {
		return nil, err
	}

	return report, nil
}

// SilhouetteScore 轮廓系数。对每个观测，a为到同类其他观测的平均距离，b为到最近其他类
// 全部观测的平均距离，单观测得分为(b-a)/max(a,b)，a与b均为0时得分为0，单元素类的成员
// 得分约定为0。总分为全部观测得分的平均值，取值范围[-1, 1]，越大越好。
// 非空类别不足2个时无定义
func SilhouetteScore(data [][]float64, labels []int) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	numClass := 0
	for _, label := range labels {
		if label+1 > numClass {
			numClass = label + 1
		}
	}
	sizes := ClusterSizes(labels, numClass)

	populated := 0
	for _, size := range sizes {
		if size > 0 {
			populated++
		}
	}
	if populated < 2 {
		return 0, errors.Wrap(ErrDegenerateClustering,
			fmt.Sprintf("非空类别只有%d个，轮廓系数无定义", populated))
	}

	sum := float64(0)
	for i, datum := range data {
		if sizes[labels[i]] == 1 {
			continue
		}

		distanceSum := make([]float64, numClass)
		for j, other := range data {
			if i == j {
				continue
			}
			distanceSum[labels[j]] += distance(datum, other)
		}

		a := distanceSum[labels[i]] / float64(sizes[labels[i]]-1)
		b := math.Inf(1)
		for c := 0; c < numClass; c++ {
			if c == labels[i] || sizes[c] == 0 {
				continue
			}
			if mean := distanceSum[c] / float64(sizes[c]); mean < b {
				b = mean
			}
		}

		if a == 0 && b == 0 {
			continue
		}
		sum += (b - a) / math.Max(a, b)
	}

	return sum / float64(len(data)), nil
}

// DaviesBouldinScore 类别间最坏相似度的平均。每个类的离散度S为类内观测到中心的平均
// 距离，类别对(i,j)的相似度为(Si+Sj)/d(ci,cj)，对每个类取与其他类的最大相似度，总分
// 为各类最大相似度的平均值，越小越好。类别数小于2或存在空类时无定义
func DaviesBouldinScore(data [][]float64, labels []int, centers [][]float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if len(centers) < 2 {
		return 0, errors.Wrap(ErrDegenerateClustering, "类别数量小于2，Davies-Bouldin分数无定义")
	}

	sizes := ClusterSizes(labels, len(centers))
	for c, size := range sizes {
		if size == 0 {
			return 0, errors.Wrap(ErrDegenerateClustering,
				fmt.Sprintf("第%d类为空，Davies-Bouldin分数无定义", c))
		}
	}

	scatter := make([]float64, len(centers))
	for i, datum := range data {
		scatter[labels[i]] += distance(datum, centers[labels[i]])
	}
	for c := range scatter {
		scatter[c] /= float64(sizes[c])
	}

	sum := float64(0)
	for i := range centers {
		max := float64(0)
		for j := range centers {
			if i == j {
				continue
			}
			d := distance(centers[i], centers[j])
			if d == 0 {
				// 中心重合的类别对相似度无意义，跳过
				continue
			}
			if ratio := (scatter[i] + scatter[j]) / d; ratio > max {
				max = ratio
			}
		}
		sum += max
	}

	return sum / float64(len(centers)), nil
}

// CalinskiHarabaszScore 方差比准则。类间离散为各类中心到全局均值的距离平方和按类内
// 数量加权，类内离散为各观测到所属中心的距离平方和，分数为(类间/(K-1))/(类内/(N-K))，
// 越大越好。K为1、K等于N或存在空类时无定义。类内离散为0时返回+Inf
func CalinskiHarabaszScore(data [][]float64, labels []int, centers [][]float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}

	k := len(centers)
	n := len(data)
	if k < 2 || k >= n {
		return 0, errors.Wrap(ErrDegenerateClustering,
			fmt.Sprintf("类别数量为%d，观测数量为%d，Calinski-Harabasz分数无定义", k, n))
	}

	sizes := ClusterSizes(labels, k)
	for c, size := range sizes {
		if size == 0 {
			return 0, errors.Wrap(ErrDegenerateClustering,
				fmt.Sprintf("第%d类为空，Calinski-Harabasz分数无定义", c))
		}
	}

	dim := len(data[0])
	mean := make([]float64, dim)
	for _, datum := range data {
		for j, v := range datum {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	between := float64(0)
	for c, center := range centers {
		between += float64(sizes[c]) * squaredDistance(center, mean)
	}

	within := float64(0)
	for i, datum := range data {
		within += squaredDistance(datum, centers[labels[i]])
	}
	if within == 0 {
		return math.Inf(1), nil
	}

	return (between / float64(k-1)) / (within / float64(n-k)), nil
}

// ClusterSizes 统计每个类别的观测数量。返回长度为numClass，各项之和等于观测数量
func ClusterSizes(labels []int, numClass int) []int {
	sizes := make([]int, numClass)
	for _, label := range labels {
		sizes[label]++
	}
	return sizes
}

func distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}
