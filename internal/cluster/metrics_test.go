package cluster

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestSilhouetteScore(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 2}, {10, 0}, {10, 2}}
	labels := []int{0, 0, 1, 1}

	// a=2，b=(10+sqrt(104))/2，四个观测得分相同
	score, err := SilhouetteScore(data, labels)
	assert.NoError(t, err)
	assert.InDelta(t, 0.80196, score, 1e-5)

	/*
		全部观测属于同一类
	*/
	_, err = SilhouetteScore(data, []int{0, 0, 0, 0})
	assert.True(t, errors.Is(err, ErrDegenerateClustering))

	/*
		全部为单元素类时各观测得分按约定为0
	*/
	score, err = SilhouetteScore(data, []int{0, 1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, float64(0), score)

	/*
		空输入
	*/
	_, err = SilhouetteScore(nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestDaviesBouldinScore(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 2}, {10, 0}, {10, 2}}
	labels := []int{0, 0, 1, 1}
	centers := [][]float64{{0, 1}, {10, 1}}

	// S0=S1=1，中心距离10，两类的最大相似度均为0.2
	score, err := DaviesBouldinScore(data, labels, centers)
	assert.NoError(t, err)
	assert.InDelta(t, 0.2, score, 1e-9)

	/*
		只有一个类
	*/
	_, err = DaviesBouldinScore(data, []int{0, 0, 0, 0}, [][]float64{{5, 1}})
	assert.True(t, errors.Is(err, ErrDegenerateClustering))

	/*
		存在空类
	*/
	_, err = DaviesBouldinScore(data, []int{0, 0, 0, 0}, centers)
	assert.True(t, errors.Is(err, ErrDegenerateClustering))
}

func TestCalinskiHarabaszScore(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 2}, {10, 0}, {10, 2}}
	labels := []int{0, 0, 1, 1}
	centers := [][]float64{{0, 1}, {10, 1}}

	// 类间离散100，类内离散4，(100/1)/(4/2)=50
	score, err := CalinskiHarabaszScore(data, labels, centers)
	assert.NoError(t, err)
	assert.InDelta(t, 50, score, 1e-9)

	/*
		只有一个类
	*/
	_, err = CalinskiHarabaszScore(data, []int{0, 0, 0, 0}, [][]float64{{5, 1}})
	assert.True(t, errors.Is(err, ErrDegenerateClustering))

	/*
		类数等于观测数
	*/
	_, err = CalinskiHarabaszScore(data, []int{0, 1, 2, 3}, data)
	assert.True(t, errors.Is(err, ErrDegenerateClustering))

	/*
		存在空类
	*/
	_, err = CalinskiHarabaszScore(data, []int{0, 0, 0, 0}, centers)
	assert.True(t, errors.Is(err, ErrDegenerateClustering))

	/*
		类内离散为0时分数为正无穷
	*/
	score, err = CalinskiHarabaszScore(
		[][]float64{{0, 0}, {0, 0}, {5, 5}},
		[]int{0, 0, 1},
		[][]float64{{0, 0}, {5, 5}})
	assert.NoError(t, err)
	assert.True(t, math.IsInf(score, 1))
}

func TestClusterSizes(t *testing.T) {
	sizes := ClusterSizes([]int{0, 1, 1, 2, 0, 0}, 4)
	assert.Equal(t, []int{3, 2, 1, 0}, sizes)

	total := 0
	for _, size := range sizes {
		total += size
	}
	assert.Equal(t, 6, total)
}

func TestEvaluate(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 2}, {10, 0}, {10, 2}}
	result := &RunResult{
		Centers: [][]float64{{0, 1}, {10, 1}},
		Labels:  []int{0, 0, 1, 1},
		Inertia: 4,
		Rounds:  2,
	}

	report, err := Evaluate(data, result)
	assert.NoError(t, err)
	assert.Equal(t, float64(4), report.Inertia)
	assert.Equal(t, []int{2, 2}, report.Sizes)
	if assert.NotNil(t, report.Silhouette) {
		assert.InDelta(t, 0.80196, *report.Silhouette, 1e-5)
	}
	if assert.NotNil(t, report.DaviesBouldin) {
		assert.InDelta(t, 0.2, *report.DaviesBouldin, 1e-9)
	}
	if assert.NotNil(t, report.CalinskiHarabasz) {
		assert.InDelta(t, 50, *report.CalinskiHarabasz, 1e-9)
	}

	/*
		退化场景：只有一个类时三个分数全部省略
	*/
	single := &RunResult{
		Centers: [][]float64{{5, 1}},
		Labels:  []int{0, 0, 0, 0},
		Inertia: 54,
	}
	report, err = Evaluate(data, single)
	assert.NoError(t, err)
	assert.Nil(t, report.Silhouette)
	assert.Nil(t, report.DaviesBouldin)
	assert.Nil(t, report.CalinskiHarabasz)
	assert.Equal(t, []int{4}, report.Sizes)

	/*
		标签数量与观测数量不一致
	*/
	_, err = Evaluate(data[:2], result)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	/*
		空输入
	*/
	_, err = Evaluate(nil, result)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestEvaluateScoreRanges(t *testing.T) {
	data := make([][]float64, 0, 90)
	for i := 0; i < 30; i++ {
		data = append(data, []float64{-15 + float64(i%5), 8 + float64(i)*0.01})
		data = append(data, []float64{15 + float64(i%8), 12 + float64(i)*0.01})
		data = append(data, []float64{28 + float64(i%4), 5 + float64(i)*0.01})
	}

	result, err := NewKMeans(&KMeansConfig{NumClass: 3, MaxRound: 300, NumInit: 10, RandomState: 42}).Run(data)
	assert.NoError(t, err)

	report, err := Evaluate(data, result)
	assert.NoError(t, err)

	total := 0
	for _, size := range report.Sizes {
		total += size
	}
	assert.Equal(t, len(data), total)

	if assert.NotNil(t, report.Silhouette) {
		assert.GreaterOrEqual(t, *report.Silhouette, -1.0)
		assert.LessOrEqual(t, *report.Silhouette, 1.0)
	}
	if assert.NotNil(t, report.DaviesBouldin) {
		assert.GreaterOrEqual(t, *report.DaviesBouldin, 0.0)
	}
	if assert.NotNil(t, report.CalinskiHarabasz) {
		assert.GreaterOrEqual(t, *report.CalinskiHarabasz, 0.0)
	}
}
