package archive

import (
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func testDao(t *testing.T) Dao {
	dao, err := NewDao("127.0.0.1:3306")
	if err != nil {
		t.Skipf("无法连接测试数据库：%v", err)
	}
	return dao
}

func testMetricsRecord(numSamples int) *core.MetricsRecord {
	silhouette := 0.72
	return &core.MetricsRecord{
		Algorithm:       core.AlgorithmName,
		NumClusters:     2,
		NumSamples:      numSamples,
		NumFeatures:     core.NumFeatures,
		RandomState:     42,
		Inertia:         123.5,
		SilhouetteScore: &silhouette,
		ClusterCenters:  [][]float64{{-14, 9}, {26, 6}},
		ClusterSizes:    []int{30, 60},
		Labels:          []int{0, 1},
		DataPoints:      [][]float64{{-14, 9}, {26, 6}},
	}
}

func TestDaoRunLifecycle(t *testing.T) {
	dao := testDao(t)

	record := testMetricsRecord(90)
	id, err := dao.SaveRun(record)
	assert.NoError(t, err)
	assert.NotZero(t, id)

	loaded, err := dao.QueryRunById(id)
	assert.NoError(t, err)
	assert.Equal(t, core.AlgorithmName, loaded.Algorithm)
	assert.Equal(t, record.NumClusters, loaded.NumClusters)
	assert.Equal(t, record.NumSamples, loaded.NumSamples)
	assert.Equal(t, record.Inertia, loaded.Inertia)
	assert.Equal(t, record.ClusterCenters, loaded.ClusterCenters)
	assert.Equal(t, record.ClusterSizes, loaded.ClusterSizes)
	assert.NotNil(t, loaded.SilhouetteScore)
	assert.Equal(t, 0.72, *loaded.SilhouetteScore)

	/* 无法计算的分数保持为空 */
	assert.Nil(t, loaded.DaviesBouldinScore)

	/* 标签与数据点不入库 */
	assert.Empty(t, loaded.Labels)
	assert.Empty(t, loaded.DataPoints)

	/* 最新运行为最后保存的记录 */
	_, err = dao.SaveRun(testMetricsRecord(999))
	assert.NoError(t, err)
	latest, err := dao.QueryLatestRun()
	assert.NoError(t, err)
	assert.Equal(t, 999, latest.NumSamples)

	all, err := dao.QueryAllRuns()
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 2)

	/* 删除过期记录后查询不到任何运行 */
	err = dao.RemoveRunsBefore(time.Now().Add(time.Minute))
	assert.NoError(t, err)
	_, err = dao.QueryLatestRun()
	assert.Equal(t, ErrRunNotFound, err)
}

func TestDaoQueryMissingRun(t *testing.T) {
	dao := testDao(t)

	_, err := dao.QueryRunById(999999999)
	assert.Equal(t, ErrRunNotFound, err)
}
