package server

import (
	"context"
	"encoding/json"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/stretchr/testify/assert"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHttpEndpoints(t *testing.T) {
	s := testServer(t, writeTestData(t))

	ts := httptest.NewServer(s.buildServer().Handler)
	defer ts.Close()

	/* 尚未聚类时查询接口返回404 */
	response, err := http.Get(ts.URL + "/metrics/latest")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)

	err = s.reCluster()
	assert.NoError(t, err)

	response, err = http.Get(ts.URL + "/metrics/latest")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "application/json", response.Header.Get("Content-Type"))
	body, err := ioutil.ReadAll(response.Body)
	assert.NoError(t, err)
	record := &core.MetricsRecord{}
	assert.NoError(t, json.Unmarshal(body, record))
	assert.Equal(t, core.AlgorithmName, record.Algorithm)
	assert.Equal(t, 20, record.NumSamples)

	response, err = http.Get(ts.URL + "/summary")
	assert.NoError(t, err)
	body, err = ioutil.ReadAll(response.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "CLUSTERING METRICS SUMMARY")
	assert.Contains(t, string(body), "Number of Clusters: 2")

	response, err = http.Get(ts.URL + "/chart")
	assert.NoError(t, err)
	body, err = ioutil.ReadAll(response.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "echarts")
	assert.Contains(t, string(body), "K-Means Clustering of Temperature Data")

	response, err = http.Get(ts.URL + "/healthz")
	assert.NoError(t, err)
	body, err = ioutil.ReadAll(response.Body)
	assert.NoError(t, err)
	assert.Equal(t, "OK", string(body))
}

func TestReClusterer(t *testing.T) {
	s := testServer(t, writeTestData(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.reClusterer(ctx)

	/* 等待启动时的首次聚类完成 */
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := s.QueryLatestMetrics(); err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	record, err := s.QueryLatestMetrics()
	assert.NoError(t, err)
	assert.Equal(t, 20, record.NumSamples)

	/* 手动触发再聚类 */
	ts := httptest.NewServer(s.buildServer().Handler)
	defer ts.Close()
	response, err := http.Get(ts.URL + "/recluster")
	assert.NoError(t, err)
	body, err := ioutil.ReadAll(response.Body)
	assert.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	/* 等待触发的聚类产生新的结果记录 */
	deadline = time.Now().Add(5 * time.Second)
	updated := record
	for time.Now().Before(deadline) {
		if updated, err = s.QueryLatestMetrics(); err == nil && updated != record {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.NotSame(t, record, updated)
}
