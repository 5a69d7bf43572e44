package client

import (
	"encoding/json"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/packagewjx/temperature-clusterer/pkg/server"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryLatestMetrics(t *testing.T) {
	silhouette := 0.8
	record := &core.MetricsRecord{
		Algorithm:       core.AlgorithmName,
		NumClusters:     4,
		NumSamples:      120,
		NumFeatures:     core.NumFeatures,
		RandomState:     42,
		Inertia:         3.5,
		SilhouetteScore: &silhouette,
		ClusterCenters:  [][]float64{{-14, 9}, {16, 13}, {27, 8}, {29, 5}},
		ClusterSizes:    []int{30, 30, 30, 30},
	}

	reClustered := false
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/metrics/latest":
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(record)
		case "/recluster":
			reClustered = true
			_, _ = writer.Write([]byte("OK"))
		default:
			http.NotFound(writer, request)
		}
	}))
	defer ts.Close()

	c := NewApiClient(ts.URL)

	got, err := c.QueryLatestMetrics()
	assert.NoError(t, err)
	assert.Equal(t, record.Algorithm, got.Algorithm)
	assert.Equal(t, record.NumClusters, got.NumClusters)
	assert.Equal(t, record.ClusterCenters, got.ClusterCenters)
	assert.NotNil(t, got.SilhouetteScore)
	assert.Equal(t, silhouette, *got.SilhouetteScore)

	err = c.ReCluster()
	assert.NoError(t, err)
	assert.True(t, reClustered)
}

func TestQueryLatestMetricsNoReport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.NotFound(writer, request)
	}))
	defer ts.Close()

	c := NewApiClient(ts.URL)

	_, err := c.QueryLatestMetrics()
	assert.Equal(t, server.ErrNoReport, err)

	/* recluster接口404时返回错误 */
	err = c.ReCluster()
	assert.Error(t, err)
}

func TestQueryLatestMetricsBadJson(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte("not json"))
	}))
	defer ts.Close()

	c := NewApiClient(ts.URL)

	_, err := c.QueryLatestMetrics()
	assert.Error(t, err)
}
