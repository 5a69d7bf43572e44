package report

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSummary(t *testing.T) {
	record := testRecord()
	text := Summary(record)

	assert.Contains(t, text, "CLUSTERING METRICS SUMMARY")
	assert.Contains(t, text, "Algorithm: K-Means")
	assert.Contains(t, text, "Number of Clusters: 2")
	assert.Contains(t, text, "Total Samples: 4")
	assert.Contains(t, text, "Silhouette Score: 0.8020")
	assert.Contains(t, text, "Davies-Bouldin Score: 0.2000")
	assert.Contains(t, text, "Calinski-Harabasz: 50.00")
	assert.Contains(t, text, "Inertia: 4.00")
	assert.Contains(t, text, "Cluster 0: 2 samples")
	assert.Contains(t, text, "Center: (0.0°C, 1.0)")
	assert.Contains(t, text, "Center: (10.0°C, 1.0)")
}

func TestSummaryUndefinedScores(t *testing.T) {
	record := testRecord()
	record.SilhouetteScore = nil
	record.DaviesBouldinScore = nil
	record.CalinskiHarabaszScore = nil
	text := Summary(record)

	assert.Contains(t, text, "Silhouette Score: undefined")
	assert.Contains(t, text, "Davies-Bouldin Score: undefined")
	assert.Contains(t, text, "Calinski-Harabasz: undefined")
}
