package report

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"strings"
)

// Summary 生成结果记录的文本摘要，包含评估分数与各类的分布情况
func Summary(record *core.MetricsRecord) string {
	builder := &strings.Builder{}

	_, _ = fmt.Fprintf(builder, "CLUSTERING METRICS SUMMARY\n%s\n\n", strings.Repeat("=", 40))
	_, _ = fmt.Fprintf(builder, "Algorithm: %s\n", record.Algorithm)
	_, _ = fmt.Fprintf(builder, "Number of Clusters: %d\n", record.NumClusters)
	_, _ = fmt.Fprintf(builder, "Total Samples: %d\n\n", record.NumSamples)

	_, _ = fmt.Fprintf(builder, "QUALITY METRICS:\n%s\n", strings.Repeat("-", 40))
	if record.SilhouetteScore != nil {
		_, _ = fmt.Fprintf(builder, "Silhouette Score: %.4f (higher is better, range: -1 to 1)\n", *record.SilhouetteScore)
	} else {
		_, _ = fmt.Fprintf(builder, "Silhouette Score: undefined\n")
	}
	if record.DaviesBouldinScore != nil {
		_, _ = fmt.Fprintf(builder, "Davies-Bouldin Score: %.4f (lower is better)\n", *record.DaviesBouldinScore)
	} else {
		_, _ = fmt.Fprintf(builder, "Davies-Bouldin Score: undefined\n")
	}
	if record.CalinskiHarabaszScore != nil {
		_, _ = fmt.Fprintf(builder, "Calinski-Harabasz: %.2f (higher is better)\n", *record.CalinskiHarabaszScore)
	} else {
		_, _ = fmt.Fprintf(builder, "Calinski-Harabasz: undefined\n")
	}
	_, _ = fmt.Fprintf(builder, "Inertia: %.2f\n\n", record.Inertia)

	_, _ = fmt.Fprintf(builder, "CLUSTER DISTRIBUTION:\n%s\n", strings.Repeat("-", 40))
	for i, size := range record.ClusterSizes {
		_, _ = fmt.Fprintf(builder, "Cluster %d: %d samples\n", i, size)
		if i < len(record.ClusterCenters) && len(record.ClusterCenters[i]) >= core.NumFeatures {
			_, _ = fmt.Fprintf(builder, "  Center: (%.1f°C, %.1f)\n",
				record.ClusterCenters[i][0], record.ClusterCenters[i][1])
		}
	}

	return builder.String()
}
