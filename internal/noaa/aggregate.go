package noaa

import (
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"gonum.org/v1/gonum/stat"
	"sort"
)

// Aggregate 按站点汇总逐日观测，得到平均气温与气温总体方差。结果按站点编号排序
func Aggregate(values []*DailyValue) []*core.StationObservation {
	grouped := make(map[string][]float64)
	for _, value := range values {
		grouped[value.Station] = append(grouped[value.Station], value.Value)
	}

	stations := make([]string, 0, len(grouped))
	for station := range grouped {
		stations = append(stations, station)
	}
	sort.Strings(stations)

	result := make([]*core.StationObservation, 0, len(stations))
	for _, station := range stations {
		mean, variance := stat.PopMeanVariance(grouped[station], nil)
		result = append(result, &core.StationObservation{
			StationId:    station,
			AvgTemp:      mean,
			TempVariance: variance,
		})
	}

	return result
}
