package dataset

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
)

// DefaultSamplesPerRegion 每个气候区域默认生成的观测数
const DefaultSamplesPerRegion = 30

type region struct {
	baseTemp     float64
	tempPeriod   int
	baseVariance float64
	varPeriod    int
}

// 四个气候区域的合成参数。同一区域内的数据围绕基准值周期波动
var regions = []region{
	{baseTemp: -15, tempPeriod: 5, baseVariance: 8, varPeriod: 3},  // 极地
	{baseTemp: 15, tempPeriod: 8, baseVariance: 12, varPeriod: 4},  // 温带
	{baseTemp: 25, tempPeriod: 6, baseVariance: 7, varPeriod: 3},   // 亚热带
	{baseTemp: 28, tempPeriod: 4, baseVariance: 5, varPeriod: 2},   // 热带
}

// Generate 生成合成观测数据，区域编号作为StationId。samplesPerRegion非正数时使用默认值
func Generate(samplesPerRegion int) []*core.StationObservation {
	if samplesPerRegion <= 0 {
		samplesPerRegion = DefaultSamplesPerRegion
	}

	result := make([]*core.StationObservation, 0, samplesPerRegion*len(regions))
	for regionId, r := range regions {
		for i := 0; i < samplesPerRegion; i++ {
			result = append(result, &core.StationObservation{
				StationId:    fmt.Sprintf("%d", regionId),
				AvgTemp:      r.baseTemp + float64(i%r.tempPeriod),
				TempVariance: r.baseVariance + float64(i%r.varPeriod),
			})
		}
	}
	return result
}
