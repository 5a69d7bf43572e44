package noaa

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAggregate(t *testing.T) {
	values := []*DailyValue{
		{Station: "B", Date: "2024-01-01", DataType: "TAVG", Value: 10},
		{Station: "A", Date: "2024-01-01", DataType: "TAVG", Value: 1},
		{Station: "B", Date: "2024-01-02", DataType: "TAVG", Value: 14},
		{Station: "A", Date: "2024-01-02", DataType: "TAVG", Value: 3},
		{Station: "B", Date: "2024-01-03", DataType: "TAVG", Value: 18},
	}
	observations := Aggregate(values)
	assert.Len(t, observations, 2)

	/* 站点按编号排序 */
	assert.Equal(t, "A", observations[0].StationId)
	assert.Equal(t, "B", observations[1].StationId)

	/* A站均值2，总体方差1 */
	assert.InDelta(t, 2.0, observations[0].AvgTemp, 1e-9)
	assert.InDelta(t, 1.0, observations[0].TempVariance, 1e-9)

	/* B站均值14，总体方差32/3 */
	assert.InDelta(t, 14.0, observations[1].AvgTemp, 1e-9)
	assert.InDelta(t, 32.0/3.0, observations[1].TempVariance, 1e-9)
}

func TestAggregateSingleDay(t *testing.T) {
	observations := Aggregate([]*DailyValue{{Station: "C", Date: "2024-01-01", DataType: "TAVG", Value: 7}})
	assert.Len(t, observations, 1)
	assert.Equal(t, 7.0, observations[0].AvgTemp)
	assert.Equal(t, 0.0, observations[0].TempVariance)

	assert.Empty(t, Aggregate(nil))
}
