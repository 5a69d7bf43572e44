package dataset

import (
	"encoding/csv"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"io"
	"strconv"
)

// WriteObservations 将观测写为CSV格式，首行为表头
func WriteObservations(writer io.Writer, observations []*core.StationObservation) error {
	csvWriter := csv.NewWriter(writer)
	defer csvWriter.Flush()

	err := csvWriter.Write(core.ObservationHeader)
	if err != nil {
		return errors.Wrap(err, "写入表头出错")
	}

	for i, observation := range observations {
		record := []string{
			observation.StationId,
			strconv.FormatFloat(observation.AvgTemp, 'f', -1, 64),
			strconv.FormatFloat(observation.TempVariance, 'f', -1, 64),
		}
		err = csvWriter.Write(record)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("写入第%d条数据出错", i+1))
		}
	}

	return nil
}
