package noaa

import (
	"encoding/csv"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"strconv"
)

// DailyValue NOAA应答中的单站单日观测值
type DailyValue struct {
	Station  string
	Date     string
	DataType string
	Value    float64
}

// ParseDaily 解析NOAA的CSV应答，列依次为站点、日期、观测项、数值。缺测记录跳过
func ParseDaily(reader io.Reader) ([]*DailyValue, error) {
	csvReader := csv.NewReader(reader)
	result := make([]*DailyValue, 0, 64)
	line := 0
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "读取NOAA应答出错")
		}
		line++

		if len(record) < 4 {
			return nil, fmt.Errorf("第%d行只有%d列，至少需要4列", line, len(record))
		}
		if line == 1 && record[0] == "STATION" {
			continue
		}
		if record[3] == "" {
			continue
		}

		value, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("第%d行数值有误，数据为[%s]", line, record[3]))
		}

		result = append(result, &DailyValue{
			Station:  record[0],
			Date:     record[1],
			DataType: record[2],
			Value:    value,
		})
	}

	return result, nil
}
