package noaa

import (
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestParseDaily(t *testing.T) {
	data := "STATION,DATE,DATATYPE,VALUE\n" +
		"\"USW00094728\",\"2024-01-01\",\"TAVG\",\"5.6\"\n" +
		"USW00094728,2024-01-02,TAVG,-2.5\n" +
		"USW00094728,2024-01-03,TAVG,\n" +
		"USW00023174,2024-01-01,TAVG,12.8\n"
	values, err := ParseDaily(strings.NewReader(data))
	assert.NoError(t, err)

	/* 缺测记录被跳过 */
	assert.Len(t, values, 3)

	assert.Equal(t, "USW00094728", values[0].Station)
	assert.Equal(t, "2024-01-01", values[0].Date)
	assert.Equal(t, "TAVG", values[0].DataType)
	assert.Equal(t, 5.6, values[0].Value)
	assert.Equal(t, -2.5, values[1].Value)
	assert.Equal(t, "USW00023174", values[2].Station)

	/* 不带表头的数据 */
	values, err = ParseDaily(strings.NewReader("USW00094728,2024-01-01,TAVG,5.6\n"))
	assert.NoError(t, err)
	assert.Len(t, values, 1)

	/* 数值有误的数据 */
	_, err = ParseDaily(strings.NewReader("USW00094728,2024-01-01,TAVG,bad\n"))
	assert.Error(t, err)

	/* 列数不足的数据 */
	_, err = ParseDaily(strings.NewReader("USW00094728,2024-01-01\n"))
	assert.Error(t, err)

	/* 空数据 */
	values, err = ParseDaily(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, values)
}
