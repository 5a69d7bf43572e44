package noaa

import (
	"context"
	"fmt"
	"github.com/pkg/errors"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// NOAA NCEI数据服务地址。需要先在 https://www.ncdc.noaa.gov/cdo-web/token 申请访问令牌
const DefaultBaseUrl = "https://www.ncei.noaa.gov/access/services/data/v1"

const DefaultDataset = "daily-summaries"

var DefaultDataTypes = []string{"TAVG"}

type FetchConfig struct {
	BaseUrl   string   // 为空时使用DefaultBaseUrl
	Token     string   // 访问令牌，放入token请求头。部分数据集允许匿名访问
	Dataset   string   // 为空时使用DefaultDataset
	Stations  []string // 站点编号列表，不能为空
	DataTypes []string // 观测项列表，为空时使用DefaultDataTypes
	StartDate string   // 起始日期，格式为2006-01-02
	EndDate   string   // 结束日期，格式同上
}

func (c *FetchConfig) Complete() error {
	if c.BaseUrl == "" {
		c.BaseUrl = DefaultBaseUrl
	}
	if c.Dataset == "" {
		c.Dataset = DefaultDataset
	}
	if len(c.DataTypes) == 0 {
		c.DataTypes = DefaultDataTypes
	}

	if len(c.Stations) == 0 {
		return fmt.Errorf("站点列表不能为空")
	}
	if c.StartDate == "" || c.EndDate == "" {
		return fmt.Errorf("起止日期不能为空，现在为[%s,%s]", c.StartDate, c.EndDate)
	}

	return nil
}

// Fetch 从NOAA下载CSV格式的逐日观测数据。调用方负责关闭返回的Body
func Fetch(ctx context.Context, config *FetchConfig) (io.ReadCloser, error) {
	if err := config.Complete(); err != nil {
		return nil, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseUrl, nil)
	if err != nil {
		return nil, errors.Wrap(err, "构造NOAA请求出错")
	}

	query := url.Values{}
	query.Set("dataset", config.Dataset)
	query.Set("stations", strings.Join(config.Stations, ","))
	query.Set("startDate", config.StartDate)
	query.Set("endDate", config.EndDate)
	query.Set("dataTypes", strings.Join(config.DataTypes, ","))
	query.Set("format", "csv")
	request.URL.RawQuery = query.Encode()

	if config.Token != "" {
		request.Header.Set("token", config.Token)
	}

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "请求NOAA数据出现异常")
	}
	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()
		return nil, fmt.Errorf("NOAA返回状态码%d", response.StatusCode)
	}

	return response.Body, nil
}
