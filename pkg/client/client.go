package client

import (
	"encoding/json"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/packagewjx/temperature-clusterer/pkg/server"
	"github.com/pkg/errors"
	"io/ioutil"
	"net/http"
)

const DefaultApiHostBaseUrl = "http://temperature-clusterer.temperature-clusterer"

// NewApiClient 创建访问聚类服务器的客户端。baseUrl为空时使用集群内默认地址
func NewApiClient(baseUrl string) server.API {
	if baseUrl == "" {
		baseUrl = DefaultApiHostBaseUrl
	}
	return &apiClient{baseUrl: baseUrl}
}

var _ server.API = &apiClient{}

type apiClient struct {
	baseUrl string
}

func (a *apiClient) QueryLatestMetrics() (*core.MetricsRecord, error) {
	response, err := http.Get(a.baseUrl + "/metrics/latest")
	if err != nil {
		return nil, errors.Wrap(err, "请求时出现异常")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode == http.StatusNotFound {
		return nil, server.ErrNoReport
	}

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "读取时出现异常")
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("服务器返回状态码%d，应答为%s", response.StatusCode, string(body))
	}

	dest := &core.MetricsRecord{}
	err = json.Unmarshal(body, dest)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("解析json异常，json为\n%s", string(body)))
	}

	return dest, nil
}

func (a *apiClient) ReCluster() error {
	response, err := http.Get(a.baseUrl + "/recluster")
	if err != nil {
		return errors.Wrap(err, "请求时出现异常")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("服务器返回状态码%d", response.StatusCode)
	}

	return nil
}
