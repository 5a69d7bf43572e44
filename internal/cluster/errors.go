package cluster

import "fmt"

// 配置或输入非法：K、迭代轮次、重启次数不合法，或观测维度不一致
var ErrInvalidConfiguration = fmt.Errorf("聚类配置无效")

var ErrEmptyInput = fmt.Errorf("输入数据集为空")

// 聚类结果退化，所请求的评估指标在数学上无定义
var ErrDegenerateClustering = fmt.Errorf("聚类结果退化，指标无定义")
