package server

import (
	"context"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/internal/dataset"
	"github.com/packagewjx/temperature-clusterer/internal/preprocess"
	"github.com/packagewjx/temperature-clusterer/internal/report"
	"github.com/pkg/errors"
	"os"
	"time"
)

func (s *serverImpl) reClusterer(ctx context.Context) {
	s.logger.Println("再聚类线程启动")

	// 启动时立即执行一次，保证查询接口尽快有数据
	err := s.reCluster()
	if err != nil {
		panic(errors.Wrap(err, "启动聚类出错"))
	}

	for {
		next := time.Now().Add(s.config.ReClusterInterval)
		s.logger.Printf("下一次聚类将于%s执行\n", next.Format("2006-01-02T15:04:05-0700"))
		select {
		case <-ctx.Done():
			s.logger.Println("再聚类线程退出")
			return
		case <-time.After(s.config.ReClusterInterval):
			err := s.reCluster()
			if err != nil {
				panic(errors.Wrap(err, "再聚类出错"))
			}
		case <-s.executeReCluster:
			err := s.reCluster()
			if err != nil {
				panic(errors.Wrap(err, "再聚类出错"))
			}
		}
	}
}

func (s *serverImpl) reCluster() error {
	s.logger.Println("再聚类开始")

	s.logger.Printf("正在读取观测数据文件%s\n", s.config.DataFile)
	f, err := os.Open(s.config.DataFile)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("打开观测数据文件%s失败", s.config.DataFile))
	}
	observations, err := dataset.ReadAll(dataset.NewCsvObservationSource(f))
	_ = f.Close()
	if err != nil {
		return errors.Wrap(err, "读取观测数据出错")
	}
	if len(observations) == 0 {
		return fmt.Errorf("观测数据文件%s没有任何数据", s.config.DataFile)
	}

	data := dataset.Matrix(observations)
	if s.config.Normalize {
		preprocess.Default().Preprocess(data)
	}

	s.logger.Println("开始执行聚类")
	alg := cluster.GetAlgorithm(cluster.KMeans, &s.config.Clustering)
	result, err := alg.Run(data)
	if err != nil {
		return errors.Wrap(err, "聚类执行出错")
	}
	s.logger.Printf("聚类执行完成，迭代%d轮，惯性为%f\n", result.Rounds, result.Inertia)

	quality, err := cluster.Evaluate(data, result)
	if err != nil {
		return errors.Wrap(err, "评估聚类质量出错")
	}

	record := report.Build(&s.config.Clustering, data, result, quality)

	s.recordMu.Lock()
	s.record = record
	s.recordMu.Unlock()

	if s.dao != nil {
		s.logger.Println("正在归档运行记录")
		id, err := s.dao.SaveRun(record)
		if err != nil {
			return errors.Wrap(err, "归档运行记录出错")
		}
		s.logger.Printf("已归档运行记录%d\n", id)
	}

	s.logger.Println("再聚类结束")
	return nil
}
