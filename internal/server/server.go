package server

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/packagewjx/temperature-clusterer/internal/archive"
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/internal/render"
	"github.com/packagewjx/temperature-clusterer/internal/report"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/packagewjx/temperature-clusterer/pkg/server"
	"github.com/pkg/errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const (
	DefaultPort              = 2000
	DefaultReClusterInterval = time.Hour
)

const minReClusterInterval = time.Minute

type ServerConfig struct {
	Port              uint16               // 本服务器监听端口
	ReClusterInterval time.Duration        // 周期性再聚类的间隔
	DataFile          string               // 观测数据CSV文件路径，每次聚类重新读取
	Clustering        cluster.KMeansConfig // 聚类参数
	Normalize         bool                 // 聚类前是否将特征归一化到[0,1]
	MysqlHost         string               // 不为空时每次聚类结果归档到MySQL
	Colormap          string               // 图表配色方案
}

func (s ServerConfig) String() string {
	marshal, _ := json.Marshal(s)
	return string(marshal)
}

type Server interface {
	server.API

	Start() error
}

func NewServer(config *ServerConfig) (Server, error) {
	if err := config.Complete(); err != nil {
		return nil, err
	}

	s := &serverImpl{
		config:           config,
		logger:           log.New(os.Stdout, "cluster server: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
		executeReCluster: make(chan struct{}),
	}

	if config.MysqlHost != "" {
		dao, err := archive.NewDao(config.MysqlHost)
		if err != nil {
			return nil, err
		}
		s.dao = dao
	}

	return s, nil
}

type serverImpl struct {
	config           *ServerConfig
	dao              archive.Dao // 为nil时不归档
	logger           *log.Logger
	executeReCluster chan struct{}

	recordMu sync.RWMutex
	record   *core.MetricsRecord
}

func (config *ServerConfig) Complete() error {
	if config.Port < 1024 {
		return fmt.Errorf("端口号应该在1024到65535之间，现在为%d", config.Port)
	}

	if config.ReClusterInterval < minReClusterInterval {
		return fmt.Errorf("再聚类间隔不能短于%s，现在是%s", minReClusterInterval, config.ReClusterInterval)
	}

	if config.DataFile == "" {
		return fmt.Errorf("观测数据文件路径不能为空")
	}

	if err := config.Clustering.Complete(); err != nil {
		return err
	}

	if config.Colormap == "" {
		config.Colormap = render.DefaultColormap
	}
	if err := (&render.ScatterConfig{Colormap: config.Colormap}).Complete(); err != nil {
		return err
	}

	return nil
}

func (s *serverImpl) Start() error {
	rootCtx, cancel := context.WithCancel(context.Background())
	reClustererContext, _ := context.WithCancel(rootCtx)

	s.logger.Printf("服务器启动。配置：%v\n", s.config)

	go s.reClusterer(reClustererContext)

	httpServer := s.buildServer()
	errCh := make(chan error)
	go s.serve(httpServer, errCh)

	// 注册信号接收器
	termSigChan := make(chan os.Signal)
	signal.Notify(termSigChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case <-termSigChan:
		err := httpServer.Shutdown(rootCtx)
		if err != nil {
			return errors.Wrap(err, "关闭HTTP服务器失败")
		}
		cancel()
	}

	// 等待HTTP服务器结束
	err := <-errCh
	if err != nil {
		return errors.Wrap(err, "HTTP关闭出现错误")
	}

	return nil
}

func (s *serverImpl) buildServer() *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/metrics/latest", func(writer http.ResponseWriter, request *http.Request) {
		record, err := s.QueryLatestMetrics()
		if err == server.ErrNoReport {
			http.NotFound(writer, request)
			return
		} else if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}

		marshal, err := json.Marshal(record)
		if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}

		writer.Header().Set("Content-Type", "application/json")
		_, err = writer.Write(marshal)
		if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/summary", func(writer http.ResponseWriter, request *http.Request) {
		record, err := s.QueryLatestMetrics()
		if err == server.ErrNoReport {
			http.NotFound(writer, request)
			return
		} else if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}

		writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = writer.Write([]byte(report.Summary(record)))
	})

	mux.HandleFunc("/chart", func(writer http.ResponseWriter, request *http.Request) {
		record, err := s.QueryLatestMetrics()
		if err == server.ErrNoReport {
			http.NotFound(writer, request)
			return
		} else if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}

		chart, err := render.Chart(record, &render.ScatterConfig{Colormap: s.config.Colormap})
		if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
			return
		}

		err = chart.Render(writer)
		if err != nil {
			http.Error(writer, err.Error(), http.StatusInternalServerError)
		}
	})

	mux.HandleFunc("/recluster", func(writer http.ResponseWriter, request *http.Request) {
		_ = s.ReCluster()
		_, _ = writer.Write([]byte("OK"))
	})

	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: mux,
	}
	return srv
}

func (s *serverImpl) serve(server *http.Server, errCh chan<- error) {
	s.logger.Printf("API服务器启动")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		errCh <- err
	}

	s.logger.Printf("API服务器结束")
	errCh <- nil
}
