package server

import (
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/packagewjx/temperature-clusterer/pkg/server"
)

func (s *serverImpl) QueryLatestMetrics() (*core.MetricsRecord, error) {
	s.recordMu.RLock()
	defer s.recordMu.RUnlock()

	if s.record == nil {
		return nil, server.ErrNoReport
	}

	return s.record, nil
}

func (s *serverImpl) ReCluster() error {
	s.executeReCluster <- struct{}{}
	return nil
}
