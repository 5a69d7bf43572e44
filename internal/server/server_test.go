package server

import (
	"github.com/packagewjx/temperature-clusterer/internal/cluster"
	"github.com/packagewjx/temperature-clusterer/internal/render"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestNewServer(t *testing.T) {
	config := ServerConfig{
		Port:              2000,
		ReClusterInterval: time.Hour,
		DataFile:          "input_data.csv",
		Clustering: cluster.KMeansConfig{
			NumClass:    cluster.DefaultNumClass,
			MaxRound:    cluster.DefaultMaxRound,
			NumInit:     cluster.DefaultNumInit,
			RandomState: cluster.DefaultRandomState,
		},
	}
	_, err := NewServer(&config)
	assert.NoError(t, err)
	assert.Equal(t, render.DefaultColormap, config.Colormap)

	configCopy := config
	configCopy.Port = 0
	_, err = NewServer(&configCopy)
	assert.Error(t, err)

	configCopy = config
	configCopy.ReClusterInterval = time.Second
	_, err = NewServer(&configCopy)
	assert.Error(t, err)

	configCopy = config
	configCopy.DataFile = ""
	_, err = NewServer(&configCopy)
	assert.Error(t, err)

	configCopy = config
	configCopy.Clustering.NumClass = 0
	_, err = NewServer(&configCopy)
	assert.Error(t, err)

	configCopy = config
	configCopy.Colormap = "rainbow"
	_, err = NewServer(&configCopy)
	assert.Error(t, err)
}
