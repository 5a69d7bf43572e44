package archive

import (
	"gorm.io/gorm"
)

// RunDO 一次聚类运行的指标记录
type RunDO struct {
	gorm.Model
	Algorithm        string
	NumClass         int
	NumSamples       int
	NumFeatures      int
	RandomState      int64
	Inertia          float64
	Silhouette       *float64
	DaviesBouldin    *float64
	CalinskiHarabasz *float64
}

// ClusterDO 一次运行中单个类别的中心与大小
type ClusterDO struct {
	gorm.Model
	RunId        uint `gorm:"index"`
	ClassId      int
	AvgTemp      float64
	TempVariance float64
	Size         int
}
