package archive

import (
	"fmt"
	"github.com/packagewjx/temperature-clusterer/pkg/core"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"log"
	"os"
	"time"
)

var ErrRunNotFound = fmt.Errorf("没有运行记录")

type UpdateDao interface {
	// SaveRun 保存一次运行的指标与各类中心，返回运行记录ID。标签与原始数据点不入库
	SaveRun(record *core.MetricsRecord) (uint, error)

	// RemoveRunsBefore 永久删除指定时间之前创建的运行记录
	RemoveRunsBefore(before time.Time) error
}

type QueryDao interface {
	QueryRunById(id uint) (*core.MetricsRecord, error)
	QueryLatestRun() (*core.MetricsRecord, error)
	QueryAllRuns() ([]*core.MetricsRecord, error)
}

type Dao interface {
	DB() *gorm.DB
	UpdateDao
	QueryDao
}

type daoImpl struct {
	db     *gorm.DB
	logger *log.Logger
}

var _ Dao = &daoImpl{}

func NewDao(host string) (Dao, error) {
	if host == "" {
		host = fmt.Sprintf("%s:%s",
			os.Getenv("MYSQL_SERVICE_HOST"), os.Getenv("MYSQL_SERVICE_PORT"))
	}

	databaseURL := fmt.Sprintf("root:root@tcp(%s)/climate?charset=utf8mb4&parseTime=True&loc=Local", host)
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "", 0), logger.Config{
			LogLevel: logger.Silent,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "连接数据库错误")
	}

	err = db.AutoMigrate(&RunDO{}, &ClusterDO{})
	if err != nil {
		return nil, errors.Wrap(err, "创建表格时出现异常")
	}

	return &daoImpl{
		db:     db,
		logger: log.New(os.Stdout, "archive: ", log.LstdFlags|log.Lshortfile|log.Lmsgprefix),
	}, nil
}

func (d *daoImpl) SaveRun(record *core.MetricsRecord) (uint, error) {
	runDo := &RunDO{
		Algorithm:        record.Algorithm,
		NumClass:         record.NumClusters,
		NumSamples:       record.NumSamples,
		NumFeatures:      record.NumFeatures,
		RandomState:      record.RandomState,
		Inertia:          record.Inertia,
		Silhouette:       record.SilhouetteScore,
		DaviesBouldin:    record.DaviesBouldinScore,
		CalinskiHarabasz: record.CalinskiHarabaszScore,
	}
	err := d.db.Create(runDo).Error
	if err != nil {
		return 0, errors.Wrap(err, "保存运行记录出错")
	}

	clusterDos := make([]*ClusterDO, 0, len(record.ClusterCenters))
	for i, center := range record.ClusterCenters {
		if len(center) < core.NumFeatures {
			continue
		}
		size := 0
		if i < len(record.ClusterSizes) {
			size = record.ClusterSizes[i]
		}
		clusterDos = append(clusterDos, &ClusterDO{
			RunId:        runDo.ID,
			ClassId:      i,
			AvgTemp:      center[0],
			TempVariance: center[1],
			Size:         size,
		})
	}
	if len(clusterDos) > 0 {
		err = d.db.Create(clusterDos).Error
		if err != nil {
			return 0, errors.Wrap(err, fmt.Sprintf("保存运行%d的类别记录出错", runDo.ID))
		}
	}

	d.logger.Printf("已保存运行记录%d，共%d个类别\n", runDo.ID, len(clusterDos))

	return runDo.ID, nil
}

func (d *daoImpl) RemoveRunsBefore(before time.Time) error {
	runDos := make([]*RunDO, 0)
	err := d.db.Where("created_at < ?", before).Find(&runDos).Error
	if err != nil {
		return errors.Wrap(err, "查询过期运行记录出错")
	}
	if len(runDos) == 0 {
		return nil
	}

	runIds := make([]uint, 0, len(runDos))
	for _, runDo := range runDos {
		runIds = append(runIds, runDo.ID)
	}

	err = d.db.Unscoped().Where("run_id IN ?", runIds).Delete(&ClusterDO{}).Error
	if err != nil {
		return errors.Wrap(err, "删除过期类别记录出错")
	}

	return d.db.Unscoped().Where("created_at < ?", before).Delete(&RunDO{}).Error
}

func (d *daoImpl) QueryRunById(id uint) (*core.MetricsRecord, error) {
	runDo := &RunDO{}
	err := d.db.First(runDo, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRunNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("查询运行%d出错", id))
	}

	return d.buildRecord(runDo)
}

func (d *daoImpl) QueryLatestRun() (*core.MetricsRecord, error) {
	runDo := &RunDO{}
	err := d.db.Last(runDo).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrRunNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "查询最新运行出错")
	}

	return d.buildRecord(runDo)
}

func (d *daoImpl) QueryAllRuns() ([]*core.MetricsRecord, error) {
	runDos := make([]*RunDO, 0)
	err := d.db.Order("id ASC").Find(&runDos).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询运行记录出错")
	}

	result := make([]*core.MetricsRecord, 0, len(runDos))
	for _, runDo := range runDos {
		record, err := d.buildRecord(runDo)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}

// buildRecord 将运行记录与类别记录组装回结果记录。标签与数据点不入库，对应字段为空
func (d *daoImpl) buildRecord(runDo *RunDO) (*core.MetricsRecord, error) {
	clusterDos := make([]*ClusterDO, 0)
	err := d.db.Order("class_id ASC").Find(&clusterDos, &ClusterDO{RunId: runDo.ID}).Error
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("查询运行%d的类别记录出错", runDo.ID))
	}

	record := &core.MetricsRecord{
		Algorithm:             runDo.Algorithm,
		NumClusters:           runDo.NumClass,
		NumSamples:            runDo.NumSamples,
		NumFeatures:           runDo.NumFeatures,
		RandomState:           runDo.RandomState,
		Inertia:               runDo.Inertia,
		SilhouetteScore:       runDo.Silhouette,
		DaviesBouldinScore:    runDo.DaviesBouldin,
		CalinskiHarabaszScore: runDo.CalinskiHarabasz,
		ClusterCenters:        make([][]float64, 0, len(clusterDos)),
		ClusterSizes:          make([]int, 0, len(clusterDos)),
	}
	for _, clusterDo := range clusterDos {
		record.ClusterCenters = append(record.ClusterCenters, []float64{clusterDo.AvgTemp, clusterDo.TempVariance})
		record.ClusterSizes = append(record.ClusterSizes, clusterDo.Size)
	}

	return record, nil
}

func (d *daoImpl) DB() *gorm.DB {
	return d.db
}
