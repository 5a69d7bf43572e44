package cluster

import (
	"fmt"
	"github.com/pkg/errors"
	"math/rand"
	"sync"
)

// 聚类算法接口。data的每一行为一个观测向量，各行维度必须一致，
// 返回结果的标签顺序与输入观测顺序对齐
type Algorithm interface {
	Run(data [][]float64) (*RunResult, error)
}

type AlgorithmType string

const (
	KMeans = AlgorithmType("kmeans")
)

const (
	DefaultNumClass    = 4
	DefaultMaxRound    = 300
	DefaultNumInit     = 10
	DefaultRandomState = 42
)

// KMeansConfig K-Means算法参数
type KMeansConfig struct {
	NumClass    int   // 聚类类别数量
	MaxRound    int   // 单次运行的最大迭代轮次
	NumInit     int   // 独立重启次数，最终取惯性最小的一次结果
	RandomState int64 // 随机种子。第r次重启使用RandomState+r作为种子
}

func (config *KMeansConfig) Complete() error {
	if config.NumClass < 1 {
		return errors.Wrap(ErrInvalidConfiguration, fmt.Sprintf("类别数量应该至少为1，现在为%d", config.NumClass))
	}
	if config.MaxRound < 1 {
		return errors.Wrap(ErrInvalidConfiguration, fmt.Sprintf("迭代轮次应该至少为1，现在为%d", config.MaxRound))
	}
	if config.NumInit < 1 {
		return errors.Wrap(ErrInvalidConfiguration, fmt.Sprintf("重启次数应该至少为1，现在为%d", config.NumInit))
	}
	return nil
}

func GetAlgorithm(algorithmType AlgorithmType, config *KMeansConfig) Algorithm {
	switch algorithmType {
	case KMeans:
		return NewKMeans(config)
	default:
		return nil
	}
}

func NewKMeans(config *KMeansConfig) Algorithm {
	return &kMeansRunner{config: config}
}

// RunResult 一次聚类运行的最终快照，产出后不再修改
type RunResult struct {
	Centers [][]float64 // 各类中心，维度与观测一致
	Labels  []int       // 每个观测所属的类别下标
	Inertia float64     // 各观测到所属中心的距离平方和
	Rounds  int         // 收敛时实际执行的迭代轮次
	Restart int         // 本结果来自第几次重启
}

type kMeansRunner struct {
	config *KMeansConfig
}

var _ Algorithm = &kMeansRunner{}

func (k *kMeansRunner) Run(data [][]float64) (*RunResult, error) {
	if err := k.config.Complete(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	dim := len(data[0])
	if dim == 0 {
		return nil, errors.Wrap(ErrInvalidConfiguration, "观测向量维度不能为0")
	}
	for i, datum := range data {
		if len(datum) != dim {
			return nil, errors.Wrap(ErrInvalidConfiguration,
				fmt.Sprintf("第%d个观测的维度为%d，与首个观测的维度%d不一致", i, len(datum), dim))
		}
	}
	if k.config.NumClass > len(data) {
		return nil, errors.Wrap(ErrInvalidConfiguration,
			fmt.Sprintf("类别数量%d超过观测数量%d", k.config.NumClass, len(data)))
	}

	// 各次重启相互独立，并行执行后顺序扫描取最小惯性，结果与执行顺序无关
	results := make([]*RunResult, k.config.NumInit)
	wg := sync.WaitGroup{}
	for r := 0; r < k.config.NumInit; r++ {
		wg.Add(1)
		go func(restart int) {
			defer wg.Done()
			results[restart] = k.singleRun(data, restart)
		}(r)
	}
	wg.Wait()

	best := results[0]
	for _, result := range results[1:] {
		if result.Inertia < best.Inertia {
			best = result
		}
	}

	return best, nil
}

// 执行一次完整的K-Means优化。种子由全局种子与重启序号唯一确定
func (k *kMeansRunner) singleRun(data [][]float64, restart int) *RunResult {
	rng := rand.New(rand.NewSource(k.config.RandomState + int64(restart)))
	centers := initialCenters(data, k.config.NumClass, rng)

	labels := make([]int, len(data))
	for i := range labels {
		labels[i] = -1
	}

	rounds := 0
	for rounds < k.config.MaxRound {
		rounds++

		changed := false
		for i, datum := range data {
			nearest := nearestCenter(datum, centers)
			if nearest != labels[i] {
				labels[i] = nearest
				changed = true
			}
		}

		updateCenters(data, labels, centers)

		if !changed {
			break
		}
	}

	inertia := float64(0)
	for i, datum := range data {
		inertia += squaredDistance(datum, centers[labels[i]])
	}

	return &RunResult{
		Centers: centers,
		Labels:  labels,
		Inertia: inertia,
		Rounds:  rounds,
		Restart: restart,
	}
}

// 随机抽取numClass个互不相同的观测的副本作为初始中心
func initialCenters(data [][]float64, numClass int, rng *rand.Rand) [][]float64 {
	chosen := make(map[int]struct{}, numClass)
	centers := make([][]float64, 0, numClass)
	for len(centers) < numClass {
		idx := rng.Intn(len(data))
		if _, ok := chosen[idx]; ok {
			continue
		}
		chosen[idx] = struct{}{}

		center := make([]float64, len(data[idx]))
		copy(center, data[idx])
		centers = append(centers, center)
	}
	return centers
}

// 寻找距离平方最小的中心，距离相等时取下标最小的
func nearestCenter(datum []float64, centers [][]float64) int {
	nearest := 0
	minDistance := squaredDistance(datum, centers[0])
	for c := 1; c < len(centers); c++ {
		if d := squaredDistance(datum, centers[c]); d < minDistance {
			minDistance = d
			nearest = c
		}
	}
	return nearest
}

// 将每个中心更新为其成员观测的算术平均。空类保留上一轮的中心
func updateCenters(data [][]float64, labels []int, centers [][]float64) {
	dim := len(data[0])
	sums := make([][]float64, len(centers))
	counts := make([]int, len(centers))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}

	for i, datum := range data {
		c := labels[i]
		counts[c]++
		for j, v := range datum {
			sums[c][j] += v
		}
	}

	for c, count := range counts {
		if count == 0 {
			continue
		}
		for j := range centers[c] {
			centers[c][j] = sums[c][j] / float64(count)
		}
	}
}

func squaredDistance(a, b []float64) float64 {
	sum := float64(0)
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
