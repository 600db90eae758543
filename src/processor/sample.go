// sample.go
package processor

import (
	"fmt"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
)

// DefaultSeed 固定随机种子
// 采样必须可复现: 同样的(N, n, seed)永远得到同一个子集,
// 否则图表在每次重绘时都会抖动
const DefaultSeed int64 = 42

// Sample 从数据集中无放回抽取n条记录
// n 超出 (0, Nrow] 范围时返回ErrInvalidSampleSize
func Sample(df dataframe.DataFrame, n int, seed int64) (dataframe.DataFrame, error) {
	total := df.Nrow()
	if n <= 0 || n > total {
		return dataframe.DataFrame{}, fmt.Errorf("%w: n=%d, 数据集共%d条", ErrInvalidSampleSize, n, total)
	}

	r := rand.New(rand.NewSource(seed))
	indices := r.Perm(total)[:n]

	sampled := df.Subset(indices)
	if sampled.Error() != nil {
		return dataframe.DataFrame{}, sampled.Error()
	}
	return sampled, nil
}

// SampleBounds 返回采样数量的允许范围和默认值
// 与仪表板滑块的取值策略一致: 上限1000条, 下限100条,
// 数据集不足时退化为全量
func SampleBounds(total int) (min, max, def int) {
	max = total
	if max > 1000 {
		max = 1000
	}
	min = 100
	if min > max-1 {
		min = max - 1
	}
	if min < 1 {
		min = 1
	}
	def = 500
	if def > max {
		def = max
	}
	return min, max, def
}
