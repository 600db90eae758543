// summary.go
package processor

import (
	"sort"

	"FlightAnalytics/src/datasource/file"
	"FlightAnalytics/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"
)

// describe 的统计量行, 顺序固定
var describeStats = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// NumericCorrelation 全部数值列的相关矩阵(热力图数据)
func NumericCorrelation(sample dataframe.DataFrame) (*CorrMatrix, error) {
	return correlationMatrix(sample, presentNumericColumns(sample))
}

// Describe 每个数值列的描述性统计
// 行为统计量(count/mean/std/min/四分位/max), 列为数值变量
// 单个有效值的std按约定记为0, 与分组统计保持一致
func Describe(sample dataframe.DataFrame) (dataframe.DataFrame, error) {
	numCols := presentNumericColumns(sample)
	if len(numCols) == 0 {
		return dataframe.DataFrame{}, ErrMissingColumn
	}

	cols := []series.Series{
		series.New(describeStats, series.String, "STATISTIC"),
	}
	for _, name := range numCols {
		vals, err := floatColumn(sample, name)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		sorted := make([]float64, len(vals))
		copy(sorted, vals)
		sort.Float64s(sorted)

		stats := []float64{
			float64(len(vals)),
			utils.Round2(stat.Mean(vals, nil)),
			utils.Round2(sampleStd(vals)),
			sorted[0],
			utils.Round2(quantile(sorted, 0.25)),
			utils.Round2(quantile(sorted, 0.5)),
			utils.Round2(quantile(sorted, 0.75)),
			sorted[len(sorted)-1],
		}
		cols = append(cols, series.New(stats, series.Float, name))
	}

	return dataframe.New(cols...), nil
}

// presentNumericColumns Schema声明为数值且在数据中存在的列
func presentNumericColumns(df dataframe.DataFrame) []string {
	var cols []string
	for _, name := range file.NumericColumns() {
		if utils.HasColumn(df, name) {
			cols = append(cols, name)
		}
	}
	return cols
}
