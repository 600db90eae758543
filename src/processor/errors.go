// errors.go
package processor

import (
	"errors"
	"fmt"
	"math"

	"FlightAnalytics/src/utils"

	"github.com/go-gota/gota/dataframe"
)

// 聚合过程的错误分类
// 所有失败都直接上报, 绝不吞掉后用默认值渲染出误导性的图表
var (
	// ErrInvalidSampleSize 调用方传入的采样数量越界
	ErrInvalidSampleSize = errors.New("采样数量非法")
	// ErrMissingColumn 数据集中缺少聚合必需的列
	ErrMissingColumn = errors.New("缺少必需列")
	// ErrEmptyAggregation 参与聚合的列没有任何有效值
	ErrEmptyAggregation = errors.New("聚合结果为空")
	// ErrUnknownView 请求的视图不存在
	ErrUnknownView = errors.New("未知视图")
)

// requireColumns 校验必需列是否存在
func requireColumns(df dataframe.DataFrame, names ...string) error {
	for _, name := range names {
		if !utils.HasColumn(df, name) {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return nil
}

// floatColumn 取出数值列的有效值(剔除缺失)
// 列不存在返回ErrMissingColumn, 全部缺失返回ErrEmptyAggregation
func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	if err := requireColumns(df, name); err != nil {
		return nil, err
	}

	raw := df.Col(name).Float()
	vals := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%w: 列 %s 没有有效值", ErrEmptyAggregation, name)
	}
	return vals, nil
}

// dropNaN 过滤缺失值, 不要求剩余非空
func dropNaN(raw []float64) []float64 {
	vals := make([]float64, 0, len(raw))
	for _, v := range raw {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}
