package processor

import (
	"errors"
	"testing"
)

func TestDescribe(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "600", "0", "5", "1000", "1", "1"},
		{"AA", "2", "ANC", "SEA", "700", "10", "15", "1200", "2", "2"},
		{"DL", "3", "SFO", "MSP", "800", "20", "25", "1400", "3", "3"},
		{"UA", "4", "SFO", "ORD", "900", "30", "35", "1600", "4", "4"},
	})

	desc, err := Describe(df)
	if err != nil {
		t.Fatalf("描述统计失败: %v", err)
	}

	// 统计量行固定: count/mean/std/min/25%/50%/75%/max
	if desc.Nrow() != 8 {
		t.Fatalf("统计量行数 = %d", desc.Nrow())
	}
	if got := desc.Col("STATISTIC").Elem(0).String(); got != "count" {
		t.Errorf("首行统计量 = %s", got)
	}

	// 只包含数值列, 不含航空公司和机场代码
	for _, name := range desc.Names() {
		if name == "AIRLINE" || name == "ORIGIN_AIRPORT" {
			t.Errorf("描述统计不应包含类别列 %s", name)
		}
	}

	// DEPARTURE_DELAY: count=4, mean=15, min=0, max=30
	col := desc.Col("DEPARTURE_DELAY")
	if got := col.Elem(0).Float(); !approx(got, 4) {
		t.Errorf("count = %v", got)
	}
	if got := col.Elem(1).Float(); !approx(got, 15) {
		t.Errorf("mean = %v", got)
	}
	if got := col.Elem(3).Float(); !approx(got, 0) {
		t.Errorf("min = %v", got)
	}
	if got := col.Elem(7).Float(); !approx(got, 30) {
		t.Errorf("max = %v", got)
	}
	// 偶数个值 [0 10 20 30] 的四分位: 线性插值
	if got := col.Elem(4).Float(); !approx(got, 7.5) {
		t.Errorf("25%% = %v, 期望 7.5", got)
	}
	if got := col.Elem(5).Float(); !approx(got, 15) {
		t.Errorf("50%% = %v, 期望 15", got)
	}
	if got := col.Elem(6).Float(); !approx(got, 22.5) {
		t.Errorf("75%% = %v, 期望 22.5", got)
	}
	// 均值必须落在最小值和最大值之间
	mean := col.Elem(1).Float()
	if mean < col.Elem(3).Float() || mean > col.Elem(7).Float() {
		t.Errorf("均值越界: %v", mean)
	}
}

func TestNumericCorrelation(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "600", "0", "5", "1000", "1", "1"},
		{"AA", "2", "ANC", "SEA", "700", "10", "15", "1200", "2", "2"},
		{"DL", "3", "SFO", "MSP", "800", "20", "25", "1400", "3", "3"},
	})

	corr, err := NumericCorrelation(df)
	if err != nil {
		t.Fatalf("相关矩阵失败: %v", err)
	}

	// 全部7个数值列参与
	if len(corr.Columns) != 7 {
		t.Fatalf("数值列数 = %d, 期望 7", len(corr.Columns))
	}
	for i := range corr.Columns {
		for j := range corr.Columns {
			if !approx(corr.Values[i][j], corr.Values[j][i]) {
				t.Errorf("矩阵不对称: [%d][%d]", i, j)
			}
		}
	}
}

func TestDescribeEmptyColumn(t *testing.T) {
	df := loadFlights(t, [][]string{
		{"AA", "1", "ANC", "SEA", "600", "NA", "5", "1000", "1", "1"},
		{"AA", "2", "ANC", "SEA", "700", "NA", "15", "1200", "2", "2"},
	})

	_, err := Describe(df)
	if !errors.Is(err, ErrEmptyAggregation) {
		t.Errorf("全空列应返回ErrEmptyAggregation, 实际: %v", err)
	}
}
