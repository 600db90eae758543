package utils

import (
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{8.3333333, 8.33},
		{7.071067, 7.07},
		{-2.675, -2.67},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, 期望 %v", tc.in, got, tc.want)
		}
	}
}

func TestHasColumn(t *testing.T) {
	df := dataframe.New(
		series.New([]string{"AA"}, series.String, "AIRLINE"),
	)
	if !HasColumn(df, "AIRLINE") {
		t.Error("应找到AIRLINE列")
	}
	if HasColumn(df, "DISTANCE") {
		t.Error("不应找到DISTANCE列")
	}
}

func TestSaveSheets(t *testing.T) {
	df1 := dataframe.New(
		series.New([]string{"AA", "DL"}, series.String, "AIRLINE"),
		series.New([]float64{8.33, 5.5}, series.Float, "DEPARTURE_DELAY_MEAN"),
	)
	df2 := dataframe.New(
		series.New([]string{"SFO"}, series.String, "ORIGIN_AIRPORT"),
	)

	path := filepath.Join(t.TempDir(), "export.xlsx")
	err := SaveSheets(path, []Sheet{
		{Name: "airline_metrics", Frame: df1},
		{Name: "top_routes", Frame: df2},
	})
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("读取导出文件失败: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "airline_metrics" || sheets[1] != "top_routes" {
		t.Fatalf("工作表 = %v", sheets)
	}

	rows, err := f.GetRows("airline_metrics")
	if err != nil {
		t.Fatal(err)
	}
	// 表头行 + 两条数据行
	if len(rows) != 3 {
		t.Fatalf("行数 = %d", len(rows))
	}
	if rows[0][0] != "AIRLINE" || rows[1][0] != "AA" {
		t.Errorf("内容 = %v", rows)
	}
}

func TestSaveSheetsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := SaveSheets(path, nil); err == nil {
		t.Error("空表格列表应返回错误")
	}
}
