package utils

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

func Contains[T comparable](slice []T, item T) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// 辅助函数：判断DataFrame是否有某列
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Round2 保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sheet 导出工作簿中的一张工作表
type Sheet struct {
	Name  string
	Frame dataframe.DataFrame
}

// SaveToExcel 将单个DataFrame保存为Excel文件
func SaveToExcel(df dataframe.DataFrame, filePath, sheetName string) error {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return SaveSheets(filePath, []Sheet{{Name: sheetName, Frame: df}})
}

// SaveSheets 将多张表格保存到同一个Excel文件, 每张表一个工作表
func SaveSheets(filePath string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("没有可导出的表格")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// 复用excelize默认创建的工作表
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("重命名工作表失败: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("创建工作表失败: %w", err)
			}
		}
		writeSheet(f, sheet.Name, sheet.Frame)
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("保存Excel文件失败: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheetName string, df dataframe.DataFrame) {
	// 写入列名
	colNames := df.Names()
	for i, name := range colNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	// 写入数据
	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		for colIdx, colName := range colNames {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			val := df.Col(colName).Val(rowIdx)
			f.SetCellValue(sheetName, cell, val)
		}
	}
}
