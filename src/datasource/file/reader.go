// reader.go
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"FlightAnalytics/src/config"
	"FlightAnalytics/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/tealeg/xlsx"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ReadDataFrame 根据扩展名读取数据文件并返回符合Schema的DataFrame
// 支持csv和xlsx两种格式
func ReadDataFrame(filePath string, dcfg *config.DataConfig) (dataframe.DataFrame, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		return ReadCSVToDataFrame(filePath, dcfg)
	case ".xlsx":
		return ReadXLSXToDataFrame(filePath, dcfg.SheetName, dcfg)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("不支持的数据文件格式: %s", filePath)
	}
}

// ReadCSVToDataFrame 读取csv文件
// 列类型按Schema声明传入gota, 不做逐列自动推断
func ReadCSVToDataFrame(filePath string, dcfg *config.DataConfig) (dataframe.DataFrame, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("打开数据文件失败: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	// 运行系统导出的数据可能是GBK编码
	if strings.EqualFold(dcfg.Encoding, "gbk") {
		r = transform.NewReader(f, simplifiedchinese.GBK.NewDecoder())
	}

	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(headerTypes(dcfg)),
		dataframe.NaNValues(naValues(dcfg)),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("解析csv失败: %w", df.Error())
	}

	return normalize(df, dcfg)
}

// ReadXLSXToDataFrame 读取xlsx文件的指定工作表
func ReadXLSXToDataFrame(filePath, sheetName string, dcfg *config.DataConfig) (dataframe.DataFrame, error) {
	xlFile, err := xlsx.OpenFile(filePath)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("打开xlsx文件失败: %w", err)
	}

	if len(xlFile.Sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("excel文件中没有工作表")
	}
	sheet, ok := xlFile.Sheet[sheetName]
	if !ok {
		sheet = xlFile.Sheets[0]
	}

	records, err := sheetToRecords(sheet)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(headerTypes(dcfg)),
	)
	if df.Error() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("转换为dataframe失败: %w", df.Error())
	}

	return normalize(df, dcfg)
}

// sheetToRecords 将xlsx.Sheet展开为记录表, 首行为表头
func sheetToRecords(sheet *xlsx.Sheet) ([][]string, error) {
	if len(sheet.Rows) < 2 {
		return nil, fmt.Errorf("工作表 %s 中没有数据行", sheet.Name)
	}

	var headers []string
	for _, cell := range sheet.Rows[0].Cells {
		headers = append(headers, cell.String())
	}

	records := make([][]string, 0, len(sheet.Rows))
	records = append(records, headers)
	for _, row := range sheet.Rows[1:] {
		record := make([]string, len(headers))
		for i, cell := range row.Cells {
			if i < len(headers) {
				record[i] = cell.String()
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// normalize 将实际表头重命名为规范列名并校验Schema
func normalize(df dataframe.DataFrame, dcfg *config.DataConfig) (dataframe.DataFrame, error) {
	for _, col := range Schema {
		header := dcfg.GetColumn(col.Name)
		if header == col.Name {
			continue
		}
		if !utils.HasColumn(df, header) {
			continue // 缺列统一在下面报告
		}
		df = df.Rename(col.Name, header)
	}

	var missing []string
	for _, col := range Schema {
		if !utils.HasColumn(df, col.Name) {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("数据文件缺少必需列: %s", strings.Join(missing, ", "))
	}

	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("数据文件中没有记录")
	}

	// 只保留Schema声明的列, 下游聚合不关心其余字段
	df = df.Select(schemaNames())
	if df.Error() != nil {
		return dataframe.DataFrame{}, df.Error()
	}
	return df, nil
}

func schemaNames() []string {
	names := make([]string, len(Schema))
	for i, col := range Schema {
		names[i] = col.Name
	}
	return names
}

// headerTypes 按数据配置把Schema类型映射到实际表头
func headerTypes(dcfg *config.DataConfig) map[string]series.Type {
	types := make(map[string]series.Type, len(Schema))
	for _, col := range Schema {
		types[dcfg.GetColumn(col.Name)] = col.Type
	}
	return types
}

func naValues(dcfg *config.DataConfig) []string {
	if len(dcfg.NaValues) > 0 {
		return dcfg.NaValues
	}
	return []string{"", "NA", "NaN"}
}
