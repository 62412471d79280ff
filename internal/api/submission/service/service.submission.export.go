package submissionsvc

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportGrid xuất view bảng hiện tại của một form ra file .xlsx:
// header là label (hoặc tên) của các cột, mỗi submission một dòng,
// giá trị hiển thị giống grid (label thay cho value với các field dạng choice).
func (s *FormSubmissionService) ExportGrid(ctx context.Context, req GridRequest) (*excelize.File, string, error) {
	// Export toàn bộ view đã filter, không phân trang
	req.Page = 1
	req.Limit = 100
	schema, err := s.resolveService.ResolveSchema(ctx, req.FormID)
	if err != nil {
		return nil, "", err
	}

	result, err := s.queryAll(ctx, req)
	if err != nil {
		return nil, "", err
	}

	labelByField := buildLabelLookup(schema)
	fieldLabels := make(map[string]string, len(schema.Fields))
	for _, f := range schema.Fields {
		fieldLabels[f.Name] = f.Label
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})

	for i, column := range result.Columns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s1", col)
		header := fieldLabels[column]
		if header == "" {
			header = column
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, sub := range result.Items {
		row := rowIdx + 2
		for colIdx, column := range result.Columns {
			col, _ := excelize.ColumnNumberToName(colIdx + 1)
			raw := formDataString(sub, column)
			// Hiển thị label thay cho value với field dạng choice
			if byValue, ok := labelByField[column]; ok {
				if label, ok := byValue[raw]; ok {
					raw = label
				}
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), raw)
		}
	}

	fileName := fmt.Sprintf("%s_export.xlsx", schema.FormName)
	return f, fileName, nil
}

// queryAll query grid không phân trang (mọi item khớp filter)
func (s *FormSubmissionService) queryAll(ctx context.Context, req GridRequest) (*GridResult, error) {
	result, err := s.QueryGrid(ctx, req)
	if err != nil {
		return nil, err
	}

	// Gom các trang còn lại
	for page := int64(2); page <= result.TotalPage; page++ {
		req.Page = page
		next, err := s.QueryGrid(ctx, req)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, next.Items...)
	}

	return result, nil
}
