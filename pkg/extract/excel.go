package extract

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Excel flattens every sheet of an .xlsx workbook into tab-separated lines.
type Excel struct{}

func (Excel) Extensions() []string { return []string{".xlsx"} }

func (Excel) Extract(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", err
		}
		for _, row := range rows {
			line := strings.TrimSpace(strings.Join(row, "\t"))
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
