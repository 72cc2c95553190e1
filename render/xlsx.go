// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/affinity/grouping"
)

const (
	sheetGroups   = "Groups"
	sheetOutliers = "Outliers"
)

// WriteXLSX encodes p as an .xlsx workbook into w.
func WriteXLSX(w io.Writer, p *grouping.Partition) error {
	f, err := workbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)

	return errors.Wrap(err, "write workbook")
}

// SaveXLSX writes p as an .xlsx workbook to path.
func SaveXLSX(path string, p *grouping.Partition) error {
	f, err := workbook(p)
	if err != nil {
		return err
	}
	defer f.Close()

	return errors.Wrapf(f.SaveAs(path), "save workbook %s", path)
}

// workbook lays out the Groups sheet (group, score, member) and the
// Outliers sheet (member).
func workbook(p *grouping.Partition) (*excelize.File, error) {
	if p == nil {
		return nil, errors.New("render: nil partition")
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetGroups); err != nil {
		f.Close()

		return nil, errors.Wrap(err, "rename sheet")
	}
	if _, err := f.NewSheet(sheetOutliers); err != nil {
		f.Close()

		return nil, errors.Wrap(err, "add sheet")
	}

	rows := [][]any{{"Group", "Score", "Member"}}
	for i, g := range p.Groups {
		rows = append(rows, lo.Map(g.Names, func(name string, _ int) []any {
			return []any{i + 1, g.Score, name}
		})...)
	}
	if err := setRows(f, sheetGroups, rows); err != nil {
		f.Close()

		return nil, err
	}

	outliers := append([][]any{{"Member"}}, lo.Map(p.OutlierNames, func(name string, _ int) []any {
		return []any{name}
	})...)
	if err := setRows(f, sheetOutliers, outliers); err != nil {
		f.Close()

		return nil, err
	}

	return f, nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "%s row %d", sheet, i+1)
		}
	}

	return nil
}
