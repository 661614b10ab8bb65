// Package report renders the finished season report: a styled multi-sheet
// spreadsheet, a terminal preview table, and YAML/JSON exports. No business
// logic lives here; the ranked structure arrives fully computed.
package report

import (
	"fmt"

	"github.com/agentstation/utc"
	"github.com/xuri/excelize/v2"

	"github.com/nateprich/mfl-salary-top30/pkg/errors"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// currencyFormat renders amounts as whole currency units.
const currencyFormat = `"$"#,##0`

// Column widths for the rank, player, and salary columns.
const (
	rankColWidth   = 6.0
	nameColWidth   = 24.0
	amountColWidth = 12.0
)

// Filename derives the artifact name from the top-N setting and the run date.
func Filename(topN int, now utc.Time) string {
	return fmt.Sprintf("mfl-salary-top%d-%s.xlsx", topN, now.Format("2006-01-02"))
}

// WriteWorkbook lays out one sheet per position: a leading rank column, then
// for every season a merged season header over a Player/Salary column pair.
func WriteWorkbook(rep *league.Report, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return errors.WrapIO("style", path, err)
	}
	numFmt := currencyFormat
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return errors.WrapIO("style", path, err)
	}

	for i, pos := range rep.Positions {
		sheet := string(pos)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return errors.WrapIO("create sheet", path, err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return errors.WrapIO("create sheet", path, err)
			}
		}
		if err := writeSheet(f, sheet, rep, pos, headerStyle, amountStyle); err != nil {
			return errors.WrapIO("write sheet", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("save workbook", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rep *league.Report, pos league.Position, headerStyle, amountStyle int) error {
	// Rank header spans both header rows.
	if err := f.SetCellValue(sheet, "A1", "Rank"); err != nil {
		return err
	}
	if err := f.MergeCell(sheet, "A1", "A2"); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "A", rankColWidth); err != nil {
		return err
	}

	for si, season := range rep.Seasons {
		nameCol := 2 + si*2
		amountCol := nameCol + 1

		seasonCell, err := excelize.CoordinatesToCellName(nameCol, 1)
		if err != nil {
			return err
		}
		seasonEnd, err := excelize.CoordinatesToCellName(amountCol, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, seasonCell, string(season)); err != nil {
			return err
		}
		if err := f.MergeCell(sheet, seasonCell, seasonEnd); err != nil {
			return err
		}

		nameHeader, err := excelize.CoordinatesToCellName(nameCol, 2)
		if err != nil {
			return err
		}
		amountHeader, err := excelize.CoordinatesToCellName(amountCol, 2)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, nameHeader, "Player"); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, amountHeader, "Salary"); err != nil {
			return err
		}

		nameColName, err := excelize.ColumnNumberToName(nameCol)
		if err != nil {
			return err
		}
		amountColName, err := excelize.ColumnNumberToName(amountCol)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, nameColName, nameColName, nameColWidth); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, amountColName, amountColName, amountColWidth); err != nil {
			return err
		}

		for ri, entry := range rep.Get(pos, season) {
			row := 3 + ri
			nameCell, err := excelize.CoordinatesToCellName(nameCol, row)
			if err != nil {
				return err
			}
			amountCell, err := excelize.CoordinatesToCellName(amountCol, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, nameCell, entry.Name); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, amountCell, entry.Amount); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, amountCell, amountCell, amountStyle); err != nil {
				return err
			}
		}
	}

	// Rank column rows, sized to the longest season bucket on this sheet.
	for ri := 0; ri < rep.MaxRows(pos); ri++ {
		rankCell, err := excelize.CoordinatesToCellName(1, 3+ri)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, rankCell, ri+1); err != nil {
			return err
		}
	}

	lastHeader, err := excelize.CoordinatesToCellName(1+2*len(rep.Seasons), 2)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      2,
		TopLeftCell: "B3",
		ActivePane:  "bottomRight",
	})
}
