package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// amountPrinter groups digits for terminal display, e.g. "$1,500,000".
var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a salary amount as whole-unit currency for terminals.
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("$%.0f", amount)
}

// WritePreview prints one table per position to w, a column pair per season.
func WritePreview(w io.Writer, rep *league.Report) error {
	for _, pos := range rep.Positions {
		if _, err := fmt.Fprintf(w, "\n%s\n", pos); err != nil {
			return err
		}

		headers := make([]any, 0, 1+2*len(rep.Seasons))
		headers = append(headers, "Rank")
		for _, season := range rep.Seasons {
			headers = append(headers, string(season)+" Player", string(season)+" Salary")
		}

		tbl := tablewriter.NewTable(w)
		tbl.Header(headers...)

		for ri := 0; ri < rep.MaxRows(pos); ri++ {
			row := make([]any, 0, len(headers))
			row = append(row, strconv.Itoa(ri+1))
			for _, season := range rep.Seasons {
				entries := rep.Get(pos, season)
				if ri < len(entries) {
					row = append(row, entries[ri].Name, FormatAmount(entries[ri].Amount))
				} else {
					row = append(row, "", "")
				}
			}
			if err := tbl.Append(row...); err != nil {
				return err
			}
		}

		if err := tbl.Render(); err != nil {
			return err
		}
	}
	return nil
}
