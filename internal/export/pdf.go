// Package export renders extraction results into shareable artifacts.
package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/gangoo91/coursescout/internal/record"
)

// WritePDF renders a simple one-column course sheet: title, provider line,
// description, and a clickable canonical link per course. Layout is
// intentionally basic.
func WritePDF(courses []record.Course, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Course Listings", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, c := range courses {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, c.Title, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		meta := fmt.Sprintf("%s  |  %s  |  %s  |  %s", c.Provider, c.Duration, c.Level, c.Price)
		pdf.CellFormat(0, 5, meta, "", 1, "L", false, 0, "")
		pdf.MultiCell(0, 5, c.Description, "", "L", false)

		if c.URL != "" {
			pdf.SetTextColor(0, 0, 200)
			pdf.CellFormat(0, 5, c.URL, "", 1, "L", false, 0, c.URL)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.Ln(3)
	}

	return pdf.OutputFileAndClose(outPath)
}
