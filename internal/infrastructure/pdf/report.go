// Package pdf renders inventory reports as PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/bizdata/business-api/internal/core/ports"
)

var tableWidths = [4]float64{30, 55, 30, 75}

var tableHeaders = [4]string{"Code", "Name", "Price", "Characteristics"}

// ReportRenderer implements ports.ReportRenderer using fpdf.
type ReportRenderer struct{}

func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{}
}

func (r *ReportRenderer) Render(report ports.InventoryReport) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Inventory Report", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, "Generated at: "+report.GeneratedAt.Format("2006-01-02 15:04:05 MST"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, section := range report.Sections {
		doc.SetFont("Helvetica", "B", 12)
		doc.CellFormat(0, 8, fmt.Sprintf("Company: %s (NIT: %s)", section.Company.Name, section.Company.NIT), "", 1, "L", false, 0, "")

		if len(section.Products) == 0 {
			doc.SetFont("Helvetica", "I", 10)
			doc.CellFormat(0, 6, "No products found for this company.", "", 1, "L", false, 0, "")
			doc.Ln(4)
			continue
		}

		doc.SetFont("Helvetica", "B", 9)
		doc.SetFillColor(230, 230, 230)
		for i, header := range tableHeaders {
			doc.CellFormat(tableWidths[i], 7, header, "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)

		doc.SetFont("Helvetica", "", 9)
		for _, p := range section.Products {
			doc.CellFormat(tableWidths[0], 6, p.Code, "1", 0, "L", false, 0, "")
			doc.CellFormat(tableWidths[1], 6, p.Name, "1", 0, "L", false, 0, "")
			doc.CellFormat(tableWidths[2], 6, fmt.Sprintf("%.2f %s", p.Price, p.Currency), "1", 0, "R", false, 0, "")
			doc.CellFormat(tableWidths[3], 6, p.Characteristics, "1", 0, "L", false, 0, "")
			doc.Ln(-1)
		}
		doc.Ln(6)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
