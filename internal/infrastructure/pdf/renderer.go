// Package pdf renders sales and inventory reports with fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const (
	dateLayout      = "Jan 02, 2006"
	generatedLayout = "January 02, 2006 at 15:04"
	rowHeight       = 7.0
)

type column struct {
	title string
	width float64
	align string
}

// Renderer implements ports.ReportRenderer.
type Renderer struct {
	printer *message.Printer
}

func NewRenderer() *Renderer {
	return &Renderer{printer: message.NewPrinter(language.English)}
}

// peso formats an amount with thousands separators. The core PDF fonts
// have no peso glyph, so the ISO code is used instead.
func (r *Renderer) peso(amount float64) string {
	return r.printer.Sprintf("PHP %.2f", amount)
}

func (r *Renderer) RenderSales(rep ports.SalesReport) ([]byte, error) {
	doc := r.newDocument(rep.CompanyName, "Sales Report", rep.GeneratedAt)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Period: "+reportPeriod(rep.From, rep.To), "", 1, "L", false, 0, "")
	doc.Ln(3)

	cols := []column{
		{"Customer", 60, "L"},
		{"Date", 35, "L"},
		{"Items", 20, "R"},
		{"Status", 30, "L"},
		{"Total", 45, "R"},
	}
	header(doc, cols)
	for i, o := range rep.Orders {
		row(doc, cols, i%2 == 1,
			truncate(o.Customer.Name, 32),
			o.CreatedAt.Format(dateLayout),
			strconv.Itoa(len(o.Items)),
			string(o.Status),
			r.peso(o.Total),
		)
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(145, rowHeight, "Total Sales", "T", 0, "R", false, 0, "")
	doc.CellFormat(45, rowHeight, r.peso(rep.TotalSales), "T", 1, "R", false, 0, "")

	return output(doc)
}

func (r *Renderer) RenderInventory(rep ports.InventoryReport) ([]byte, error) {
	doc := r.newDocument(rep.CompanyName, "Inventory Report", rep.GeneratedAt)

	cols := []column{
		{"Product", 55, "L"},
		{"Description", 60, "L"},
		{"Price", 30, "R"},
		{"Stock", 20, "R"},
		{"Status", 25, "L"},
	}
	header(doc, cols)
	for i, p := range rep.Products {
		if p.LowStock() {
			doc.SetTextColor(180, 30, 30)
		}
		row(doc, cols, i%2 == 1,
			truncate(p.Name, 30),
			truncate(p.Description, 34),
			r.peso(p.Price),
			strconv.Itoa(p.Stock),
			productStatus(p),
		)
		doc.SetTextColor(0, 0, 0)
	}

	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(145, rowHeight, "Inventory Value", "T", 0, "R", false, 0, "")
	doc.CellFormat(45, rowHeight, r.peso(rep.InventoryValue), "T", 1, "R", false, 0, "")

	return output(doc)
}

func (r *Renderer) newDocument(company, title string, generated time.Time) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(10, 12, 10)
	doc.SetTitle(title, false)
	doc.SetAuthor(company, false)
	doc.SetCreationDate(generated)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 8, fmt.Sprintf("%s - page %d/{nb}", company, doc.PageNo()), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 9, company, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 13)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, "Generated on "+generated.Format(generatedLayout), "", 1, "L", false, 0, "")
	doc.Ln(2)
	return doc
}

func header(doc *fpdf.Fpdf, cols []column) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(40, 60, 90)
	doc.SetTextColor(255, 255, 255)
	for _, c := range cols {
		doc.CellFormat(c.width, rowHeight, c.title, "1", 0, c.align, true, 0, "")
	}
	doc.Ln(-1)
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
}

func row(doc *fpdf.Fpdf, cols []column, shaded bool, values ...string) {
	doc.SetFillColor(240, 243, 247)
	for i, c := range cols {
		doc.CellFormat(c.width, rowHeight, values[i], "1", 0, c.align, shaded, 0, "")
	}
	doc.Ln(-1)
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func reportPeriod(from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return "All time"
	case to.IsZero():
		return "From " + from.Format(dateLayout)
	case from.IsZero():
		return "Up to " + to.Format(dateLayout)
	default:
		return from.Format(dateLayout) + " - " + to.Format(dateLayout)
	}
}

func productStatus(p *domain.Product) string {
	switch {
	case !p.IsActive:
		return "Inactive"
	case p.LowStock():
		return "Low stock"
	default:
		return "Active"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

var _ ports.ReportRenderer = (*Renderer)(nil)
