package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

type column struct {
	title string
	width float64
	align string
}

var columns = []column{
	{title: "Date", width: 26, align: "L"},
	{title: "Description", width: 76, align: "L"},
	{title: "Type", width: 24, align: "L"},
	{title: "Currency", width: 22, align: "C"},
	{title: "Amount", width: 42, align: "R"},
}

const (
	rowHeight  = 7.0
	fontFamily = "Helvetica"
	pageAlias  = "{nb}"
)

// Renderer writes Documents as A4 PDFs.
type Renderer struct {
	compress bool
}

type RendererOption func(*Renderer)

// WithCompression toggles stream compression. Uncompressed output keeps the
// text searchable in the raw bytes.
func WithCompression(on bool) RendererOption {
	return func(r *Renderer) {
		r.compress = on
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetModificationDate(doc.GeneratedAt)
	pdf.SetTitle(doc.Title+" transactions", true)
	pdf.SetCreator("Runway", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AliasNbPages(pageAlias)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(fontFamily, "B", 14)
		pdf.CellFormat(0, 8, tr(doc.Title), "", 1, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", 9)
		pdf.CellFormat(0, 5, tr("Period: "+doc.Period), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 5, "Generated "+doc.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
		pdf.Ln(3)
		if len(doc.Rows) > 0 {
			writeHeaderRow(pdf)
		}
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of %s", pdf.PageNo(), pageAlias), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	if len(doc.Rows) == 0 {
		pdf.SetFont(fontFamily, "", 11)
		pdf.Ln(6)
		pdf.CellFormat(0, 10, NoTransactionsMessage, "", 1, "C", false, 0, "")
		return output(pdf, w)
	}

	pdf.SetFont(fontFamily, "", 9)
	for i, row := range doc.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{row.Date, row.Description, row.Type, row.Currency, row.Amount}
		for c, col := range columns {
			text := fit(pdf, tr, cells[c], col.width-2)
			pdf.CellFormat(col.width, rowHeight, text, "", 0, col.align, fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if doc.Totals != nil {
		pdf.Ln(4)
		pdf.SetFont(fontFamily, "B", 10)
		line := fmt.Sprintf("Income %s    Expenses %s    Net %s", doc.Totals.Income, doc.Totals.Expenses, doc.Totals.Net)
		pdf.CellFormat(0, rowHeight, tr(line), "T", 1, "R", false, 0, "")
	}

	return output(pdf, w)
}

// RenderBytes is Render into a fresh buffer.
func (r *Renderer) RenderBytes(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(225, 230, 238)
	for _, col := range columns {
		pdf.CellFormat(col.width, rowHeight, col.title, "B", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 9)
}

// fit translates s for the core fonts and truncates it with an ellipsis so
// it renders within width.
func fit(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	if out := tr(s); pdf.GetStringWidth(out) <= width {
		return out
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+ellipsis)) > width {
		runes = runes[:len(runes)-1]
	}
	return tr(string(runes) + ellipsis)
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}
