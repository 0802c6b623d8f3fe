// Package pdf renders a computed statement as a paginated PDF document with
// a fixed-column table layout.
package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/ledger-statement-service/internal/statement"
)

// rowsPerPage is the number of data rows laid out before a page break. The
// column header is re-emitted at the top of every new page.
const rowsPerPage = 25

const (
	pageMargin = 50.0
	rowHeight  = 14.0
)

var (
	columnTitles = [5]string{"Date", "Reference", "Particulars", "Debit", "Credit"}
	columnWidths = [5]float64{80, 150, 130, 80, 80}
	columnAligns = [5]string{"L", "L", "L", "R", "R"}
)

// HeaderInfo carries the presentation details that are not part of the
// statement itself.
type HeaderInfo struct {
	CompanyName string
}

// RenderError indicates the layout engine failed while building the document.
// No partial output accompanies it.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "statement render failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Render lays out the statement as a PDF and returns the finished document.
// It either returns the complete byte buffer or a *RenderError; it never
// returns partial output.
func Render(st *statement.Statement, header HeaderInfo) ([]byte, error) {
	doc := newDocument()
	layout(doc, st, header)
	return output(doc)
}

// output finalizes the document into a single byte buffer. Any error the
// layout engine accumulated while streaming surfaces here.
func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

func newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	// Page breaks are driven by the row counter, not by the cursor position.
	doc.SetAutoPageBreak(false, 0)
	return doc
}

// layout writes the whole document into doc: title block, then the entry
// table with the column header repeated after every rowsPerPage data rows,
// then the closing-balance footer.
func layout(doc *fpdf.Fpdf, st *statement.Statement, header HeaderInfo) {
	doc.AddPage()
	writeTitleBlock(doc, st, header)
	writeTableHeader(doc)

	for i, entry := range st.Entries {
		if i > 0 && i%rowsPerPage == 0 {
			doc.AddPage()
			writeTableHeader(doc)
		}
		writeRow(doc, [5]string{
			formatDate(entry.Date),
			entry.Reference,
			entry.Particulars,
			formatAmount(entry.Debit),
			formatAmount(entry.Credit),
		})
	}

	doc.Ln(rowHeight)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(0, rowHeight, "Closing Balance: "+st.ClosingBalance.StringFixed(2), "", 1, "L", false, 0, "")
}

func writeTitleBlock(doc *fpdf.Fpdf, st *statement.Statement, header HeaderInfo) {
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 22, header.CompanyName, "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 18, "Ledger Statement", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, rowHeight, "Party: "+st.Party.Name, "", 1, "L", false, 0, "")
	if st.Party.TaxID != "" {
		doc.CellFormat(0, rowHeight, "Tax ID: "+st.Party.TaxID, "", 1, "L", false, 0, "")
	}
	if st.Party.Address != "" {
		doc.CellFormat(0, rowHeight, "Address: "+st.Party.Address, "", 1, "L", false, 0, "")
	}
	doc.CellFormat(0, rowHeight, "Date Range: "+formatDate(st.FromDate)+" - "+formatDate(st.ToDate), "", 1, "L", false, 0, "")
	doc.Ln(10)
}

func writeTableHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 10)
	writeRow(doc, columnTitles)
	doc.SetFont("Helvetica", "", 10)
}

func writeRow(doc *fpdf.Fpdf, cells [5]string) {
	for i, cell := range cells {
		lineBreak := 0
		if i == len(cells)-1 {
			lineBreak = 1
		}
		doc.CellFormat(columnWidths[i], rowHeight, cell, "", lineBreak, columnAligns[i], false, 0, "")
	}
}
