package payslip

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Document is the content printed on a payslip. Amounts are whole pesos.
type Document struct {
	PayrollID             string
	EmployeeName          string
	Month                 int
	Year                  int
	GrossSalary           int64
	PensionDeduction      int64
	HealthDeduction       int64
	UnemploymentDeduction int64
	TotalDeduction        int64
	NetSalary             int64
	PaidAt                string
}

var amountPrinter = message.NewPrinter(language.LatinAmericanSpanish)

func formatAmount(v int64) string {
	return amountPrinter.Sprintf("$%d", v)
}

func (d Document) Lines() []string {
	return []string{
		"Payslip",
		fmt.Sprintf("Payroll: %s", d.PayrollID),
		fmt.Sprintf("Employee: %s", d.EmployeeName),
		fmt.Sprintf("Period: %02d/%04d", d.Month, d.Year),
		fmt.Sprintf("Paid at: %s", d.PaidAt),
		"",
		fmt.Sprintf("Gross salary: %s", formatAmount(d.GrossSalary)),
		fmt.Sprintf("Pension (AFP): %s", formatAmount(d.PensionDeduction)),
		fmt.Sprintf("Health plan: %s", formatAmount(d.HealthDeduction)),
		fmt.Sprintf("Unemployment insurance: %s", formatAmount(d.UnemploymentDeduction)),
		fmt.Sprintf("Total deductions: %s", formatAmount(d.TotalDeduction)),
		fmt.Sprintf("Net salary: %s", formatAmount(d.NetSalary)),
	}
}

// Render lays the document out as a single page PDF.
func Render(d Document) ([]byte, error) {
	return buildSimplePDF(d.Lines())
}

func buildSimplePDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
