package exporter

import (
	"bytes"
	"fmt"
	"strings"
)

const pdfLinesPerPage = 52

// buildTablePDF renders the dataset as fixed-pitch text lines in a minimal
// PDF. No external renderer is involved; viewers only need the standard
// Courier base font.
func buildTablePDF(dataset Dataset) ([]byte, error) {
	lines := tableLines(dataset)

	var pages [][]string
	for len(lines) > 0 {
		n := pdfLinesPerPage
		if n > len(lines) {
			n = len(lines)
		}
		pages = append(pages, lines[:n])
		lines = lines[n:]
	}
	if len(pages) == 0 {
		pages = [][]string{{dataset.Name}}
	}

	// Object layout: 1 catalog, 2 pages, 3 font, then a page object and a
	// content stream per page.
	objects := []string{
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", pageRefs(len(pages)), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}
	objects = append([]string{"<< /Type /Catalog /Pages 2 0 R >>"}, objects...)

	for i := range pages {
		contentObj := 4 + len(pages) + i
		objects = append(objects, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 842 595] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			contentObj,
		))
	}

	for _, page := range pages {
		var content strings.Builder
		content.WriteString("BT\n/F1 9 Tf\n11 TL\n40 560 Td\n")
		for i, line := range page {
			escaped := pdfEscape(line)
			if i == 0 {
				content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
				continue
			}
			content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
		}
		content.WriteString("ET")

		stream := content.String()
		objects = append(objects, fmt.Sprintf(
			"<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream,
		))
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for i, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", i+1, obj))
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

// tableLines lays the dataset out with padded fixed-width columns sized to
// the longest value.
func tableLines(dataset Dataset) []string {
	widths := make([]int, len(dataset.Columns))
	for i, col := range dataset.Columns {
		widths[i] = len(col.Header)
		for _, row := range dataset.Rows {
			if l := len(col.cell(row)); l > widths[i] {
				widths[i] = l
			}
		}
	}

	formatRow := func(values []string) string {
		var b strings.Builder
		for i, v := range values {
			b.WriteString(fmt.Sprintf("%-*s", widths[i]+2, v))
		}
		return strings.TrimRight(b.String(), " ")
	}

	headers := make([]string, len(dataset.Columns))
	for i, col := range dataset.Columns {
		headers[i] = col.Header
	}

	lines := []string{dataset.Name, "", formatRow(headers)}
	for _, row := range dataset.Rows {
		values := make([]string, len(dataset.Columns))
		for i, col := range dataset.Columns {
			values[i] = col.cell(row)
		}
		lines = append(lines, formatRow(values))
	}

	return lines
}

func pageRefs(count int) string {
	refs := make([]string, count)
	for i := 0; i < count; i++ {
		refs[i] = fmt.Sprintf("%d 0 R", 4+i)
	}
	return strings.Join(refs, " ")
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
