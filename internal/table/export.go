package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatCSV      Format = "csv"
	FormatTSV      Format = "tsv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// CopyToClipboard is replaced in tests.
var CopyToClipboard = clipboard.WriteAll

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "table":
		return FormatTable, nil
	case "c", "csv":
		return FormatCSV, nil
	case "t", "tsv":
		return FormatTSV, nil
	case "j", "json":
		return FormatJSON, nil
	case "m", "md", "markdown":
		return FormatMarkdown, nil
	case "h", "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, csv, tsv, json, markdown or html)", s)
	}
}

// Export renders headers and rows as text in the given format. FormatTable
// produces the same plain layout as Print.
func Export(format Format, headers []string, rows [][]string) (string, error) {
	switch format {
	case FormatCSV:
		return formatCSV(headers, rows)
	case FormatTSV:
		return formatTSV(headers, rows), nil
	case FormatJSON:
		return formatJSON(headers, rows)
	case FormatMarkdown:
		return formatMarkdown(headers, rows), nil
	case FormatHTML:
		return formatHTML(headers, rows), nil
	case FormatTable:
		var b strings.Builder
		if err := Print(&b, headers, rows, DefaultCellWidth); err != nil {
			return "", err
		}
		return b.String(), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func formatCSV(headers []string, rows [][]string) (string, error) {
	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatTSV(headers []string, rows [][]string) string {
	var buf strings.Builder

	clean := strings.NewReplacer("\t", " ", "\n", " ")
	write := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(clean.Replace(c))
		}
		buf.WriteByte('\n')
	}

	write(headers)
	for _, row := range rows {
		write(row)
	}
	return buf.String()
}

func formatJSON(headers []string, rows [][]string) (string, error) {
	objects := make([]map[string]string, 0, len(rows))

	for _, row := range rows {
		obj := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				obj[header] = row[i]
			}
		}
		objects = append(objects, obj)
	}

	data, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

func formatMarkdown(headers []string, rows [][]string) string {
	var buf strings.Builder
	escape := strings.NewReplacer("|", `\|`, "\n", " ")

	buf.WriteString("|")
	for _, header := range headers {
		buf.WriteString(" " + escape.Replace(header) + " |")
	}
	buf.WriteString("\n|")
	for range headers {
		buf.WriteString(" --- |")
	}
	buf.WriteString("\n")

	for _, row := range rows {
		buf.WriteString("|")
		for _, cell := range row {
			buf.WriteString(" " + escape.Replace(cell) + " |")
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func formatHTML(headers []string, rows [][]string) string {
	var buf strings.Builder

	buf.WriteString("<table>\n<thead>\n<tr>")
	for _, header := range headers {
		buf.WriteString("<th>" + htmlEscaper.Replace(header) + "</th>")
	}
	buf.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range rows {
		buf.WriteString("<tr>")
		for _, cell := range row {
			buf.WriteString("<td>" + htmlEscaper.Replace(cell) + "</td>")
		}
		buf.WriteString("</tr>\n")
	}
	buf.WriteString("</tbody>\n</table>\n")
	return buf.String()
}
