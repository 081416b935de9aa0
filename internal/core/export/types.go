package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Format is an export file format
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
)

// ParseFormat accepts "xlsx", "excel" and "pdf" (case-insensitive); empty means xlsx
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xlsx", "excel":
		return FormatExcel, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format: %s", s)
	}
}

// Exporter writes a Table in one file format
type Exporter interface {
	Export(table *Table, w io.Writer) error
	ContentType() string
	Extension() string
}

// Table is a titled grid of rows
type Table struct {
	Title       string
	Description string
	CreatedAt   time.Time
	Headers     []string
	Rows        [][]interface{}
	Style       Style
}

// Style holds the few knobs the exporters honour
type Style struct {
	Landscape     bool
	FontSize      float64
	HeaderBgColor string // hex
	StripeColor   string // hex, alternate rows
	ColumnWidths  map[int]float64
}

func DefaultStyle() Style {
	return Style{
		FontSize:      10,
		HeaderBgColor: "#1F1F1F",
		StripeColor:   "#F2F2F2",
		ColumnWidths:  map[int]float64{},
	}
}

// stripHash removes a leading # from hex colours
func stripHash(color string) string {
	return strings.TrimPrefix(color, "#")
}
