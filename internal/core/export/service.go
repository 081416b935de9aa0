package export

import (
	"bytes"
	"fmt"
	"io"
)

// Service picks the exporter for a format
type Service struct {
	exporters map[Format]Exporter
}

func NewService() *Service {
	return &Service{
		exporters: map[Format]Exporter{
			FormatExcel: NewExcelExporter("Export"),
			FormatPDF:   NewPDFExporter(),
		},
	}
}

func (s *Service) exporter(format Format) (Exporter, error) {
	e, ok := s.exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return e, nil
}

// Export renders the table and returns bytes plus content type
func (s *Service) Export(t *Table, format Format) ([]byte, string, error) {
	e, err := s.exporter(format)
	if err != nil {
		return nil, "", err
	}
	var buf bytes.Buffer
	if err := e.Export(t, &buf); err != nil {
		return nil, "", fmt.Errorf("export failed: %w", err)
	}
	return buf.Bytes(), e.ContentType(), nil
}

func (s *Service) ExportToWriter(t *Table, format Format, w io.Writer) error {
	e, err := s.exporter(format)
	if err != nil {
		return err
	}
	return e.Export(t, w)
}

// Filename builds "<base>-<yyyymmdd>.<ext>"
func (s *Service) Filename(base string, t *Table, format Format) string {
	e, err := s.exporter(format)
	if err != nil {
		return base
	}
	if t.CreatedAt.IsZero() {
		return base + e.Extension()
	}
	return base + "-" + t.CreatedAt.Format("20060102") + e.Extension()
}
