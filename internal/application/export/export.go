package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/visionassist/backend/internal/domain/shared"
)

// Format identifies a supported export format
type Format string

const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
	FormatPDF   Format = "pdf"
)

// ParseFormat normalizes a format query value. "xlsx" is an alias for
// "excel". Unknown values return a validation error naming the supported
// formats.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatExcel, "xlsx":
		return FormatExcel, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT",
			"Unsupported export format. Supported formats: excel, csv, pdf")
	}
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return string(f)
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	switch f {
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Exporter renders report payloads into downloadable files. Files are
// written under dir and are expected to be removed by the caller once
// streamed.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates an Exporter writing into dir, defaulting to the
// system temp directory.
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Exporter{dir: dir, now: time.Now}
}

// WithClock overrides the time source, used in tests
func (e *Exporter) WithClock(now func() time.Time) *Exporter {
	e.now = now
	return e
}

// Export renders the payload in the given format and returns the path of
// the generated file.
func (e *Exporter) Export(ctx context.Context, payload any, reportName string, format Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	value := FromPayload(payload)
	path := filepath.Join(e.dir, fmt.Sprintf("%s_%d.%s", reportName, e.now().UnixNano(), format.Extension()))

	var err error
	switch format {
	case FormatExcel:
		err = writeExcel(value, path)
	case FormatCSV:
		err = writeCSV(value, path)
	case FormatPDF:
		err = e.writePDF(value, reportName, path)
	default:
		return "", shared.NewDomainError("INVALID_INPUT",
			"Unsupported export format. Supported formats: excel, csv, pdf")
	}
	if err != nil {
		return "", fmt.Errorf("failed to export as %s: %w", format, err)
	}
	return path, nil
}

// DownloadName builds the attachment filename presented to the client
func DownloadName(reportName string, format Format, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", reportName, at.Format("2006-01-02"), format.Extension())
}