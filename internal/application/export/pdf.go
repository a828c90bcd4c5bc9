package export

import (
	"fmt"
	"os"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const (
	pdfGridColumns = 12
	pdfIndentStep  = 5.0
	pdfDateLayout  = "Jan 2006"
)

// writePDF renders the value as a paginated PDF document with a title
// banner, recursing through nested maps and rendering object lists as
// tables.
func (e *Exporter) writePDF(value Value, reportName string, path string) error {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, reportName+" Report", props.Text{
		Size:  22,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(8, text.NewCol(12, "Generated on: "+e.now().Format("2006-01-02 15:04:05"), props.Text{
		Size:  12,
		Align: align.Center,
		Color: &props.Color{Red: 128, Green: 128, Blue: 128},
	}))
	m.AddRow(4, line.NewCol(12))

	if value.Kind == KindList {
		for i, item := range value.Items {
			m.AddRow(9, text.NewCol(12, fmt.Sprintf("Item %d:", i+1), props.Text{
				Size:  16,
				Style: fontstyle.Bold,
			}))
			renderPDFValue(m, item, 0)
		}
	} else {
		renderPDFValue(m, value, 0)
	}

	doc, err := m.Generate()
	if err != nil {
		return err
	}
	return os.WriteFile(path, doc.GetBytes(), 0o644)
}

func renderPDFValue(m core.Maroto, v Value, depth int) {
	if v.Kind != KindMap {
		m.AddRow(6, text.NewCol(12, pdfScalar(v), bodyText(depth)))
		return
	}

	for _, key := range v.Keys {
		child := v.Fields[key]
		switch {
		case child.Kind == KindMap:
			m.AddRow(8, text.NewCol(12, key+":", headerText(depth)))
			renderPDFValue(m, child, depth+1)
		case child.Kind == KindList:
			m.AddRow(8, text.NewCol(12, key+":", headerText(depth)))
			renderPDFList(m, child, depth+1)
		default:
			m.AddRow(6, text.NewCol(12, key+": "+pdfScalar(child), bodyText(depth)))
		}
	}
}

func renderPDFList(m core.Maroto, v Value, depth int) {
	if len(v.Items) == 0 {
		m.AddRow(6, text.NewCol(12, "No data", bodyText(depth)))
		return
	}
	if v.IsObjectList() {
		renderPDFTable(m, v, depth)
		return
	}
	for i, item := range v.Items {
		m.AddRow(6, text.NewCol(12, fmt.Sprintf("%d. %s", i+1, pdfScalar(item)), bodyText(depth)))
	}
}

// renderPDFTable lays an object list out on the 12-column grid with a
// bold header row. Rows wider than the grid fall back to "k: v" lines.
func renderPDFTable(m core.Maroto, v Value, depth int) {
	headers := v.Items[0].Keys
	if len(headers) > pdfGridColumns {
		for _, item := range v.Items {
			for _, key := range item.Keys {
				m.AddRow(6, text.NewCol(12, key+": "+pdfScalar(item.Fields[key]), bodyText(depth+1)))
			}
			m.AddRow(2, line.NewCol(12))
		}
		return
	}

	widths := columnWidths(len(headers))

	headerCols := make([]core.Col, 0, len(headers))
	for i, header := range headers {
		headerCols = append(headerCols, text.NewCol(widths[i], header, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Left:  indent(depth),
		}))
	}
	m.AddRow(7, headerCols...)
	m.AddRow(2, line.NewCol(12))

	for _, item := range v.Items {
		cols := make([]core.Col, 0, len(headers))
		for i, header := range headers {
			cell := "N/A"
			if field, ok := item.Fields[header]; ok {
				cell = pdfScalar(field)
			}
			cols = append(cols, text.NewCol(widths[i], cell, props.Text{
				Size: 10,
				Left: indent(depth),
			}))
		}
		m.AddRow(6, cols...)
	}
	m.AddRow(2, col.New(12))
}

// columnWidths splits the 12-column grid as evenly as possible,
// distributing the remainder over the leading columns.
func columnWidths(count int) []int {
	widths := make([]int, count)
	base := pdfGridColumns / count
	remainder := pdfGridColumns % count
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

func pdfScalar(v Value) string {
	switch v.Kind {
	case KindDate:
		return v.Date.Format(pdfDateLayout)
	case KindScalar:
		if v.Scalar == nil {
			return "N/A"
		}
		return fmt.Sprintf("%v", v.Scalar)
	case KindList:
		// nested structures inside table cells collapse to one line
		return excelListCell(v)
	default:
		return excelMapCell(v)
	}
}

func bodyText(depth int) props.Text {
	return props.Text{Size: 12, Left: indent(depth)}
}

func headerText(depth int) props.Text {
	size := 14 - depth
	if size < 10 {
		size = 10
	}
	return props.Text{Size: float64(size), Style: fontstyle.Bold, Left: indent(depth)}
}

func indent(depth int) float64 {
	return float64(depth) * pdfIndentStep
}
