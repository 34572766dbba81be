package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	// Border is the border style.
	Border lipgloss.Border

	// BorderColor is the color for borders.
	BorderColor lipgloss.Color

	// HeaderStyle is the style for header cells.
	HeaderStyle lipgloss.Style

	// CellStyle is the style for regular cells.
	CellStyle lipgloss.Style

	// KeyStyle styles the first column of key/value tables.
	KeyStyle lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
		CellStyle:   lipgloss.NewStyle(),
		KeyStyle:    StyleNoun,
	}
}

// Table represents a styled table.
type Table struct {
	title   string
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
// A table without headers renders as a key/value table: its first column
// uses KeyStyle.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Title sets a bold title rendered above the table.
func (t *Table) Title(title string) *Table {
	t.title = title
	return t
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// SetStyle sets the table style.
func (t *Table) SetStyle(style TableStyle) *Table {
	t.style = style
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	keyValue := len(t.headers) == 0

	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			if keyValue && col == 0 {
				return t.style.KeyStyle
			}
			return t.style.CellStyle
		})

	if !keyValue {
		tbl = tbl.Headers(t.headers...)
	}

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	if t.title == "" {
		return tbl.String()
	}
	return StyleSummary.Render(t.title) + "\n" + tbl.String()
}
