package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// emptyCell stands in for blank cells so columns stay readable.
const emptyCell = "-"

var (
	tableHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).Padding(0, 1)
	tableKey    = lipgloss.NewStyle().Padding(0, 1)
	tableCell   = lipgloss.NewStyle().Padding(0, 1)
	tableEmpty  = StyleDim.Padding(0, 1)
)

// Table collects rows for a bordered lipgloss table. The first column is
// treated as the row key.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row adds a row. Missing trailing cells and empty cells render as "-".
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, c := range row {
		if c == "" {
			row[i] = emptyCell
		}
	}
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(t.headers...).
		Rows(t.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeader
			case t.rows[row][col] == emptyCell:
				return tableEmpty
			case col == 0:
				return tableKey
			default:
				return tableCell
			}
		}).
		String()
}
