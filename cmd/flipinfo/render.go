package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Faultbox/tileflip/pkg/tiled"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	skipStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
)

var (
	cellHeaders = []string{"Value", "Hex", "Index", "H", "V", "D", "Rotation", "Angle", "Mirror", "Source X"}
	flagHeaders = []string{"H", "V", "D", "Rotation", "Angle", "Mirror"}
	mapHeaders  = []string{"Cell", "Col", "Row", "Value", "Index", "Dest", "Angle", "Mirror"}
)

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func degrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decodeRows describes each cell; empty cells are marked as skipped.
func decodeRows(r tiled.Resolver, cells []tiled.Cell) [][]string {
	rows := make([][]string, 0, len(cells))
	for _, c := range cells {
		value := strconv.FormatUint(uint64(c), 10)
		hex := fmt.Sprintf("0x%08X", uint32(c))

		src, o, ok := r.Resolve(c)
		if !ok {
			rows = append(rows, []string{value, hex, "-", "-", "-", "-", "skip", "-", "-", "-"})
			continue
		}
		d := c.Decode()
		rows = append(rows, []string{
			value, hex,
			strconv.FormatUint(uint64(d.SheetIndex), 10),
			bit(d.Horizontal), bit(d.Vertical), bit(d.Diagonal),
			degrees(o.Rotation), degrees(o.Angle(r.Convention)),
			o.Mirror.String(),
			strconv.Itoa(int(src.X)),
		})
	}
	return rows
}

// tableRows lists all eight flag combinations in key order.
func tableRows(conv tiled.Convention) [][]string {
	rows := make([][]string, 0, 8)
	for key := 0; key < 8; key++ {
		h, v, d := key&4 != 0, key&2 != 0, key&1 != 0
		o := tiled.OrientationFor(h, v, d)
		rows = append(rows, []string{
			bit(h), bit(v), bit(d),
			degrees(o.Rotation), degrees(o.Angle(conv)), o.Mirror.String(),
		})
	}
	return rows
}

// mapRows lists every non-empty cell of m with its destination.
func mapRows(r tiled.Resolver, m *tiled.Map) [][]string {
	var rows [][]string
	m.Each(func(i int, c tiled.Cell) {
		t, _ := r.Transform(i, m.Columns(), c)
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(i % m.Columns()),
			strconv.Itoa(i / m.Columns()),
			strconv.FormatUint(uint64(c), 10),
			strconv.FormatUint(uint64(c.SheetIndex()), 10),
			fmt.Sprintf("%d,%d", t.Dest.X, t.Dest.Y),
			degrees(t.Rotation),
			t.Mirror.String(),
		})
	})
	return rows
}

// renderTable lays rows out under headers.
func renderTable(headers []string, rows [][]string, plain bool) string {
	t := table.New().Headers(headers...).Rows(rows...)
	if plain {
		return t.Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return cellStyle }).
			String()
	}
	return t.Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && rows[row][len(rows[row])-1] == "-":
				return skipStyle
			default:
				return cellStyle
			}
		}).
		String()
}
