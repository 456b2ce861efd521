package roster

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	tableWidths = [4]int{4, 30, 20, 8}
	tableHeader = [4]string{"No", "Name", "Post", "Year"}
)

// center pads s to width with any odd extra space going to the right.
func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func tableBorder() string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range tableWidths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	return b.String()
}

// String renders the roster as an ASCII table.
func (s *Staff) String() string {
	line := tableBorder()
	rows := []string{
		line,
		fmt.Sprintf("| %s | %s | %s | %s |",
			center(tableHeader[0], tableWidths[0]),
			center(tableHeader[1], tableWidths[1]),
			center(tableHeader[2], tableWidths[2]),
			center(tableHeader[3], tableWidths[3]),
		),
		line,
	}
	for i, w := range s.workers {
		rows = append(rows, fmt.Sprintf("| %s | %-30s | %-20s | %8d |",
			center(fmt.Sprint(i+1), tableWidths[0]), w.Name, w.Post, w.Year))
	}
	rows = append(rows, line)
	return strings.Join(rows, "\n")
}
