package present

import (
	"fmt"
	"strings"
)

// ANSI styling used by Format.
const (
	Reset     = "\033[0m"
	Bold      = "\033[1m"
	Dim       = "\033[2m"
	Underline = "\033[4m"

	Black   = "\033[30m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"

	BgGreen = "\033[42m"
	BgBlue  = "\033[44m"
)

// BorderStyle names the characters used to draw a table's borders.
type BorderStyle struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	TopT        string
	BottomT     string
	LeftT       string
	RightT      string
	Cross       string
	Horizontal  string
	Vertical    string
}

var (
	DefaultStyle = BorderStyle{
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		TopT: "+", BottomT: "+", LeftT: "+", RightT: "+", Cross: "+",
		Horizontal: "-", Vertical: "|",
	}

	FancyStyle = BorderStyle{
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		TopT: "╦", BottomT: "╩", LeftT: "╠", RightT: "╣", Cross: "╬",
		Horizontal: "═", Vertical: "║",
	}

	RoundedStyle = BorderStyle{
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		TopT: "┬", BottomT: "┴", LeftT: "├", RightT: "┤", Cross: "┼",
		Horizontal: "─", Vertical: "│",
	}
)

// FormatOptions controls Table.Format's rendering.
type FormatOptions struct {
	Style           BorderStyle
	HeaderStyle     string
	HeaderColor     string
	BorderColor     string
	AlternateRows   bool
	AlternateColor  string
	NumberedRows    bool
	MaxColumnWidth  int
	Alignment       []string
	FooterSeparator bool
	WrapText        bool
	HideHeaders     bool
	CompactBorders  bool
}

// DefaultFormat returns sensible interactive-terminal defaults.
func DefaultFormat() FormatOptions {
	return FormatOptions{
		Style:          RoundedStyle,
		HeaderStyle:    Bold,
		HeaderColor:    Cyan,
		BorderColor:    Blue,
		AlternateRows:  true,
		AlternateColor: Dim,
		MaxColumnWidth: 50,
		WrapText:       true,
	}
}

// Format renders the table as a bordered, optionally colorized grid.
func (t *Table) Format(opts FormatOptions) string {
	if len(t.Headers) == 0 {
		return "empty table"
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if opts.MaxColumnWidth > 0 && len(cell) > opts.MaxColumnWidth {
				if len(cell) > widths[i] {
					widths[i] = opts.MaxColumnWidth
				}
			} else if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	writeHorizontalBorder(&sb, widths, opts, true)
	sb.WriteString("\n")

	if !opts.HideHeaders {
		sb.WriteString(opts.Style.Vertical)
		if opts.NumberedRows {
			sb.WriteString(" # ")
			sb.WriteString(opts.Style.Vertical)
		}
		for i, h := range t.Headers {
			sb.WriteString(" ")
			cell := FormatCell(h, widths[i], getAlignment(opts.Alignment, i, "center"))
			sb.WriteString(opts.HeaderColor + opts.HeaderStyle + cell + Reset)
			sb.WriteString(" " + opts.Style.Vertical)
		}
		sb.WriteString("\n")
		writeHorizontalBorder(&sb, widths, opts, false)
		sb.WriteString("\n")
	}

	for rowIdx, row := range t.Rows {
		if opts.WrapText {
			wrappedCells := make([][]string, len(row))
			maxLines := 1
			for i, cell := range row {
				if opts.MaxColumnWidth > 0 && len(cell) > opts.MaxColumnWidth {
					wrappedCells[i] = WrapText(cell, opts.MaxColumnWidth)
					if len(wrappedCells[i]) > maxLines {
						maxLines = len(wrappedCells[i])
					}
				} else {
					wrappedCells[i] = []string{cell}
				}
			}

			for lineIdx := 0; lineIdx < maxLines; lineIdx++ {
				writeRowBorder(&sb, opts)
				if opts.NumberedRows {
					if lineIdx == 0 {
						sb.WriteString(fmt.Sprintf(" %2d ", rowIdx+1))
					} else {
						sb.WriteString("    ")
					}
					sb.WriteString(opts.Style.Vertical)
				}

				for i := range row {
					sb.WriteString(" ")
					if lineIdx < len(wrappedCells[i]) {
						cell := FormatCell(wrappedCells[i][lineIdx], widths[i], getAlignment(opts.Alignment, i, "left"))
						if opts.AlternateRows && rowIdx%2 == 1 {
							cell = opts.AlternateColor + cell + Reset
						}
						sb.WriteString(cell)
					} else {
						sb.WriteString(strings.Repeat(" ", widths[i]))
					}
					sb.WriteString(" " + opts.Style.Vertical)
				}
				sb.WriteString("\n")
			}
		} else {
			writeRowBorder(&sb, opts)
			if opts.NumberedRows {
				sb.WriteString(fmt.Sprintf(" %2d ", rowIdx+1))
				sb.WriteString(opts.Style.Vertical)
			}

			for i, cell := range row {
				sb.WriteString(" ")
				formattedCell := FormatCell(cell, widths[i], getAlignment(opts.Alignment, i, "left"))
				if opts.AlternateRows && rowIdx%2 == 1 {
					formattedCell = opts.AlternateColor + formattedCell + Reset
				}
				sb.WriteString(formattedCell)
				sb.WriteString(" " + opts.Style.Vertical)
			}
			sb.WriteString("\n")
		}
	}

	writeHorizontalBorder(&sb, widths, opts, false)
	sb.WriteString("\n")

	return sb.String()
}

func writeHorizontalBorder(sb *strings.Builder, widths []int, opts FormatOptions, isTop bool) {
	if isTop {
		sb.WriteString(opts.BorderColor + opts.Style.TopLeft + Reset)
	} else {
		sb.WriteString(opts.BorderColor + opts.Style.BottomLeft + Reset)
	}

	if opts.NumberedRows {
		sb.WriteString(opts.BorderColor + strings.Repeat(opts.Style.Horizontal, 4) + Reset)
		if isTop {
			sb.WriteString(opts.BorderColor + opts.Style.TopT + Reset)
		} else {
			sb.WriteString(opts.BorderColor + opts.Style.BottomT + Reset)
		}
	}

	for i, width := range widths {
		sb.WriteString(opts.BorderColor + strings.Repeat(opts.Style.Horizontal, width+2) + Reset)
		if i < len(widths)-1 {
			if isTop {
				sb.WriteString(opts.BorderColor + opts.Style.TopT + Reset)
			} else {
				sb.WriteString(opts.BorderColor + opts.Style.BottomT + Reset)
			}
		}
	}

	if isTop {
		sb.WriteString(opts.BorderColor + opts.Style.TopRight + Reset)
	} else {
		sb.WriteString(opts.BorderColor + opts.Style.BottomRight + Reset)
	}
}

func writeRowBorder(sb *strings.Builder, opts FormatOptions) {
	sb.WriteString(opts.BorderColor + opts.Style.Vertical + Reset)
}

// FormatCell pads or truncates content to width under the given
// alignment ("left", "right", or "center").
func FormatCell(content string, width int, alignment string) string {
	if len(content) > width {
		if width < 3 {
			return content[:width]
		}
		return content[:width-3] + "..."
	}

	switch alignment {
	case "right":
		return fmt.Sprintf("%*s", width, content)
	case "center":
		padding := width - len(content)
		leftPad := padding / 2
		rightPad := padding - leftPad
		return fmt.Sprintf("%*s%s%*s", leftPad, "", content, rightPad, "")
	default:
		return fmt.Sprintf("%-*s", width, content)
	}
}

func getAlignment(alignments []string, index int, defaultAlign string) string {
	if index < len(alignments) {
		return strings.ToLower(alignments[index])
	}
	return defaultAlign
}

// WrapText breaks text into lines no wider than width, splitting on word
// boundaries and forcing a break inside any word longer than width.
func WrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	line := ""
	words := strings.Fields(text)

	for _, word := range words {
		if len(line)+len(word)+1 <= width {
			if line != "" {
				line += " "
			}
			line += word
		} else {
			if line != "" {
				lines = append(lines, line)
			}
			if len(word) > width {
				for len(word) > width {
					lines = append(lines, word[:width])
					word = word[width:]
				}
				line = word
			} else {
				line = word
			}
		}
	}

	if line != "" {
		lines = append(lines, line)
	}

	return lines
}
