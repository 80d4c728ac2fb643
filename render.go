package enumgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Column widths of a declaration line.
const (
	DeclarationNameWidth  = 50
	DeclarationValueWidth = 7
)

// SegmentBudget is the exclusive ceiling on the packed length of one table
// segment. Some C compilers reject string literals of around 2048 bytes.
const SegmentBudget = 2040

// segmentOverhead accounts for the "\n\0" ending every packed line and segment.
const segmentOverhead = 2

const (
	typedefIndent  = "    "
	constantIndent = typedefIndent + typedefIndent
)

// tablePreamble opens the body of the table file.
const tablePreamble = `# Constants are stored in tuples of strings, for which Cython generates very
# efficient setup code.  To parse them, iterate over the tuples and parse each
# line in each string independently.  Tuples of strings (instead of a plain
# string) are required as some C-compilers of a certain well-known OS vendor
# cannot handle strings that are a few thousand bytes in length.
`

// DeclarationLine renders a member as an aligned "name = value # description"
// entry. The comment is omitted when the description is empty or only
// repeats the value.
func DeclarationLine(m Member) string {
	if m.Description != "" && m.Description != strconv.Itoa(m.Value) {
		return fmt.Sprintf("%-*s = %*d # %s", DeclarationNameWidth, m.Name, DeclarationValueWidth, m.Value, m.Description)
	}
	return fmt.Sprintf("%-*s = %*d", DeclarationNameWidth, m.Name, DeclarationValueWidth, m.Value)
}

// DisplayName strips prefix from name unless that would leave nothing.
func DisplayName(name, prefix string) string {
	if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
		return name[len(prefix):]
	}
	return name
}

// TableLine renders a member in the compact "name=value" form.
func TableLine(m Member, prefix string) string {
	return DisplayName(m.Name, prefix) + "=" + strconv.Itoa(m.Value)
}

// PackSegments groups lines into segments whose packed length, starting at 2
// and adding len(line)+2 per line, stays below budget. A line that would reach
// the budget opens a new segment. The result always holds at least one
// segment, which is empty when lines is empty.
func PackSegments(lines []string, budget int) [][]string {
	var segments [][]string
	var current []string
	length := segmentOverhead
	for _, line := range lines {
		cost := len(line) + segmentOverhead
		if len(current) > 0 && length+cost >= budget {
			segments = append(segments, current)
			current, length = nil, segmentOverhead
		}
		current = append(current, line)
		length += cost
	}
	return append(segments, current)
}

// PackedLength returns the packed length of a segment as counted by PackSegments.
func PackedLength(segment []string) int {
	n := segmentOverhead
	for _, line := range segment {
		n += len(line) + segmentOverhead
	}
	return n
}

// RenderDeclarations renders the typed declaration listing for specs, in
// spec order. Configured enums missing from enums are left out.
func RenderDeclarations(header string, specs []EnumSpec, enums map[string]*Enum) []string {
	var lines []string
	if header != "" {
		lines = append(lines, header)
	}
	for _, spec := range specs {
		e, ok := lookupEnum(spec, enums)
		if !ok {
			continue
		}
		lines = append(lines, typedefIndent+"ctypedef enum "+e.Name+":")
		for _, m := range e.Members {
			lines = append(lines, constantIndent+DeclarationLine(m))
		}
		lines = append(lines, "")
	}
	return lines
}

// RenderTable renders the chunked constant table for specs, in spec order.
// Each enum becomes a tuple of string literals bound to its variable.
// Configured enums missing from enums are left out.
func RenderTable(specs []EnumSpec, enums map[string]*Enum) []string {
	lines := []string{tablePreamble}
	for _, spec := range specs {
		e, ok := lookupEnum(spec, enums)
		if !ok {
			continue
		}

		entries := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			entries = append(entries, TableLine(m, spec.Prefix))
		}

		for i, segment := range PackSegments(entries, SegmentBudget) {
			if i == 0 {
				lines = append(lines, fmt.Sprintf(`cdef object %s = (u"""\`, spec.Variable))
			} else {
				lines = append(lines, `""",`, `u"""\`)
			}
			lines = append(lines, segment...)
		}
		lines = append(lines, `""",)`, "")
	}
	return lines
}

// MissingEnums returns the names of configured enums absent from enums,
// in spec order.
func MissingEnums(specs []EnumSpec, enums map[string]*Enum) []string {
	var names []string
	for _, spec := range specs {
		if _, ok := lookupEnum(spec, enums); !ok {
			names = append(names, spec.Name)
		}
	}
	return names
}

func lookupEnum(spec EnumSpec, enums map[string]*Enum) (*Enum, bool) {
	e, ok := enums[spec.Name]
	return e, ok && e != nil
}
