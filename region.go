package enumgen

import "strings"

// Region is a target file split around its generated region.
type Region struct {
	// Preamble runs from the start of the file through the begin marker line.
	Preamble string

	// Body is the previously generated text between the markers.
	Body string

	// Trailer runs from the end marker line through the end of the file.
	Trailer string
}

// ParseRegion splits text at the begin and end marker lines. A marker line
// starts with the comment sentinel and contains the marker phrase.
// Returns EMALFORMED unless text holds exactly one begin marker followed by
// one end marker.
func ParseRegion(text string, markers MarkerSpec) (*Region, error) {
	lines := strings.SplitAfter(text, "\n")
	begin, end := -1, -1
	for i, line := range lines {
		switch {
		case isMarker(line, markers.Comment, markers.Begin):
			if begin >= 0 {
				return nil, Errorf(EMALFORMED, "more than one generated region (second begin marker on line %d)", i+1)
			}
			begin = i
		case isMarker(line, markers.Comment, markers.End):
			if begin < 0 {
				return nil, Errorf(EMALFORMED, "end marker on line %d precedes begin marker", i+1)
			}
			if end >= 0 {
				return nil, Errorf(EMALFORMED, "more than one generated region (second end marker on line %d)", i+1)
			}
			end = i
		}
	}
	if begin < 0 {
		return nil, Errorf(EMALFORMED, "missing begin marker %q", markers.Begin)
	}
	if end < 0 {
		return nil, Errorf(EMALFORMED, "missing end marker %q", markers.End)
	}
	return &Region{
		Preamble: strings.Join(lines[:begin+1], ""),
		Body:     strings.Join(lines[begin+1:end], ""),
		Trailer:  strings.Join(lines[end:], ""),
	}, nil
}

// Splice returns the full file text with the body replaced by notice
// followed by lines joined with newlines.
func (r *Region) Splice(notice string, lines []string) string {
	var b strings.Builder
	b.WriteString(r.Preamble)
	b.WriteString(notice)
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(r.Trailer)
	return b.String()
}

// Notice returns the auto-generation notice naming the generating tool.
func Notice(comment, generator string) string {
	return "\n" + comment + " This section is generated by the script '" + generator + "'.\n\n"
}

func isMarker(line, comment, phrase string) bool {
	return strings.HasPrefix(line, comment) && strings.Contains(line, phrase)
}
