package enumgen

import (
	"regexp"
	"strconv"
	"strings"
)

// Member is one named, integer-valued entry of an enum.
type Member struct {
	Name  string `json:"name"`
	Value int    `json:"value"`

	// Description is the free text documented after the value.
	// Empty means the member has no description.
	Description string `json:"description,omitempty"`
}

// Enum is a documented enumeration. Members keep documentation order.
type Enum struct {
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

// ParseFailure records an enum that was abandoned because one of its
// members could not be parsed.
type ParseFailure struct {
	Enum   string `json:"enum"`
	Member string `json:"member"`
}

// ExtractResult holds the enums found in one document.
type ExtractResult struct {
	// Enums are the completely parsed enums in document order.
	Enums []*Enum

	// Failures are the allowlisted enums that were dropped.
	Failures []ParseFailure
}

// Extractor finds enum listings in a single documentation page.
type Extractor interface {
	// Extract parses the document and returns every allowlisted enum whose
	// members all parse. Enums rejected by allowed are skipped silently.
	// Returns EINVALID if the document cannot be read as a tree at all.
	Extract(document string, allowed func(name string) bool) (*ExtractResult, error)
}

var (
	enumHeaderRe  = regexp.MustCompile(`(?i)^\s*enum\s+(\w+)\s*\{`)
	memberValueRe = regexp.MustCompile(`^\s*=\s+(-?[0-9]+)\s*(?::\s*(.*))?`)
)

// ParseEnumHeader returns the enum name declared at the start of a
// flattened enum listing such as "Enum xmlErrorLevel {".
func ParseEnumHeader(text string) (string, bool) {
	m := enumHeaderRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseMember builds a member from its name and the text trailing the name
// in the listing, e.g. " = 1 : A simple warning\n".
func ParseMember(name, tail string) (Member, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Member{}, false
	}
	m := memberValueRe.FindStringSubmatch(tail)
	if m == nil {
		return Member{}, false
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return Member{}, false
	}
	return Member{Name: name, Value: value, Description: m[2]}, true
}

// EnumBuilder accumulates the members of one listing. The first member that
// fails to parse poisons the whole enum.
type EnumBuilder struct {
	name    string
	members []Member
	failed  string
	broken  bool
}

// NewEnumBuilder returns a builder for the named enum.
func NewEnumBuilder(name string) *EnumBuilder {
	return &EnumBuilder{name: name}
}

// Add parses one member. It returns false once the enum is abandoned.
func (b *EnumBuilder) Add(name, tail string) bool {
	if b.broken {
		return false
	}
	m, ok := ParseMember(name, tail)
	if !ok {
		b.broken = true
		b.failed = strings.TrimSpace(name)
		return false
	}
	b.members = append(b.members, m)
	return true
}

// Finish stores the outcome in result: the enum if every member parsed,
// a ParseFailure otherwise.
func (b *EnumBuilder) Finish(result *ExtractResult) {
	if b.broken {
		result.Failures = append(result.Failures, ParseFailure{Enum: b.name, Member: b.failed})
		return
	}
	result.Enums = append(result.Enums, &Enum{Name: b.name, Members: b.members})
}
