package enumgen

import "path/filepath"

// Parser names accepted in Config.Parser.
const (
	ParserHTML  = "html"
	ParserXHTML = "xhtml"
)

// EnumSpec configures how one enum is rendered.
type EnumSpec struct {
	// Name is the documented enum name.
	Name string `yaml:"name"`

	// Variable is the identifier the compact table is bound to.
	Variable string `yaml:"variable"`

	// Prefix is stripped from member names in the compact table.
	Prefix string `yaml:"prefix"`
}

// DocumentSpec names a documentation page and the enums to read from it.
type DocumentSpec struct {
	File string `yaml:"file"`

	// Enums is the allowlist for this page. Empty means every configured enum.
	Enums []string `yaml:"enums,omitempty"`
}

// TargetSpec describes one generated file.
type TargetSpec struct {
	Path string `yaml:"path"`

	// Header is emitted as the first body line. Only used by declarations.
	Header string `yaml:"header,omitempty"`
}

// MarkerSpec defines the lines delimiting the generated region.
type MarkerSpec struct {
	Comment string `yaml:"comment"`
	Begin   string `yaml:"begin"`
	End     string `yaml:"end"`
}

// Config is the operator configuration for one generation run.
type Config struct {
	// Generator is the tool name written into the auto-generation notice.
	Generator string `yaml:"generator"`

	// HTMLDir is the documentation directory relative to the docs path.
	HTMLDir string `yaml:"html_dir"`

	Parser string `yaml:"parser"`

	// Selector is the CSS selector of candidate blocks for the html parser.
	Selector string `yaml:"selector"`

	// Path is the etree path of candidate blocks for the xhtml parser.
	Path string `yaml:"path"`

	// Marker must appear in a block's text for it to be parsed as an enum.
	Marker string `yaml:"marker"`

	Documents []DocumentSpec `yaml:"documents"`

	// Enums defines which enums are rendered and in what order.
	Enums []EnumSpec `yaml:"enums"`

	Declarations TargetSpec `yaml:"declarations"`
	Table        TargetSpec `yaml:"table"`
	Markers      MarkerSpec `yaml:"markers"`
}

// DefaultConfig returns the configuration for the libxml2 error constants
// used by lxml.
func DefaultConfig() *Config {
	return &Config{
		Generator: "enumgen",
		HTMLDir:   "html",
		Parser:    ParserHTML,
		Selector:  "pre.programlisting",
		Path:      "//pre[@class='programlisting']",
		Marker:    "Enum",
		Documents: []DocumentSpec{
			{File: "libxml-xmlerror.html"},
			{File: "libxml-relaxng.html"},
		},
		Enums: []EnumSpec{
			{Name: "xmlErrorLevel", Variable: "__ERROR_LEVELS", Prefix: "XML_ERR_"},
			{Name: "xmlErrorDomain", Variable: "__ERROR_DOMAINS", Prefix: "XML_FROM_"},
			{Name: "xmlParserErrors", Variable: "__PARSER_ERROR_TYPES", Prefix: "XML_"},
			{Name: "xmlRelaxNGValidErr", Variable: "__RELAXNG_ERROR_TYPES", Prefix: "XML_"},
		},
		Declarations: TargetSpec{
			Path:   filepath.Join("src", "lxml", "includes", "xmlerror.pxd"),
			Header: `cdef extern from "libxml/xmlerror.h":`,
		},
		Table: TargetSpec{
			Path: filepath.Join("src", "lxml", "xmlerror.pxi"),
		},
		Markers: MarkerSpec{
			Comment: "#",
			Begin:   "BEGIN: GENERATED CONSTANTS",
			End:     "END: GENERATED CONSTANTS",
		},
	}
}

// Validate returns an error if the configuration cannot drive a run.
func (c *Config) Validate() error {
	if c.Generator == "" {
		return Errorf(EINVALID, "generator name required")
	}
	if c.Parser != ParserHTML && c.Parser != ParserXHTML {
		return Errorf(EINVALID, "unknown parser %q (want %q or %q)", c.Parser, ParserHTML, ParserXHTML)
	}
	if c.Parser == ParserHTML && c.Selector == "" {
		return Errorf(EINVALID, "block selector required")
	}
	if c.Parser == ParserXHTML && c.Path == "" {
		return Errorf(EINVALID, "block path required")
	}
	if len(c.Documents) == 0 {
		return Errorf(EINVALID, "at least one document required")
	}
	for _, d := range c.Documents {
		if d.File == "" {
			return Errorf(EINVALID, "document file name required")
		}
	}
	if len(c.Enums) == 0 {
		return Errorf(EINVALID, "at least one enum required")
	}
	seen := make(map[string]bool, len(c.Enums))
	for _, e := range c.Enums {
		if e.Name == "" {
			return Errorf(EINVALID, "enum name required")
		}
		if e.Variable == "" {
			return Errorf(EINVALID, "enum %q: variable required", e.Name)
		}
		if seen[e.Name] {
			return Errorf(EINVALID, "enum %q configured twice", e.Name)
		}
		seen[e.Name] = true
	}
	if c.Declarations.Path == "" || c.Table.Path == "" {
		return Errorf(EINVALID, "declarations and table paths required")
	}
	if c.Markers.Comment == "" || c.Markers.Begin == "" || c.Markers.End == "" {
		return Errorf(EINVALID, "region markers required")
	}
	return nil
}

// Allowlist returns the predicate selecting the enums to read from doc.
func (c *Config) Allowlist(doc DocumentSpec) func(string) bool {
	names := doc.Enums
	if len(names) == 0 {
		names = make([]string, 0, len(c.Enums))
		for _, e := range c.Enums {
			names = append(names, e.Name)
		}
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}
