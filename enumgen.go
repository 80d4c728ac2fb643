// Package enumgen regenerates source files that mirror enum constants
// published in HTML API documentation. It extracts enum listings from the
// documentation, renders them as a declaration listing and as a compact,
// chunked constant table, and splices the result into the generated region
// of existing target files.
//
// This package contains domain types, rendering rules and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, etree/,
// yaml/).
package enumgen
