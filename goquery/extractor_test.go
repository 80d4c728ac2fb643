package goquery_test

import (
	"testing"

	"github.com/fwojciec/enumgen"
	"github.com/fwojciec/enumgen/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allowAll(string) bool { return true }

const errorPage = `<!DOCTYPE html>
<html>
<body>
<h2>Synopsis</h2>
<pre class="programlisting">typedef enum <a href="#xmlErrorLevel">xmlErrorLevel</a>;
typedef struct _xmlError <a href="#xmlError">xmlError</a>;
</pre>
<h3>Enum <a name="xmlErrorLevel" id="xmlErrorLevel">xmlErrorLevel</a></h3>
<pre class="programlisting">Enum xmlErrorLevel {
    <a name="XML_ERR_NONE" id="XML_ERR_NONE">XML_ERR_NONE</a> = 0
    <a name="XML_ERR_WARNING" id="XML_ERR_WARNING">XML_ERR_WARNING</a> = 1 : A simple warning
    <a name="XML_ERR_ERROR" id="XML_ERR_ERROR">XML_ERR_ERROR</a> = 2 : A recoverable error
    <a name="XML_ERR_FATAL" id="XML_ERR_FATAL">XML_ERR_FATAL</a> = 3 : A fatal error
}
</pre>
<h3>Enum <a name="xmlErrorDomain" id="xmlErrorDomain">xmlErrorDomain</a></h3>
<pre class="programlisting">Enum xmlErrorDomain {
    <a name="XML_FROM_NONE" id="XML_FROM_NONE">XML_FROM_NONE</a> = 0
    <a name="XML_FROM_PARSER" id="XML_FROM_PARSER">XML_FROM_PARSER</a> = 1 : The XML parser
}
</pre>
<h3>Structure <a name="xmlError" id="xmlError">xmlError</a></h3>
<pre class="programlisting">Structure xmlError
struct _xmlError {
    int domain : What part of the library raised this error
}</pre>
<pre class="example">Enum xmlIgnored {
    <a>XML_IGNORED</a> = 1
}
</pre>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts members in documentation order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract(errorPage, allowAll)

		require.NoError(t, err)
		assert.Empty(t, result.Failures)
		require.Len(t, result.Enums, 2)

		assert.Equal(t, "xmlErrorLevel", result.Enums[0].Name)
		assert.Equal(t, []enumgen.Member{
			{Name: "XML_ERR_NONE", Value: 0},
			{Name: "XML_ERR_WARNING", Value: 1, Description: "A simple warning"},
			{Name: "XML_ERR_ERROR", Value: 2, Description: "A recoverable error"},
			{Name: "XML_ERR_FATAL", Value: 3, Description: "A fatal error"},
		}, result.Enums[0].Members)

		assert.Equal(t, "xmlErrorDomain", result.Enums[1].Name)
		assert.Len(t, result.Enums[1].Members, 2)
	})

	t.Run("skips enums outside the allowlist without diagnostics", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract(errorPage, func(name string) bool { return name == "xmlErrorDomain" })

		require.NoError(t, err)
		require.Len(t, result.Enums, 1)
		assert.Equal(t, "xmlErrorDomain", result.Enums[0].Name)
		assert.Empty(t, result.Failures)
	})

	t.Run("ignores blocks outside the selector", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract(errorPage, func(name string) bool { return name == "xmlIgnored" })

		require.NoError(t, err)
		assert.Empty(t, result.Enums)
	})

	t.Run("abandons the whole enum when a member fails to parse", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<pre class="programlisting">Enum xmlParserErrors {
    <a>XML_ERR_OK</a> = 0
    <a>XML_ERR_INTERNAL_ERROR</a> = 1
    <a>XML_ERR_NO_MEMORY</a> = XML_ERR_INTERNAL_ERROR
    <a>XML_ERR_DOCUMENT_START</a> = 3
    <a>XML_ERR_DOCUMENT_EMPTY</a> = 4
}
</pre>
<pre class="programlisting">Enum xmlErrorLevel {
    <a>XML_ERR_NONE</a> = 0
}
</pre>
</body></html>`
		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract(html, allowAll)

		require.NoError(t, err)
		require.Len(t, result.Enums, 1)
		assert.Equal(t, "xmlErrorLevel", result.Enums[0].Name)
		assert.Equal(t, []enumgen.ParseFailure{
			{Enum: "xmlParserErrors", Member: "XML_ERR_NO_MEMORY"},
		}, result.Failures)
	})

	t.Run("stops the tail at a comment", func(t *testing.T) {
		t.Parallel()

		html := `<pre class="programlisting">Enum xmlErrorLevel {
    <a>XML_ERR_NONE</a> = 0 : nothing<!-- none --> went wrong
}
</pre>`
		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract(html, allowAll)

		require.NoError(t, err)
		require.Len(t, result.Enums, 1)
		assert.Equal(t, 0, result.Enums[0].Members[0].Value)
		assert.Equal(t, "nothing", result.Enums[0].Members[0].Description)
	})

	t.Run("returns nothing for pages without listings", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor("pre.programlisting", "Enum")

		result, err := e.Extract("<html><body><p>Nothing here</p></body></html>", allowAll)

		require.NoError(t, err)
		assert.Empty(t, result.Enums)
		assert.Empty(t, result.Failures)
	})
}
