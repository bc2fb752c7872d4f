/*
Package html converts legacy-encoded text embedded in HTML documents.

Digitized government records rarely come as plain text. Debate
transcripts and gazette pages circulate as HTML, with the Devanagari
passages wrapped in legacy font markup:

	<font face="Kruti Dev 010">Hkkjr ljdkj</font>
	<span style="font-family: Kruti Dev 010">...</span>

Convert parses such a document, locates the legacy-font scoped
elements, converts their text with the mapping tables registered for
those fonts, and renders the document back, now carrying Unicode text.
InnerText extracts the text content of a (converted) document as a
cord, and QueryXPath addresses document parts by structure.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lipi.html'
func tracer() tracing.Trace {
	return tracing.Select("lipi.html")
}
