/*
Package lipi converts text in legacy pre-Unicode Indian font encodings
to standard Unicode.

Before Unicode support became universal, Indian-language documents were
produced with 8-bit fonts that park Devanagari glyph shapes on ASCII
and Latin-1 code points (Kruti Dev, Divyae, 4CGandhi and friends). Vast
government archives, parliamentary debates and gazettes survive in
these encodings, and OCR pipelines digitizing them emit font-mapped
ASCII rather than readable text. lipi remaps such text to Unicode
Devanagari:

	out := lipi.Convert("Hkkjr ljdkj")   // "भारत सरकार"

Conversion is driven by mapping tables (package scheme), editable data
artifacts that contributors extend font by font. Package convert holds
the conversion engine, including the matra reordering Devanagari
needs. Package input/html converts whole legacy HTML documents, and
lipicli wraps everything into a command line tool.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lipi

import (
	"github.com/npillmayer/lipi/convert"
	"github.com/npillmayer/lipi/scheme/krutidev"
)

// Convert remaps legacy-font encoded text to Unicode Devanagari, using
// the built-in Kruti Dev mapping table. For other tables, debug
// collection or streaming, use package convert directly.
func Convert(input string) string {
	text, _ := convert.String(input, convert.Params{Scheme: krutidev.Table()})
	return text
}

// ConvertDebug is Convert, additionally reporting the input glyphs the
// mapping table did not cover.
func ConvertDebug(input string) (string, []convert.Missing) {
	return convert.String(input, convert.Params{Scheme: krutidev.Table(), Debug: true})
}
