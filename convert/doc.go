/*
Package convert turns legacy-font encoded Devanagari text into Unicode.

Pre-Unicode Hindi fonts store Devanagari shapes at ASCII and Latin-1
code points; a file that renders as "भारत सरकार" with Kruti Dev
installed really contains "Hkkjr ljdkj". Conversion scans such text
left to right, greedily matching the longest source glyph sequence the
mapping table knows at each position, and emits the Unicode target
sequences. Glyphs the table does not cover pass through verbatim, so
converting a document never loses text.

One wrinkle keeps this from being plain string substitution: legacy
fonts place the short-i matra visually before the consonant it belongs
to, while Unicode stores it after. The converter holds such pre-matra
glyphs and splices them in behind the next full consonant it emits
(half forms keep the matra pending, so clusters like स्थि come out
right). Held matras are appended at the end of the input if no
consonant ever follows.

Conversion is a pure function of input and table: no internal state,
no errors, identical output for identical input. Tables are immutable
once compiled, so a single table serves any number of goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lipi.convert'
func tracer() tracing.Trace {
	return tracing.Select("lipi.convert")
}
