/*
Package scheme implements mapping tables for legacy Indic font encodings.

A legacy encoding scheme maps glyph sequences of a pre-Unicode font
(Kruti Dev, Divyae, and the like, where Devanagari shapes sit on Latin
code points) to proper Unicode text. Tables are ordered collections of
entries, where an entry associates a source glyph sequence with a target
sequence and a glyph class. Compiled tables support greedy longest-match
lookup, the operation the conversion engine is built on.

Tables may be built programmatically, loaded from scheme files (see
ParseTable), or taken from a built-in sub-package such as
scheme/krutidev. A global registry associates tables with scheme names
and with the names of the legacy fonts they cover.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scheme

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'lipi.scheme'
func tracer() tracing.Trace {
	return tracing.Select("lipi.scheme")
}
