/*
Package krutidev provides the built-in mapping table for the Kruti Dev
family of legacy Devanagari fonts.

Kruti Dev is the most widespread of the pre-Unicode Hindi fonts; large
bodies of digitized government text (parliamentary debates, gazettes,
court records) are encoded with it. The table also carries glyphs
absorbed from related fonts of the same era (Divyae, 4CGandhi), which
corpus digitization regularly encounters mixed into Kruti Dev documents.

Importing the package registers the table with the global scheme
registry and makes it the default scheme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package krutidev
