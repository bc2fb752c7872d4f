package krutidev

import (
	"sync"

	"github.com/npillmayer/lipi/scheme"
	"golang.org/x/text/language"
)

// Multi-glyph sequences. They have to be in the table alongside their
// single-glyph prefixes; longest-match lookup keeps them from being
// shadowed (a shortest-first matcher would turn every "{k" into a
// broken "क्ष्" + "ा").
var multi = [][2]string{
	// nukta forms, the legacy fonts compose them with '+'
	{"[+k", "ख़"}, {"[+", "ख़्"}, {"x+", "ग़"}, {"T+", "ज़्"}, {"t+", "ज़"},
	{"M+", "ड़"}, {"<+", "ढ़"}, {"Q+", "फ़"}, {";+", "य़"}, {"j+", "ऱ"},
	{"u+", "ऩ"}, {"¶+", "फ़्"}, {"d+", "क़"},

	// consonant glyphs composed of a dead form plus the 'k' stem
	{"[k", "ख"}, {"Xk", "ग"}, {"Dk", "क"}, {"?k", "घ"}, {"Pk", "च"},
	{"Tk", "ज"}, {"Fk", "थ"}, {"/k", "ध"}, {"'k", "श"}, {"\"k", "ष"},
	{"Hk", "भ"}, {".k", "ण"},

	// independent vowels built from glyph pieces
	{"vks", "ओ"}, {"vkS", "औ"}, {"vk", "आ"}, {"bZ", "ई"}, {",s", "ऐ"},

	// conjuncts
	{"{k", "क्ष"}, {"=k", "त्र"}, {"Ùk", "त्त"},
	{"nzZ", "र्द्र"}, {")Z", "र्द्ध"},
	{"Nî", "छ्य"}, {"Vî", "ट्य"}, {"Bî", "ठ्य"}, {"Mî", "ड्य"}, {"<î", "ढ्य"},
	{"Vª", "ट्र"}, {"Mª", "ड्र"}, {"<ªª", "ढ्र"}, {"Nª", "छ्र"},
	{"xz", "ग्र"}, {"ºz", "ह्र"},
	{"èQs", "द्ध"},

	// frequent fixed sequences
	{"pkS", "चौ"}, {"=kk", "त्रा"}, {"f=k", "त्रि"},
}

// Single glyphs. The first group holds high Latin-1 code points ranked
// by frequency in digitized parliamentary text; they stem from Divyae
// and 4CGandhi style fonts and show up embedded in Kruti Dev documents.
var single = [][2]string{
	{"É", "ा"}, {"®", "र"}, {"Ê", "ि"}, {"à", "म"}, {"º", "स"},
	{"ª", "य"}, {"Ò", "ी"}, {"ã", "े"}, {"å", "न"}, {"è", "ु"},
	{"¤", "ब"}, {"´", "ृ"}, {"Æ", "ं"}, {"Ö", "ु"}, {"¶", "फ्"},
	{"£", "भ"}, {"Ç", "र्"}, {"Ú", "ूं"}, {"½", "ल"}, {"­", "ष"},
	{"Ó", "ों"}, {"â", "ू"}, {"ó", "ृ"}, {"Å", "ऊ"}, {"§", "ू"},
	{"Ë", "ू"}, {"Î", "ी"}, {"Ã", "ई"}, {"Ì", "ि"}, {"ß", "्"},
	{"Í", "िं"}, {"Ô", "ौ"}, {"È", "इ"}, {"°", "॰"}, {"æ", "द्र"},
	{"ì", "ड्ड"}, {"ô", "क्क"}, {"é", "न्न"}, {"ä", "क्त"},

	// consonants, mostly paired: one key for the live form, a shifted
	// or neighboring key for the dead (halant) form
	{"d", "क"}, {"D", "क्"}, {"[", "ख्"}, {"x", "ग"}, {"X", "ग्"},
	{"Ä", "घ"}, {"?", "घ्"}, {"³", "ङ"},
	{"p", "च"}, {"P", "च्"}, {"N", "छ"}, {"t", "ज"}, {"T", "ज्"},
	{">", "झ"}, {"÷", "झ्"}, {"¥", "ञ"},
	{"V", "ट"}, {"B", "ठ"}, {"M", "ड"}, {"<", "ढ"}, {".", "ण्"},
	{"r", "त"}, {"R", "त्"}, {"F", "थ्"}, {")", "द्ध"}, {"n", "द"},
	{"/", "ध्"}, {"u", "न"}, {"U", "न्"},
	{"i", "प"}, {"I", "प्"}, {"Q", "फ"}, {"c", "ब"}, {"C", "ब्"},
	{"H", "भ्"}, {"e", "म"}, {"E", "म्"},
	{";", "य"}, {"¸", "य्"}, {"j", "र"}, {"y", "ल"}, {"Y", "ल्"},
	{"G", "ळ"}, {"o", "व"}, {"O", "व्"},
	{"\"", "ष्"}, {"l", "स"}, {"L", "स्"}, {"g", "ह"},

	// dependent vowel signs
	{"k", "ा"}, {"s", "ी"}, {"h", "ु"}, {"w", "ू"}, {"S", "े"}, {"a", "ै"},
	{"¨", "ॅ"}, {"‚", "ॉ"},

	// modifiers
	{"^", "ँ"}, {"~", "्"}, {"Z", "़"},

	// conjunct glyphs
	{"{", "क्ष्"}, {"=", "त्र्"}, {"«", "त्र्"},
	{"K", "ज्ञ"}, {"J", "श्र"}, {"Ø", "क्र"}, {"Ý", "फ्र"}, {"ç", "प्र"},
	{"Á", "प्र"}, {"í", "द्द"}, {"|", "द्य"}, {"}", "द्व"},

	// ligatures with hidden vowels
	{"#", "रु"}, {":", "रू"}, {"–", "दृ"}, {"—", "कृ"},

	// independent vowels
	{"v", "अ"}, {"b", "इ"}, {"m", "उ"}, {",", "ए"}, {"_", "ऋ"},

	// digits
	{"0", "०"}, {"1", "१"}, {"2", "२"}, {"3", "३"}, {"4", "४"},
	{"5", "५"}, {"6", "६"}, {"7", "७"}, {"8", "८"}, {"9", "९"},

	// punctuation
	{"ñ", "॰"}, {"*", "।"},
	{"'", "'"},
}

var table *scheme.Table

var buildOnce sync.Once

// Table returns the compiled Kruti Dev mapping table.
func Table() *scheme.Table {
	buildOnce.Do(build)
	return table
}

func build() {
	t := scheme.NewTable("krutidev")
	t.SetFonts("Kruti Dev 010", "Kruti Dev 011", "Kruti Dev 021",
		"Divyae", "4CGandhi")
	deva, _ := language.ParseScript("Deva")
	t.SetLanguage(language.Hindi, deva)
	for _, p := range multi {
		t.Add(p[0], p[1])
	}
	for _, p := range single {
		t.Add(p[0], p[1])
	}
	// the short-i matra, rendered left of its consonant by the fonts
	t.AddClass("f", "ि", scheme.PreMatra)
	if err := t.Compile(); err != nil {
		panic("cannot build Kruti Dev mapping table: " + err.Error())
	}
	table = t
}

func init() {
	scheme.GlobalRegistry().Store(Table())
}
