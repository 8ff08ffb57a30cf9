// Package linebreak breaks text into lines that fit a terminal width.
//
// Widths are measured in terminal columns, so East Asian wide characters
// count as two and combining marks as none. Lines break at spaces and at
// the other break opportunities of the Unicode line breaking algorithm,
// which lets Chinese and Japanese text wrap without spaces. Runs of
// whitespace, line feeds included, collapse into a single space.
//
//	it := linebreak.New(text, 80)
//	it.SetIndent("    ")
//	for line := range it.All() {
//		fmt.Println(line)
//	}
//
// The width of the attached terminal can be read with the term package.
package linebreak
