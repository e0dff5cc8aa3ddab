package pick

import "strings"

// Namer maps a source file name to the base name shared by the three outputs.
type Namer func(fileName string) string

// StripDots removes every '.' from the file name, so "invoice.v2.jpg" becomes
// "invoicev2jpg". Names that differ only in their dots collide.
func StripDots(fileName string) string {
	return strings.ReplaceAll(fileName, ".", "")
}
