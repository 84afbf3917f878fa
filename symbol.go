package huffman

// Symbol represents one atomic unit of an input text.  Symbols are backed by
// runes so that any Unicode text can be coded, but the package never
// interprets them beyond comparing for equality.
type Symbol rune

// SymbolsFromString converts a string into the sequence of Symbols it
// encodes, one Symbol per rune.
func SymbolsFromString(s string) []Symbol {
	symbols := make([]Symbol, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}
