package huffman

// CountFrequencies counts the occurrences of each distinct Symbol in the
// given sequence.  Any sequence is valid input; an empty sequence yields an
// empty map.  The sum of all counts equals the sequence length.
//
// Counting is a single pass over the sequence, O(n).
func CountFrequencies(symbols []Symbol) map[Symbol]int {
	freqs := make(map[Symbol]int)
	for _, sym := range symbols {
		freqs[sym]++
	}
	return freqs
}

// CountString counts the symbol frequencies of the runes of s.
func CountString(s string) map[Symbol]int {
	return CountFrequencies(SymbolsFromString(s))
}
