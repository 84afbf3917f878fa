// Command huffcodes reads a text file, derives the Huffman code for its
// symbols, and prints the code table together with compression statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/ttappr/huffman"
)

var topN = flag.Int("top", 0, "limit the table dump to the N most frequent symbols (0 = all)")

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffcodes: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: huffcodes [-top N] FILE")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	symbols := huffman.SymbolsFromString(string(data))
	freqs := huffman.CountFrequencies(symbols)

	root, err := huffman.BuildTree(freqs)
	if err != nil {
		log.Fatal(err)
	}
	table, err := huffman.GenerateCodes(root)
	if err != nil {
		log.Fatal(err)
	}

	dumped := table
	if *topN > 0 {
		dumped = topSymbols(freqs, table, *topN)
	}
	if _, err := dumped.Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}

	stats := huffman.ComputeStats(symbols, table)
	fmt.Printf("uncompressed: %d bits\n", stats.UncompressedBits)
	fmt.Printf("compressed:   %d bits (%d bytes packed)\n", stats.CompressedBits, stats.PackedBytes)
	fmt.Printf("ratio:        %.3f\n", stats.Ratio)
}

// topSymbols returns the sub-table holding the n most frequent symbols,
// ties broken by ascending symbol order.
func topSymbols(freqs map[huffman.Symbol]int, table huffman.Table, n int) huffman.Table {
	symbols := make([]huffman.Symbol, 0, len(freqs))
	for sym := range freqs {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool {
		a, b := symbols[i], symbols[j]
		if freqs[a] != freqs[b] {
			return freqs[a] > freqs[b]
		}
		return a < b
	})

	if n > len(symbols) {
		n = len(symbols)
	}
	sub := make(huffman.Table, n)
	for _, sym := range symbols[:n] {
		sub[sym] = table[sym]
	}
	return sub
}
