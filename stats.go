package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Stats describes how well a code table compresses one input sequence.
type Stats struct {
	// UncompressedBits is the cost of the raw sequence at 8 bits per
	// symbol.
	UncompressedBits int

	// CompressedBits is the total bit length of the coded sequence.
	CompressedBits int

	// PackedBytes is the whole-byte size of the coded sequence, including
	// the zero padding an encoder would add to the final byte.
	PackedBytes int64

	// Ratio is UncompressedBits divided by CompressedBits, or 0 for an
	// empty sequence.
	Ratio float64
}

// ComputeStats reports compression statistics for coding the given sequence
// with the given table.  Every distinct symbol of the sequence must have an
// entry in the table; a table generated from the same sequence always does.
// An empty sequence yields zero-valued Stats.
//
// The packed size is measured by streaming the codes through a bit writer
// into a byte counter; no encoded bytes are retained.
func ComputeStats(symbols []Symbol, table Table) Stats {
	var stats Stats
	if len(symbols) == 0 {
		return stats
	}

	var counter countingWriter
	bw := bitio.NewWriter(&counter)
	for _, sym := range symbols {
		hc, found := table[sym]
		assert.Assertf(found, "symbol %q has no code", sym)
		stats.CompressedBits += int(hc.Size)
		_ = bw.WriteBits(hc.Bits, hc.Size)
	}
	_ = bw.Close()

	stats.UncompressedBits = len(symbols) * 8
	stats.PackedBytes = int64(counter)
	stats.Ratio = float64(stats.UncompressedBits) / float64(stats.CompressedBits)
	return stats
}

type countingWriter int64

func (w *countingWriter) Write(p []byte) (int, error) {
	*w += countingWriter(len(p))
	return len(p), nil
}

var _ io.Writer = (*countingWriter)(nil)
