// Package huffman computes prefix-free binary codes for the symbols of a
// text using Huffman's algorithm: it counts symbol frequencies, repeatedly
// merges the two lightest subtrees until a single tree remains, and assigns
// each symbol the bit string of its root-to-leaf path.
//
// The package constructs and reports codes; it does not serialize trees or
// encoded payloads, and it does not decode.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
