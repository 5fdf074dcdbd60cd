package inflate

// Fixed tables from RFC 1951. These are read-only and built once at
// package init rather than recomputed per Inflater.

// codeLengthOrder is the order in which the HCLEN code-length-code lengths
// are transmitted, per RFC 1951 §3.2.7.
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// fixedLitLenLengths is the code length of every literal/length symbol in
// the fixed Huffman table of RFC 1951 §3.2.6.
var fixedLitLenLengths = func() []int {
	lengths := make([]int, 288)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	return lengths
}()

// fixedDistLengths is the code length of every distance symbol in the
// fixed 5-bit distance code of RFC 1951 §3.2.6.
var fixedDistLengths = func() []int {
	lengths := make([]int, 32)
	for i := range lengths {
		lengths[i] = 5
	}
	return lengths
}()

// lengthBase and lengthExtraBits are indexed by (code - 257) for
// literal/length codes 257-285, per RFC 1951 §3.2.5.
var lengthBase = [29]uint16{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase and distExtraBits are indexed by distance code 0-29, per
// RFC 1951 §3.2.5.
var distBase = [30]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

var distExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// fixedLitLenTable and fixedDistTable are the canonical Huffman tables for
// fixed-Huffman blocks (BTYPE=01), built once from the tables above.
var (
	fixedLitLenTable *huffmanTable
	fixedDistTable   *huffmanTable
)

func init() {
	var err error
	fixedLitLenTable, err = newHuffmanTable(fixedLitLenLengths)
	if err != nil {
		panic("inflate: invalid fixed literal/length table: " + err.Error())
	}
	fixedDistTable, err = newHuffmanTable(fixedDistLengths)
	if err != nil {
		panic("inflate: invalid fixed distance table: " + err.Error())
	}
}
