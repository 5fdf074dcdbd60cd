package inflate

import "testing"

func TestNewHuffmanTableCanonical(t *testing.T) {
	// RFC 1951 §3.2.2's own example alphabet: lengths 3,3,3,3,3,2,4,4 for
	// symbols A-H give codes 010,011,100,101,110,00,1110,1111.
	lengths := []int{3, 3, 3, 3, 3, 2, 4, 4}
	table, err := newHuffmanTable(lengths)
	if err != nil {
		t.Fatal(err)
	}
	want := map[[2]int]int{
		{3, 0b010}: 0,
		{3, 0b011}: 1,
		{3, 0b100}: 2,
		{3, 0b101}: 3,
		{3, 0b110}: 4,
		{2, 0b00}:  5,
		{4, 0b1110}: 6,
		{4, 0b1111}: 7,
	}
	for k, wantSym := range want {
		sym, ok := table.lookup(k[0], uint32(k[1]))
		if !ok {
			t.Fatalf("code length %d value %b: not found", k[0], k[1])
		}
		if sym != wantSym {
			t.Fatalf("code length %d value %b: got symbol %d, want %d", k[0], k[1], sym, wantSym)
		}
	}
}

func TestNewHuffmanTableSameBitsDifferentLengthDistinct(t *testing.T) {
	// A 3-bit code 101 and what would be the bit pattern 0101 at length 4
	// must never be treated as the same key.
	short, err := newHuffmanTable([]int{3, 3, 3, 3, 3, 2, 4, 4})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := short.lookup(4, 0b0101); ok {
		t.Fatal("a 4-bit lookup must not match a 3-bit code's bit pattern")
	}
}

func TestNewHuffmanTableOversubscribedRejected(t *testing.T) {
	// Three symbols all claiming length 1 over-subscribe the 1-bit code
	// space, which only has room for two.
	if _, err := newHuffmanTable([]int{1, 1, 1}); err != ErrInvalidHuffman {
		t.Fatalf("want ErrInvalidHuffman, got %v", err)
	}
}

func TestNewHuffmanTableUndersubscribedRejected(t *testing.T) {
	if _, err := newHuffmanTable([]int{1, 2}); err != ErrInvalidHuffman {
		t.Fatalf("want ErrInvalidHuffman, got %v", err)
	}
}

func TestNewHuffmanTableSingleSymbol(t *testing.T) {
	lengths := make([]int, 30)
	lengths[5] = 1
	table, err := newHuffmanTable(lengths)
	if err != nil {
		t.Fatal(err)
	}
	sym, ok := table.lookup(1, 0)
	if !ok || sym != 5 {
		t.Fatalf("got sym=%d ok=%v, want 5 true", sym, ok)
	}
}

func TestNewHuffmanTableSingleSymbolWrongLengthRejected(t *testing.T) {
	// A lone symbol declared at a length other than 1 is not the RFC
	// 1951 §3.2.2 edge case — it is an ordinary under-subscribed code and
	// must be rejected, not silently mapped to code 0.
	lengths := make([]int, 30)
	lengths[5] = 5
	if _, err := newHuffmanTable(lengths); err != ErrInvalidHuffman {
		t.Fatalf("want ErrInvalidHuffman, got %v", err)
	}
}

func TestDecodeSymbolSuspendsCleanly(t *testing.T) {
	table, err := newHuffmanTable([]int{3, 3, 3, 3, 3, 2, 4, 4})
	if err != nil {
		t.Fatal(err)
	}
	inf := &Inflater{pendingIn: nil}
	if _, err := inf.decodeSymbol(table); err != errNeedMoreInput {
		t.Fatalf("want errNeedMoreInput, got %v", err)
	}
}
