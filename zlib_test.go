package inflate

import "testing"

func TestZlibBadHeaderRejected(t *testing.T) {
	inf, err := New(ZlibEncoding)
	if err != nil {
		t.Fatal(err)
	}
	// A valid zlib header has (CMF*256+FLG) % 31 == 0; 0x78 0x9c is a
	// real one, so corrupting FLG's low bits breaks the check.
	if _, err := inf.Decompress([]byte{0x78, 0x9d}); err != ErrBadHeader {
		t.Fatalf("want ErrBadHeader, got %v", err)
	}
}

func TestZlibUnsupportedMethodRejected(t *testing.T) {
	inf, err := New(ZlibEncoding)
	if err != nil {
		t.Fatal(err)
	}
	// CMF low nibble 7 is not method 8 (DEFLATE). Pick an FLG byte that
	// keeps (CMF*256+FLG) a multiple of 31: CMF=0x77 (method 7, window
	// bits 7), 0x77*256 = 30464 = 31*982+22, so FLG=9 makes the sum
	// 30473 = 31*983; the loop below finds that value.
	cmf := byte(0x77)
	var flg byte
	for f := 0; f < 256; f++ {
		if (uint16(cmf)*256+uint16(f))%31 == 0 {
			flg = byte(f)
			break
		}
	}
	if _, err := inf.Decompress([]byte{cmf, flg}); err != ErrUnsupportedMethod {
		t.Fatalf("want ErrUnsupportedMethod, got %v", err)
	}
}

func TestZlibPresetDictionaryUnsupported(t *testing.T) {
	inf, err := New(ZlibEncoding)
	if err != nil {
		t.Fatal(err)
	}
	cmf := byte(0x78)
	var flg byte
	for f := 0; f < 256; f++ {
		if byte(f)&0x20 != 0 && (uint16(cmf)*256+uint16(f))%31 == 0 {
			flg = byte(f)
			break
		}
	}
	if _, err := inf.Decompress([]byte{cmf, flg}); err != ErrUnsupported {
		t.Fatalf("want ErrUnsupported, got %v", err)
	}
}
