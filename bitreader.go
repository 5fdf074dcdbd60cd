package inflate

import "errors"

// errNeedMoreInput is the internal suspension signal used throughout this
// package; it is never returned from Decompress. Every primitive that can
// suspend returns it instead of mutating any state, so resuming is simply
// calling the same primitive again once more bytes have arrived in
// pendingIn — there is no partial progress to roll back. Bits already
// committed from an earlier, already-resolved step of a multi-step
// construct (such as a length code whose extra bits are still pending)
// stay committed; that bookkeeping lives in the caller's blockState, not
// in this reader.
var errNeedMoreInput = errors.New("inflate: need more input")

// peekRaw reads the next n bits (1-16) starting at bitCursor without
// consuming them. Bits are assembled LSB-first: the first bit read becomes
// the least significant bit of the result.
func (inf *Inflater) peekRaw(n int) (uint32, bool) {
	totalBits := inf.bitCursor + n
	needBytes := (totalBits + 7) / 8
	if len(inf.pendingIn) < needBytes {
		return 0, false
	}
	var v uint32
	for i := 0; i < needBytes; i++ {
		v |= uint32(inf.pendingIn[i]) << uint(8*i)
	}
	v >>= uint(inf.bitCursor)
	v &= uint32(1)<<uint(n) - 1
	return v, true
}

// commit advances the bit cursor by n bits, releasing any bytes of
// pendingIn that are now fully consumed. This is the only place that
// mutates bitCursor or pendingIn, keeping the "once committed, released"
// invariant in one spot.
func (inf *Inflater) commit(n int) {
	totalBits := inf.bitCursor + n
	byteAdvance := totalBits / 8
	inf.bitCursor = totalBits % 8
	inf.pendingIn = inf.pendingIn[byteAdvance:]
}

// readBits reads a single fixed-width field of n bits (1-16). It either
// fully completes or, if there is not enough input, returns
// errNeedMoreInput without consuming anything.
func (inf *Inflater) readBits(n int) (uint16, error) {
	v, ok := inf.peekRaw(n)
	if !ok {
		return 0, errNeedMoreInput
	}
	inf.commit(n)
	return uint16(v), nil
}

// alignToByte discards any bits remaining in the current partially-read
// byte, as required before a stored block's LEN/NLEN fields. It never
// needs more input: if bitCursor is nonzero, the byte it refers to is by
// definition still in pendingIn.
func (inf *Inflater) alignToByte() {
	if inf.bitCursor != 0 {
		inf.bitCursor = 0
		inf.pendingIn = inf.pendingIn[1:]
	}
}

// readRawBytes atomically consumes exactly n byte-aligned bytes. If fewer
// than n are available, it returns errNeedMoreInput without consuming
// anything — the same all-or-nothing shape as readBits, used for the
// fixed-length portions of the wrapper header and trailer, which always
// fall on a byte boundary.
func (inf *Inflater) readRawBytes(n int) ([]byte, error) {
	if inf.bitCursor != 0 {
		panic("inflate: readRawBytes called with an unaligned bit cursor")
	}
	if len(inf.pendingIn) < n {
		return nil, errNeedMoreInput
	}
	b := inf.pendingIn[:n]
	inf.pendingIn = inf.pendingIn[n:]
	return b, nil
}

// takeBytes consumes up to n raw, byte-aligned bytes from pendingIn,
// returning however many were actually available. Unlike readBits and
// decodeSymbol, this is not required to be all-or-nothing: a stored
// block's payload has no internal bit structure, so it can be copied
// incrementally across as many calls as necessary regardless of how the
// input happens to be chunked.
func (inf *Inflater) takeBytes(n int) []byte {
	if inf.bitCursor != 0 {
		panic("inflate: takeBytes called with an unaligned bit cursor")
	}
	if n > len(inf.pendingIn) {
		n = len(inf.pendingIn)
	}
	b := inf.pendingIn[:n]
	inf.pendingIn = inf.pendingIn[n:]
	return b
}
