package inflate

// maxDistance is the largest back-reference distance DEFLATE allows
// (a 32KiB window), per RFC 1951 §2.3.
const maxDistance = 32768

// compactionSlack is how much additional history beyond maxDistance is
// allowed to accumulate before window.append compacts the buffer back
// down to a maxDistance-sized tail. Keeping slack avoids compacting on
// every single byte once a stream has produced more than maxDistance
// bytes.
const compactionSlack = maxDistance

// window owns the decompressed output history for one stream. It must
// keep everything emitted by the stream so far addressable (since a
// back-reference within a call can point at a byte emitted earlier in
// that same call), not just the last 32KiB — except that it is allowed
// to compact down to a 32KiB tail once distances farther back than that
// are no longer legal to request.
type window struct {
	buf []byte

	// discarded is the number of bytes that have been compacted away.
	// total produced by the stream is always len(buf) + discarded.
	discarded int64
}

// total returns the number of bytes the stream has produced so far,
// including bytes that have been compacted out of buf.
func (w *window) total() int64 {
	return w.discarded + int64(len(w.buf))
}

// append adds literal or copied bytes to the window and compacts the
// buffer once it has grown comfortably past the maximum legal distance.
func (w *window) append(b []byte) {
	w.buf = append(w.buf, b...)
	if len(w.buf) > maxDistance+compactionSlack {
		drop := len(w.buf) - maxDistance
		copy(w.buf, w.buf[drop:])
		w.buf = w.buf[:len(w.buf)-drop]
		w.discarded += int64(drop)
	}
}

// copyMatch expands a (length, distance) back-reference, appending the
// resulting length bytes to the window and returning them. Distance must
// already have been validated against w.total() by the caller.
//
// The copy proceeds byte by byte because length may exceed distance —
// the classic LZ77 overlapping run, where each freshly written byte must
// be visible to the very next position in the same run.
func (w *window) copyMatch(length, distance int) []byte {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, length)...)
	for i := 0; i < length; i++ {
		w.buf[start+i] = w.buf[start+i-distance]
	}
	if len(w.buf) > maxDistance+compactionSlack {
		drop := len(w.buf) - maxDistance
		copy(w.buf, w.buf[drop:])
		w.buf = w.buf[:len(w.buf)-drop]
		w.discarded += int64(drop)
		start -= drop
	}
	return w.buf[start:]
}
