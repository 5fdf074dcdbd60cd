// Package inflate implements incremental, streaming decompression of
// raw DEFLATE (RFC 1951), zlib (RFC 1950) and gzip (RFC 1952) data.
//
// An Inflater is fed arbitrarily-sized chunks of compressed input and
// returns whatever decompressed bytes that chunk made available,
// however a call that does not complete a pending atomic read simply
// returns no new bytes rather than an error — the caller is expected to
// supply more input on a later call.
package inflate

import (
	"hash"
	"hash/adler32"
	"hash/crc32"
)

// Encoding selects the container format wrapping the DEFLATE stream.
type Encoding int

const (
	// RawEncoding is a bare RFC 1951 DEFLATE stream with no wrapper.
	RawEncoding Encoding = iota
	// ZlibEncoding is an RFC 1950 stream: a 2-byte header and a 4-byte
	// Adler-32 trailer around the DEFLATE data.
	ZlibEncoding
	// GzipEncoding is an RFC 1952 stream: a variable-length header and
	// an 8-byte CRC-32/size trailer around the DEFLATE data.
	GzipEncoding
)

// phase identifies which top-level stage of the stream an Inflater is
// in. Unlike blockState, which only matters while
// phase == phaseNeedBlocks, this is always meaningful.
type phase int

const (
	phaseNeedHeader phase = iota
	phaseNeedBlocks
	phaseNeedTrailer
	phaseDone
)

// Inflater is one incremental decompression session. It is not safe for
// concurrent use; the same goroutine should make every Decompress call
// for a given Inflater.
type Inflater struct {
	encoding Encoding
	phase    phase

	pendingIn []byte
	bitCursor int

	win  window
	emit []byte

	final bool
	state blockState

	litLen *huffmanTable
	dist   *huffmanTable

	adler   hash.Hash32
	crc     hash.Hash32
	written uint32
}

// New creates an Inflater for the given container encoding.
func New(encoding Encoding) (*Inflater, error) {
	switch encoding {
	case RawEncoding:
		return &Inflater{encoding: encoding, phase: phaseNeedBlocks}, nil
	case ZlibEncoding:
		return &Inflater{encoding: encoding, phase: phaseNeedHeader, adler: adler32.New()}, nil
	case GzipEncoding:
		return &Inflater{encoding: encoding, phase: phaseNeedHeader, crc: crc32.NewIEEE()}, nil
	default:
		return nil, ErrInvalidEncoding
	}
}

// Decompress feeds chunk to the stream and returns whatever
// decompressed bytes became available as a result. chunk may be of any
// length, including zero, and byte boundaries between successive calls
// carry no meaning: feeding the same total input split into different
// chunk sizes always yields the same concatenated output.
//
// Once a stream has reached its end (its trailer, if any, has been
// validated), further non-empty input returns ErrStreamClosed, except
// that a GzipEncoding Inflater optimistically attempts to parse a new
// member header, per RFC 1952's concatenated-member convention. This
// applies both to a later Decompress call and to bytes of a trailing
// member that arrived in the same chunk as the one that just finished.
func (inf *Inflater) Decompress(chunk []byte) ([]byte, error) {
	if inf.phase == phaseDone && len(chunk) > 0 {
		if inf.encoding != GzipEncoding {
			return nil, ErrStreamClosed
		}
		inf.rearmGzipMember()
	}

	inf.pendingIn = append(inf.pendingIn, chunk...)
	inf.emit = inf.emit[:0]

	for {
		var err error
		switch inf.phase {
		case phaseNeedHeader:
			err = inf.readHeader()
		case phaseNeedBlocks:
			err = inf.stepBlocks()
		case phaseNeedTrailer:
			err = inf.readTrailer()
		case phaseDone:
			err = nil
		}
		if err == errNeedMoreInput {
			break
		}
		if err != nil {
			return nil, err
		}
		if inf.phase == phaseDone {
			if inf.encoding == GzipEncoding && len(inf.pendingIn) > 0 {
				inf.rearmGzipMember()
				continue
			}
			break
		}
	}

	return inf.emit, nil
}

// rearmGzipMember resets per-member state so a new gzip header can be
// parsed right after the previous member's trailer validated. Each
// RFC 1952 member is an independent DEFLATE stream, so the output
// window restarts empty along with the checksum and size fields.
func (inf *Inflater) rearmGzipMember() {
	inf.phase = phaseNeedHeader
	inf.win = window{}
	inf.crc = crc32.NewIEEE()
	inf.written = 0
}

// readHeader dispatches to the wrapper-specific header scan. RawEncoding
// never enters phaseNeedHeader (New starts it directly in
// phaseNeedBlocks), so this is only reachable for Zlib/Gzip.
func (inf *Inflater) readHeader() error {
	switch inf.encoding {
	case ZlibEncoding:
		return inf.readZlibHeader()
	case GzipEncoding:
		return inf.readGzipHeader()
	}
	panic("inflate: readHeader called for an encoding with no header")
}

// readTrailer dispatches to the wrapper-specific trailer validation.
func (inf *Inflater) readTrailer() error {
	switch inf.encoding {
	case RawEncoding:
		inf.phase = phaseDone
		return nil
	case ZlibEncoding:
		return inf.readZlibTrailer()
	case GzipEncoding:
		return inf.readGzipTrailer()
	}
	panic("inflate: unreachable encoding")
}

// emitByte appends a single literal byte to the output window and to
// this call's pending output, updating whichever wrapper checksum is
// active. It is the byte-at-a-time counterpart to emitBytes, used by
// the literal branch of runHuffmanBody.
func (inf *Inflater) emitByte(b byte) {
	inf.emitBytes([]byte{b})
}

// emitBytes appends literal or stored-block bytes to the output. It
// writes to win (the durable, window.append-governed history) and to
// inf.emit (this Decompress call's return value) separately, rather
// than deriving inf.emit from a tail slice of win.buf, because
// window.append may compact and drop bytes that a naive tail slice
// would then point past or into compacted history.
func (inf *Inflater) emitBytes(b []byte) {
	inf.win.append(b)
	inf.emit = append(inf.emit, b...)
	inf.updateChecksum(b)
}

// emitMatch expands a back-reference against the window and appends
// the resulting bytes to this call's output, the same separation
// emitBytes uses for literals.
func (inf *Inflater) emitMatch(length, distance int) {
	out := inf.win.copyMatch(length, distance)
	inf.emit = append(inf.emit, out...)
	inf.updateChecksum(out)
}

// updateChecksum feeds newly produced bytes to whichever wrapper
// checksum is active, and tracks the gzip uncompressed-size trailer
// field (RFC 1952 §2.3.1 ISIZE is taken mod 2^32, matching a uint32
// wraparound).
func (inf *Inflater) updateChecksum(b []byte) {
	switch inf.encoding {
	case ZlibEncoding:
		inf.adler.Write(b)
	case GzipEncoding:
		inf.crc.Write(b)
		inf.written += uint32(len(b))
	}
}
