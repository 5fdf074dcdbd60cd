package inflate

// RFC 1950 §2.2: CMF low nibble is the compression method; 8 is the
// only method DEFLATE streams use.
const zlibMethodDeflate = 8

// readZlibHeader reads the 2-byte zlib header (RFC 1950 §2.2) and
// validates it, atomically: either both bytes are available and the
// header is well formed, or nothing is consumed.
func (inf *Inflater) readZlibHeader() error {
	b, err := inf.readRawBytes(2)
	if err != nil {
		return err
	}
	cmf, flg := b[0], b[1]

	if cmf&0x0f != zlibMethodDeflate {
		return ErrUnsupportedMethod
	}
	if cmf>>4 > 7 {
		return ErrBadHeader
	}
	if flg&0x20 != 0 {
		// FDICT: a preset dictionary id follows. Decoding against a
		// caller-supplied preset dictionary is out of scope.
		return ErrUnsupported
	}
	if (uint16(cmf)*256+uint16(flg))%31 != 0 {
		return ErrBadHeader
	}

	inf.phase = phaseNeedBlocks
	return nil
}

// readZlibTrailer reads the 4-byte big-endian Adler-32 checksum (RFC
// 1950 §2.3) and validates it against the running checksum of every
// byte this Inflater has produced.
func (inf *Inflater) readZlibTrailer() error {
	b, err := inf.readRawBytes(4)
	if err != nil {
		return err
	}
	want := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	if inf.adler.Sum32() != want {
		return ErrChecksumMismatch
	}
	inf.phase = phaseDone
	return nil
}
