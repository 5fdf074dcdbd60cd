package inflate

// Error is the error type returned by this package. It is a plain string
// type (not a struct) so that sentinel values can be compared with ==, the
// same shape used throughout the DEFLATE forks this package is grounded on.
type Error string

func (e Error) Error() string { return "inflate: " + string(e) }

// Construction and decompression errors, per the error taxonomy.
const (
	// ErrInvalidEncoding is returned by New when the requested encoding is
	// not RAW, ZLIB, or GZIP.
	ErrInvalidEncoding Error = "invalid encoding"

	// ErrBadHeader covers zlib FCHECK failures, CINFO > 7, a bad gzip magic
	// number, and a stored block whose NLEN doesn't complement LEN.
	ErrBadHeader Error = "bad header"

	// ErrUnsupportedMethod is returned when CM != 8 in a zlib or gzip
	// header.
	ErrUnsupportedMethod Error = "unsupported compression method"

	// ErrUnsupported is returned when a zlib header has FDICT set.
	ErrUnsupported Error = "unsupported stream feature"

	// ErrInvalidBlockType is returned for BTYPE == 3.
	ErrInvalidBlockType Error = "invalid block type"

	// ErrInvalidHuffman is returned for over- or under-subscribed code
	// lengths, or a code-length sequence whose first symbol is the
	// repeat-previous code 16.
	ErrInvalidHuffman Error = "invalid huffman code lengths"

	// ErrInvalidDistance is returned for distance codes 30 and 31, for a
	// distance greater than the number of bytes produced so far, and for
	// length codes 286 and 287.
	ErrInvalidDistance Error = "invalid distance"

	// ErrChecksumMismatch is returned when a zlib Adler-32 or gzip CRC-32
	// or ISIZE trailer does not match the decompressed output.
	ErrChecksumMismatch Error = "checksum mismatch"

	// ErrStreamClosed is returned when Decompress is called with non-empty
	// input after the stream's trailer has been validated. It applies to
	// RawEncoding and ZlibEncoding only; a GzipEncoding Inflater parses
	// such input as the header of a further member instead.
	ErrStreamClosed Error = "stream closed"
)
