package domain

// RawDocument represents the bytes of one saved portal page.
// It is the document source's output before extraction.
type RawDocument struct {
	// URI is the original location, usually a file path.
	URI string

	// Content is the raw bytes.
	Content []byte

	// Err is set when the document could not be read.
	// The extractor reports it and moves on to the next document.
	Err error
}
