package gen

import "io"

// seekBuffer is a growable in-memory byte sink that also implements
// io.Seeker, the minimum bits.Writer requires of its sink to support
// Flush's mid-stream rewrite of a partially-written byte. The standard
// library's bytes.Buffer deliberately does not implement io.Seeker, and
// none of the example corpus's dependencies provide a seekable
// in-memory writer, so this is a small purpose-built stand-in rather
// than a third-party type.
type seekBuffer struct {
	data []byte
	pos  int64
}

func newSeekBuffer() *seekBuffer { return &seekBuffer{} }

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = b.pos
	case io.SeekEnd:
		base = int64(len(b.data))
	default:
		return 0, io.ErrClosedPipe
	}
	b.pos = base + offset
	return b.pos, nil
}
