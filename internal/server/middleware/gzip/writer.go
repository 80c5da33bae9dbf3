package gzip

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// errorSlot defers a destination failure from the capture writer to the next
// checkpoint of the safe writer. It holds at most one error: the first
// failure wins, later ones arriving while the slot is occupied are dropped.
// take reads and clears, so a captured failure is surfaced exactly once.
type errorSlot struct {
	err error
}

func (s *errorSlot) store(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *errorSlot) take() error {
	err := s.err
	s.err = nil
	return err
}

// captureWriter forwards writes to the destination but never fails its
// caller. A rejected write is parked in the slot and reported as a success,
// so the compressor above is never aborted in the middle of an operation
// and its internal state stays consistent.
type captureWriter struct {
	dst  io.Writer
	slot *errorSlot
}

func (w *captureWriter) Write(p []byte) (int, error) {

	n, err := w.dst.Write(p)
	if err != nil {
		w.slot.store(err)
		return len(p), nil
	}
	if n < len(p) {
		w.slot.store(io.ErrShortWrite)
		return len(p), nil
	}
	return n, nil
}

// Writer is a write-only stream: every byte written is gzip-compressed and
// forwarded to the destination. Destination failures surface from Write,
// Flush or Close, whichever checkpoint comes first after the failure.
type Writer struct {
	zw   *gzip.Writer
	slot *errorSlot
}

func NewWriter(dst io.Writer) *Writer {
	w, _ := NewWriterLevel(dst, gzip.DefaultCompression)
	return w
}

func NewWriterLevel(dst io.Writer, level int) (*Writer, error) {

	slot := &errorSlot{}
	zw, err := gzip.NewWriterLevel(&captureWriter{dst: dst, slot: slot}, level)
	if err != nil {
		return nil, err
	}

	return &Writer{zw: zw, slot: slot}, nil
}

func (w *Writer) Write(p []byte) (int, error) {

	n, err := w.zw.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.slot.take(); err != nil {
		return 0, err
	}
	return n, nil
}

// Flush pushes buffered compressed data to the destination.
func (w *Writer) Flush() error {

	if err := w.zw.Flush(); err != nil {
		return err
	}
	return w.slot.take()
}

// Close finalizes the gzip stream, writing the CRC32 and length trailer,
// then reports any parked destination failure.
func (w *Writer) Close() error {

	if err := w.zw.Close(); err != nil {
		return err
	}
	return w.slot.take()
}
