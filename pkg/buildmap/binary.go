package buildmap

import (
	"encoding/binary"
	"io"
)

// reader decodes little-endian scalars from an io.Reader with a sticky
// error, so record decoding stays linear.
type reader struct {
	r   io.Reader
	buf [4]byte
	err error
}

func (d *reader) read(n int) []byte {
	if d.err != nil {
		return d.buf[:n]
	}
	if _, err := io.ReadFull(d.r, d.buf[:n]); err != nil {
		d.err = err
	}
	return d.buf[:n]
}

func (d *reader) i32() int32  { return int32(binary.LittleEndian.Uint32(d.read(4))) }
func (d *reader) i16() int16  { return int16(binary.LittleEndian.Uint16(d.read(2))) }
func (d *reader) u16() uint16 { return binary.LittleEndian.Uint16(d.read(2)) }

// record reads a fixed-size record into a fresh buffer.
func (d *reader) record(size int) []byte {
	b := make([]byte, size)
	if d.err != nil {
		return b
	}
	if _, err := io.ReadFull(d.r, b); err != nil {
		d.err = err
	}
	return b
}

// writer is the encoding counterpart of reader.
type writer struct {
	w   io.Writer
	buf [4]byte
	err error
}

func (e *writer) write(b []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *writer) i32(v int32) {
	binary.LittleEndian.PutUint32(e.buf[:4], uint32(v))
	e.write(e.buf[:4])
}

func (e *writer) i16(v int16) {
	binary.LittleEndian.PutUint16(e.buf[:2], uint16(v))
	e.write(e.buf[:2])
}

func (e *writer) u16(v uint16) {
	binary.LittleEndian.PutUint16(e.buf[:2], v)
	e.write(e.buf[:2])
}

func (e *writer) raw(b []byte) { e.write(b) }
