// Package store persists benchmark matrices as flat binary files and maps
// them back read-only, so kernels can run directly on page-cache backed
// memory without copying.
package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

const (
	// HeaderSize is the fixed header size. Keeps the float64 payload
	// 8-byte aligned in the mapping.
	HeaderSize = 16

	// Magic identifies a valid matrix file.
	Magic = "MVF1"

	// FormatVersion is the current file format version.
	FormatVersion uint16 = 1
)

// Header holds the persisted matrix metadata.
type Header struct {
	Magic   [4]byte
	Version uint16
	_       uint16
	N       uint32
	_       uint32
}

// EncodeHeader writes the header to a HeaderSize byte slice.
func EncodeHeader(h *Header) ([]byte, error) {
	if h == nil {
		return nil, errors.New("header is nil")
	}
	copy(h.Magic[:], Magic)
	h.Version = FormatVersion
	var w bytes.Buffer
	if err := binary.Write(&w, binary.LittleEndian, h); err != nil {
		return nil, err
	}
	b := w.Bytes()
	if len(b) != HeaderSize {
		return nil, fmt.Errorf("encoded header is %d bytes, want %d", len(b), HeaderSize)
	}
	return b, nil
}

// DecodeHeader reads the header from src. Returns an error if the magic or
// version is invalid.
func DecodeHeader(src []byte) (*Header, error) {
	if len(src) < HeaderSize {
		return nil, errors.New("header too short")
	}
	var h Header
	r := bytes.NewReader(src[:HeaderSize])
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	if string(h.Magic[:]) != Magic {
		return nil, errors.New("invalid magic")
	}
	if h.Version != FormatVersion {
		return nil, errors.New("unsupported format version")
	}
	return &h, nil
}

// Write persists an n x n row-major matrix to path atomically (write to
// path+".tmp", then rename). On Windows the target must not exist for
// Rename to succeed; remove it first.
func Write(path string, n int, data []float64) error {
	if n < 0 || len(data) != n*n {
		return fmt.Errorf("matrix has %d elements, want %d", len(data), n*n)
	}
	tmp := path + ".tmp"
	if err := writeFile(tmp, n, data); err != nil {
		return err
	}
	_ = os.Remove(path) // ignore error if not exists
	return os.Rename(tmp, path)
}

func writeFile(path string, n int, data []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	hdr, err := EncodeHeader(&Header{N: uint32(n)})
	if err != nil {
		return err
	}
	if _, err := f.Write(hdr); err != nil {
		return err
	}
	if len(data) > 0 {
		payload := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*8)
		if _, err := f.Write(payload); err != nil {
			return err
		}
	}
	return f.Sync()
}

// MatrixFile is a read-only mmap view of a persisted matrix.
type MatrixFile struct {
	f    *os.File
	data mmap.MMap

	// N is the matrix dimension.
	N int
	// Data is the n*n row-major matrix view. Valid until Close.
	// Callers must not modify it.
	Data []float64
}

// Open maps the matrix file at path read-only.
func Open(path string) (*MatrixFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	h, err := DecodeHeader(m)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	n := int(h.N)
	want := int64(HeaderSize) + int64(n)*int64(n)*8
	if int64(len(m)) < want {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("matrix file is %d bytes, want %d for n=%d", len(m), want, n)
	}
	mf := &MatrixFile{f: f, data: m, N: n}
	if n > 0 {
		ptr := unsafe.Pointer(&m[HeaderSize])
		mf.Data = unsafe.Slice((*float64)(ptr), n*n)
	}
	return mf, nil
}

// Close unmaps the file and closes it.
func (mf *MatrixFile) Close() error {
	mf.Data = nil
	if mf.data != nil {
		if err := mf.data.Unmap(); err != nil {
			return err
		}
		mf.data = nil
	}
	if mf.f != nil {
		err := mf.f.Close()
		mf.f = nil
		return err
	}
	return nil
}
