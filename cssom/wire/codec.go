package wire

import (
	"encoding/binary"
	"math"
)

// Writer accumulates a little-endian byte stream, per spec §4.2; the
// side-channel string pool is kept by the caller, not by the Writer. Every struct is wrapped by a u32 byte
// length (WriteSegment); sequences carry a leading u32 length.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Bytes() []byte { return w.buf }

func (w *Writer) WriteU8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

func (w *Writer) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) WriteF64(v float64) { w.WriteU64(math.Float64bits(v)) }

// WriteTag writes an enum discriminant. The global-keyword block reserves
// discriminants [0, GlobalKeywordSlots) ahead of every property value
// enum's own variants, per spec §4.2/§9; tag is the raw discriminant value
// already offset by the caller when applicable.
func (w *Writer) WriteTag(tag uint32) { w.WriteU32(tag) }

// WriteBytes writes a length-prefixed raw byte slice.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteU32(uint32(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteStrRef writes a (offset, len) pair pointing into the side-channel
// string pool, which SerializeStyleSheet writes once at the end with
// WriteBytes.
func (w *Writer) WriteStrRef(offset, length uint32) {
	w.WriteU32(offset)
	w.WriteU32(length)
}

// Segment wraps a nested encode step with a u32 byte-length prefix so
// forward-compatible readers can skip it if they don't understand its
// contents, per spec §4.2 "Segment size limits".
func (w *Writer) Segment(encode func(*Writer)) {
	inner := NewWriter()
	encode(inner)
	w.WriteU32(uint32(len(inner.buf)))
	w.buf = append(w.buf, inner.buf...)
}

// --- Reader -------------------------------------------------------------

// segmentFrame is one entry in the decoder's barrier stack (spec §4.2:
// "the decoder maintains a stack of SegmentSizeLimit{diff} frames").
type segmentFrame struct {
	parentBarrier int // absolute offset to restore on EndSegment
}

// Reader decodes a Writer-produced byte stream, enforcing segment barriers
// so that unread trailing fields within a segment are silently skipped
// (forward compatibility) and a segment never reads past its declared
// length: a read beyond it fails with ErrSegmentEnded, so a tail field
// missing from older data is an error, not a zero value.
type Reader struct {
	buf     []byte
	pos     int
	barrier int // absolute offset; reads beyond it are an error
	frames  []segmentFrame
}

// NewReader wraps buf for decoding. The returned Reader does not copy buf;
// callers using the zero-copy path must keep buf alive for the Reader's
// lifetime (see strpool.Borrow).
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, barrier: len(buf)}
}

func (r *Reader) ensure(n int) error {
	if r.pos+n > r.barrier || r.pos+n > len(r.buf) {
		return newErr(ErrSegmentEnded, "read past segment barrier")
	}
	return nil
}

func (r *Reader) ReadU8() (uint8, error) {
	if err := r.ensure(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, newErr(ErrInvalidBoolEncoding, "bool byte not 0/1")
	}
	return v == 1, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	if err := r.ensure(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) ReadU64() (uint64, error) {
	if err := r.ensure(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func (r *Reader) ReadTag() (uint32, error) { return r.ReadU32() }

func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := r.ensure(int(n)); err != nil {
		return nil, err
	}
	b := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

func (r *Reader) ReadStrRef() (offset, length uint32, err error) {
	offset, err = r.ReadU32()
	if err != nil {
		return
	}
	length, err = r.ReadU32()
	return
}

// BeginSegment reads the segment's u32 byte length and pushes a new
// barrier at current position + length, mirroring the source's
// begin_segment_size_limit; a segment that would end past the enclosing
// barrier fails with ErrInvalidData.
func (r *Reader) BeginSegment() error {
	segLen, err := r.ReadU32()
	if err != nil {
		return err
	}
	newBarrier := r.pos + int(segLen)
	if newBarrier > r.barrier {
		return newErr(ErrInvalidData, "segment length exceeds enclosing segment")
	}
	r.frames = append(r.frames, segmentFrame{parentBarrier: r.barrier})
	r.barrier = newBarrier
	return nil
}

// EndSegment fast-forwards to the current barrier (skipping any unread
// trailing bytes -- the forward-compatibility guarantee) and restores the
// parent barrier.
func (r *Reader) EndSegment() error {
	if len(r.frames) == 0 {
		return newErr(ErrInvalidData, "EndSegment without matching BeginSegment")
	}
	r.pos = r.barrier
	f := r.frames[len(r.frames)-1]
	r.frames = r.frames[:len(r.frames)-1]
	r.barrier = f.parentBarrier
	return nil
}

// WithSegment runs decode inside a BeginSegment/EndSegment pair, always
// calling EndSegment even if decode returns an error, so the stream stays
// aligned for whatever comes next (best-effort recovery, matching the
// "parser never fails outright" spirit applied to the decoder's framing).
func (r *Reader) WithSegment(decode func(*Reader) error) error {
	if err := r.BeginSegment(); err != nil {
		return err
	}
	decodeErr := decode(r)
	if err := r.EndSegment(); err != nil && decodeErr == nil {
		return err
	}
	return decodeErr
}

// Remaining reports how many bytes remain before the current barrier.
func (r *Reader) Remaining() int { return r.barrier - r.pos }
