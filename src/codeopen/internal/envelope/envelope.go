// Package envelope frames one serialized value per message on a byte stream.
//
// A frame is an 8-byte big-endian length followed by exactly that many payload bytes.
// Reading a frame and decoding it are separate steps, so a receiver holds the whole
// message before committing to a concrete type.
package envelope

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/segmentio/encoding/json"
)

const (
	// HeaderSize is the size in bytes of the length prefix.
	HeaderSize = 8

	// DefaultMaxPayloadSize is the largest payload Read accepts.
	DefaultMaxPayloadSize uint64 = 1 << 20
)

// Container holds one encoded value together with its length.
type Container struct {
	Length  uint64
	Payload []byte
}

type flusher interface {
	Flush() error
}

// New encodes v into a Container.
func New(v interface{}) (Container, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return Container{}, fmt.Errorf("encoding payload: %w", err)
	}
	return Container{Length: uint64(len(payload)), Payload: payload}, nil
}

// Write encodes v and writes it to w as a single frame, flushing w if it is buffered.
func Write(w io.Writer, v interface{}) error {
	c, err := New(v)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

// WriteTo writes the container as one frame. The header and payload are handed to w in a single call.
func (c Container) WriteTo(w io.Writer) (int64, error) {
	if uint64(len(c.Payload)) != c.Length {
		return 0, fmt.Errorf("payload length %d does not match header %d", len(c.Payload), c.Length)
	}

	frame := make([]byte, HeaderSize+len(c.Payload))
	binary.BigEndian.PutUint64(frame, c.Length)
	copy(frame[HeaderSize:], c.Payload)

	n, err := w.Write(frame)
	if err != nil {
		return int64(n), fmt.Errorf("writing frame: %w", err)
	}
	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return int64(n), fmt.Errorf("flushing frame: %w", err)
		}
	}
	return int64(n), nil
}

// Read blocks until one complete frame has been read from r.
func Read(r io.Reader) (Container, error) {
	return ReadWithLimit(r, DefaultMaxPayloadSize)
}

// ReadWithLimit reads one frame, rejecting payloads larger than limit. A zero limit uses DefaultMaxPayloadSize.
func ReadWithLimit(r io.Reader, limit uint64) (Container, error) {
	if limit == 0 {
		limit = DefaultMaxPayloadSize
	}

	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			err = errors.EmptyFrameError
		}
		return Container{}, &errors.FramingError{Err: err}
	}

	length := binary.BigEndian.Uint64(header[:])
	if length > limit {
		return Container{}, &errors.FramingError{
			Err: fmt.Errorf("%w: %d > %d", errors.FrameTooLargeError, length, limit),
		}
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Container{}, &errors.FramingError{Err: err}
	}

	return Container{Length: length, Payload: payload}, nil
}

// Decode interprets the container payload as a T. Unknown fields and trailing data are rejected.
func Decode[T any](c Container) (T, error) {
	var v T
	typeName := reflect.TypeOf(&v).Elem().String()

	if uint64(len(c.Payload)) != c.Length {
		return v, &errors.DecodeError{
			Type: typeName,
			Err:  fmt.Errorf("payload length %d does not match header %d", len(c.Payload), c.Length),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(c.Payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, &errors.DecodeError{Type: typeName, Err: err}
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return v, &errors.DecodeError{Type: typeName, Err: errors.New("unexpected data after value")}
	}

	return v, nil
}
