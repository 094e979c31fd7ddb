// Package protocol defines the requests a client can send to the server.
//
// A request travels as a Message: a JSON object with exactly one key, the request Kind,
// whose value is the variant body. Each Kind is a stable discriminant, so adding a variant
// never changes how existing ones are encoded.
package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/code-open/code-open-server/src/codeopen/entity"
	"github.com/code-open/code-open-server/src/codeopen/internal/errors"
	"github.com/segmentio/encoding/json"
)

// Kind is the wire discriminant of a request variant.
type Kind string

const (
	// KindOpen asks the server to open a remote directory in the editor.
	KindOpen Kind = "Open"
)

// Request is implemented by every request variant. The set of variants is closed to this package.
type Request interface {
	Kind() Kind
	isRequest()
}

// Open carries the remote directory to be opened.
type Open struct {
	Info entity.CodeOpenInfo
}

// Kind is an implementation of the Request interface.
func (Open) Kind() Kind { return KindOpen }

func (Open) isRequest() {}

// Message is the payload carried inside an envelope.
type Message struct {
	Request Request
}

// NewMessage wraps a request for transport.
func NewMessage(r Request) Message {
	return Message{Request: r}
}

type openBody struct {
	RemoteHostName    *string `json:"remote_host_name"`
	RemoteDirFullPath *string `json:"remote_dir_full_path"`
}

var _decoders = map[Kind]func(body []byte) (Request, error){
	KindOpen: decodeOpen,
}

// MarshalJSON encodes the message as a single-key object tagged with the request kind.
func (m Message) MarshalJSON() ([]byte, error) {
	var body interface{}
	switch r := m.Request.(type) {
	case Open:
		body = r.Info
	case nil:
		return nil, errors.New("message has no request")
	default:
		return nil, fmt.Errorf("unsupported request kind %q", r.Kind())
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{string(m.Request.Kind()): raw})
}

// UnmarshalJSON decodes a single-key tagged object into the matching request variant.
func (m *Message) UnmarshalJSON(b []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(b, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return fmt.Errorf("expected exactly one request variant, got %d", len(tagged))
	}

	for key, body := range tagged {
		decode, ok := _decoders[Kind(key)]
		if !ok {
			return fmt.Errorf("unknown request variant %q", key)
		}
		r, err := decode(body)
		if err != nil {
			return fmt.Errorf("variant %q: %w", key, err)
		}
		m.Request = r
	}
	return nil
}

func decodeOpen(body []byte) (Request, error) {
	var b openBody
	if err := strictUnmarshal(body, &b); err != nil {
		return nil, err
	}
	if b.RemoteHostName == nil {
		return nil, errors.New("missing field \"remote_host_name\"")
	}
	if b.RemoteDirFullPath == nil {
		return nil, errors.New("missing field \"remote_dir_full_path\"")
	}
	return Open{Info: entity.NewCodeOpenInfo(*b.RemoteHostName, *b.RemoteDirFullPath)}, nil
}

func strictUnmarshal(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	return nil
}
