package wire

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoPayload is returned when decoding a nil payload.
var ErrNoPayload = errors.New("wire: no payload")

// Payload is an opaque MessagePack-encoded value. One Payload is one element
// of a response stream; it is also the encoding of invocation arguments.
type Payload struct {
	Data []byte `msgpack:"data"`
}

// NewPayload encodes v into a Payload. Anything msgpack can serialize is
// fair game: strings, maps, tagged structs.
func NewPayload(v any) (*Payload, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: encode payload: %w", err)
	}
	return &Payload{Data: data}, nil
}

// Decode deserializes the payload into the value pointed to by into.
func (p *Payload) Decode(into any) error {
	if p == nil {
		return ErrNoPayload
	}
	if err := msgpack.Unmarshal(p.Data, into); err != nil {
		return fmt.Errorf("wire: decode payload: %w", err)
	}
	return nil
}

// Invocation is one request from the router: a function name plus optional
// arguments. Args is nil when the caller supplied none.
type Invocation struct {
	Function string   `msgpack:"function"`
	Args     *Payload `msgpack:"args,omitempty"`
}
