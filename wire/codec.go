package wire

import (
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype under which the msgpack codec registers.
const CodecName = "msgpack"

// Codec marshals wire messages with MessagePack. It satisfies gRPC's
// encoding.Codec so the transport can frame non-protobuf bodies; servers
// force it with grpc.ForceServerCodec and clients with grpc.ForceCodec.
type Codec struct{}

var _ encoding.Codec = Codec{}

func (Codec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

func (Codec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
