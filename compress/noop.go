package compress

// NoneCodec is the identity codec for format.None: no compression is
// applied, and the payload passes through unchanged.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

// NewNoneCodec returns the identity codec.
func NewNoneCodec() NoneCodec {
	return NoneCodec{}
}

// Compress returns data unchanged.
//
// The returned slice aliases the input; callers should not mutate data
// afterward if they still need the "compressed" result.
func (NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (NoneCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
