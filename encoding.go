package sqlitekit

import "github.com/orsinium-labs/enum"

// Encoding selects the text width used when talking to the engine:
// paths, SQL text, and bound/read string values.
type Encoding enum.Member[string]

var (
	// EncodingUTF8 uses the engine's UTF-8 entry points.
	EncodingUTF8 = Encoding{"utf8"}
	// EncodingUTF16 uses the engine's UTF-16 entry points in native
	// byte order.
	EncodingUTF16 = Encoding{"utf16"}

	Encodings = enum.New(EncodingUTF8, EncodingUTF16)
)

func (e Encoding) wide() bool {
	return e == EncodingUTF16
}
