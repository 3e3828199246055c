package asa

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// decodeRLE reconstructs the custom run-length stream layered on top of
// zlib for ASA blobs (spec §4.7 "Custom RLE contract"). The stream is a
// concatenation of chunks: a chunk header is a signed 32-bit N; N >= 0
// means N literal bytes follow, N < 0 means |N| implicit zero bytes.
// Decoding stops once declaredLen bytes have been produced.
func decodeRLE(src []byte, declaredLen int) ([]byte, error) {
	out := make([]byte, 0, declaredLen)
	pos := 0
	for len(out) < declaredLen {
		if pos+4 > len(src) {
			return nil, errors.New("asa: RLE stream truncated reading chunk header")
		}
		n := int32(binary.LittleEndian.Uint32(src[pos : pos+4]))
		pos += 4
		if n >= 0 {
			if pos+int(n) > len(src) {
				return nil, errors.New("asa: RLE stream truncated reading literal chunk")
			}
			out = append(out, src[pos:pos+int(n)]...)
			pos += int(n)
		} else {
			out = append(out, make([]byte, -n)...)
		}
	}
	if len(out) > declaredLen {
		out = out[:declaredLen]
	}
	return out, nil
}
