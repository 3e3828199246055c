package asa

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
)

// decompressBlob inflates an ASA custom-table blob and unwraps the RLE
// layer underneath (spec §4.7). The zlib payload is a declared
// uncompressed length (u32 LE) followed by the RLE chunk stream; the RLE
// decoder itself already stops at that same declared length, so the
// length is read once and threaded through both stages.
func decompressBlob(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, errors.Wrap(err, "asa: zlib open")
	}
	defer zr.Close()

	inflated, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrap(err, "asa: zlib inflate")
	}
	if len(inflated) < 4 {
		return nil, errors.New("asa: inflated blob too short for declared-length header")
	}
	declaredLen := int(binary.LittleEndian.Uint32(inflated[:4]))

	out, err := decodeRLE(inflated[4:], declaredLen)
	if err != nil {
		return nil, errors.Wrap(err, "asa: RLE decode")
	}
	return out, nil
}
