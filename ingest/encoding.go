package ingest

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode sniffs the byte stream, strips any BOM, and returns UTF-8
// bytes plus the encoding name it settled on. Roster exports arrive
// from spreadsheets in whatever encoding the exporting tool chose, so
// this never fails: anything that is not BOM-marked or valid UTF-8 is
// treated as Latin-1, which maps every byte to a code point.
func decode(data []byte) ([]byte, string) {
	if len(data) == 0 {
		return data, "utf-8"
	}
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[3:], "utf-8-bom"
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data[2:], binary.LittleEndian), "utf-16le"
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data[2:], binary.BigEndian), "utf-16be"
	case utf8.Valid(data):
		return data, "utf-8"
	}
	return decodeLatin1(data), "latin-1"
}

func decodeLatin1(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data) * 2)
	for _, b := range data {
		if b < 0x80 {
			buf.WriteByte(b)
		} else {
			buf.WriteRune(rune(b))
		}
	}
	return buf.Bytes()
}

func decodeUTF16(data []byte, order binary.ByteOrder) []byte {
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for i := 0; i < len(data); i += 2 {
		unit := order.Uint16(data[i : i+2])

		// Surrogate pairs
		if unit >= 0xD800 && unit <= 0xDBFF {
			if i+3 < len(data) {
				low := order.Uint16(data[i+2 : i+4])
				if low >= 0xDC00 && low <= 0xDFFF {
					buf.WriteRune(0x10000 + (rune(unit-0xD800)<<10 | rune(low-0xDC00)))
					i += 2
					continue
				}
			}
			buf.WriteRune(0xFFFD)
			continue
		}
		if unit >= 0xDC00 && unit <= 0xDFFF {
			buf.WriteRune(0xFFFD)
			continue
		}
		buf.WriteRune(rune(unit))
	}
	return buf.Bytes()
}
