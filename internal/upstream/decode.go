package upstream

import (
	"bytes"
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeBody converts a response body to UTF-8 based on the Content-Type
// charset parameter. The dashboard serves Hebrew content and older endpoints
// have been seen with legacy charsets; utf-8 or an absent charset passes the
// bytes through untouched.
func decodeBody(body []byte, contentType string) ([]byte, error) {
	enc := encodingFor(charsetOf(contentType), body)
	if enc == nil {
		return stripUTF8BOM(body), nil
	}

	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

func encodingFor(charset string, body []byte) encoding.Encoding {
	switch charset {
	case "windows-1255", "cp1255":
		return charmap.Windows1255
	case "iso-8859-8", "iso-8859-8-i":
		return charmap.ISO8859_8
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1
	case "utf-16", "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "", "utf-8", "utf8":
		// A UTF-16 BOM without a charset declaration still needs decoding.
		if hasUTF16BOM(body) {
			return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		}
		return nil
	default:
		return nil
	}
}

func hasUTF16BOM(body []byte) bool {
	return len(body) >= 2 &&
		(bytes.Equal(body[:2], []byte{0xFF, 0xFE}) || bytes.Equal(body[:2], []byte{0xFE, 0xFF}))
}

func stripUTF8BOM(body []byte) []byte {
	return bytes.TrimPrefix(body, []byte{0xEF, 0xBB, 0xBF})
}
