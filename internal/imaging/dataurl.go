package imaging

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURL encodes raw bytes as a base64 data URL with the given MIME type.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its MIME type and payload.
func DecodeDataURL(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := s[len("data:"):]
	sep := strings.Index(rest, ",")
	if sep < 0 {
		return "", nil, fmt.Errorf("malformed data URL: missing payload")
	}
	header, payload := rest[:sep], rest[sep+1:]

	mime = header
	if i := strings.Index(header, ";"); i >= 0 {
		mime = header[:i]
		if !strings.Contains(header[i:], "base64") {
			return "", nil, fmt.Errorf("unsupported data URL encoding %q", header)
		}
	}
	if mime == "" {
		return "", nil, fmt.Errorf("malformed data URL: missing mime type")
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return mime, data, nil
}
