package core

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// ReadDataURI reads r fully and encodes it as a base64 data URI.
// The media type is sniffed from the content; when sniffing is inconclusive
// the extension of name is consulted.
func ReadDataURI(name string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return EncodeDataURI(name, data), nil
}

// EncodeDataURI encodes data as a base64 data URI.
func EncodeDataURI(name string, data []byte) string {
	return "data:" + mediaType(name, data) + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func mediaType(name string, data []byte) string {
	sniffed := http.DetectContentType(data)
	if !strings.HasPrefix(sniffed, "application/octet-stream") && !strings.HasPrefix(sniffed, "text/plain") {
		return stripParams(sniffed)
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return stripParams(byExt)
	}
	return stripParams(sniffed)
}

func stripParams(mt string) string {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		return strings.TrimSpace(mt[:i])
	}
	return mt
}
