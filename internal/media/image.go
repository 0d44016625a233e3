package media

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyImage     = errors.New("image payload is empty")
	ErrInvalidDataURI = errors.New("invalid data uri")
)

const DefaultMaxEdge = 1024

// Upload is a decoded client image payload.
type Upload struct {
	MIMEType string
	Data     []byte
}

// DecodeDataURI accepts "data:<mime>;base64,<payload>" or bare base64.
func DecodeDataURI(s string) (*Upload, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyImage
	}

	mimeType := "image/jpeg"
	payload := s
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return nil, ErrInvalidDataURI
		}
		header := s[len("data:"):comma]
		payload = s[comma+1:]
		if !strings.HasSuffix(header, ";base64") {
			return nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
		}
		if mt := strings.TrimSuffix(header, ";base64"); mt != "" {
			mimeType = strings.ToLower(mt)
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
		}
	}
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	return &Upload{MIMEType: mimeType, Data: data}, nil
}

// PrepareForAnalysis decodes the image honouring EXIF orientation, fits it
// into maxEdge x maxEdge and re-encodes it as JPEG.
func PrepareForAnalysis(data []byte, maxEdge int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxEdge <= 0 {
		maxEdge = DefaultMaxEdge
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > maxEdge || b.Dy() > maxEdge {
		img = imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Fingerprint is a short stable digest used to correlate log lines.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
