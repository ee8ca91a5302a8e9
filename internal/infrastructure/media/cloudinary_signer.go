package media

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"chamba_facil/internal/domain/entities"
)

var ErrCloudinaryNotConfigured = errors.New("cloudinary not configured")

// CloudinarySigner issues signatures for direct client uploads.
//
// The digest is SHA-1 over "timestamp=<ts>" + api secret because that is the
// verification algorithm Cloudinary runs on its side; it is a provider
// constraint, not an algorithm choice. No server-side state is recorded: the
// provider enforces the validity window.
type CloudinarySigner struct {
	cloudName string
	apiKey    string
	apiSecret string
}

func NewCloudinarySigner(cloudName, apiKey, apiSecret string) *CloudinarySigner {
	return &CloudinarySigner{cloudName: cloudName, apiKey: apiKey, apiSecret: apiSecret}
}

func (s *CloudinarySigner) Configured() bool {
	return s != nil && s.cloudName != "" && s.apiKey != "" && s.apiSecret != ""
}

// Sign produces the upload signature for the given instant. Deterministic for
// equal (timestamp, secret) pairs.
func (s *CloudinarySigner) Sign(now time.Time) (entities.UploadSignature, error) {
	if !s.Configured() {
		return entities.UploadSignature{}, ErrCloudinaryNotConfigured
	}

	ts := now.Unix()
	paramsToSign := fmt.Sprintf("timestamp=%d", ts)
	sum := sha1.Sum([]byte(paramsToSign + s.apiSecret))

	return entities.UploadSignature{
		Timestamp: ts,
		Signature: hex.EncodeToString(sum[:]),
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
	}, nil
}
