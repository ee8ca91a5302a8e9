package response

import "chamba_facil/internal/domain/entities"

// SignatureResponse is consumed by the browser upload widget; field names
// follow the Cloudinary client convention (camelCase keys).
type SignatureResponse struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

func FromUploadSignature(s entities.UploadSignature) SignatureResponse {
	return SignatureResponse{
		Timestamp: s.Timestamp,
		Signature: s.Signature,
		APIKey:    s.APIKey,
		CloudName: s.CloudName,
	}
}
