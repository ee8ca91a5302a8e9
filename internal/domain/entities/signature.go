package entities

// UploadSignature is a time-boxed credential allowing a client to upload
// media directly to Cloudinary without routing the file through this server.
// The provider enforces the validity window on its side; nothing is stored
// here.
type UploadSignature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}
