package interfaces

import (
	"time"

	"chamba_facil/internal/domain/entities"
)

// IUploadSigner abstracts the media host's upload-credential scheme
// (Cloudinary signature).
type IUploadSigner interface {
	Sign(now time.Time) (entities.UploadSignature, error)
	Configured() bool
}
