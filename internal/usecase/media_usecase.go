package usecase

import (
	"errors"
	"log"
	"time"

	"chamba_facil/internal/domain/entities"
	"chamba_facil/internal/usecase/interfaces"
)

var ErrMediaNotConfigured = errors.New("media host not configured")

// IMediaUseCase issues direct-upload credentials for the media host.

type IMediaUseCase interface {
	SignUpload() (entities.UploadSignature, error)
}

type MediaUseCase struct {
	signer interfaces.IUploadSigner
}

var _ IMediaUseCase = (*MediaUseCase)(nil)

func NewMediaUseCase(signer interfaces.IUploadSigner) *MediaUseCase {
	return &MediaUseCase{signer: signer}
}

func (u *MediaUseCase) SignUpload() (entities.UploadSignature, error) {
	if u.signer == nil || !u.signer.Configured() {
		log.Printf("[media][usecase] signer not configured")
		return entities.UploadSignature{}, ErrMediaNotConfigured
	}

	sig, err := u.signer.Sign(time.Now().UTC())
	if err != nil {
		log.Printf("[media][usecase] signing failed err=%v", err)
		return entities.UploadSignature{}, ErrMediaNotConfigured
	}
	return sig, nil
}
