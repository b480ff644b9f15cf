package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/flashfusion/studio-api/internal/models"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

var allowedLogoTypes = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "webp": {},
}

// ReadLogo validates and reads an uploaded logo: size-capped, sniffed by
// content, image types only.
func ReadLogo(file *multipart.FileHeader, maxSize int64) (*models.LogoUpload, error) {
	if file.Size > maxSize {
		return nil, fmt.Errorf("logo exceeds the %d byte limit", maxSize)
	}

	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening logo: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return nil, fmt.Errorf("error reading logo content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return nil, fmt.Errorf("unsupported logo file type")
	}
	if _, ok := allowedLogoTypes[fileType.Extension]; !ok {
		return nil, fmt.Errorf("logo file type %s is not allowed", fileType.Extension)
	}

	return &models.LogoUpload{
		Data: fileBytes,
		MIME: fileType.MIME.Value,
	}, nil
}
