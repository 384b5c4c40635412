package storage

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// AllowImage is the file extension whitelist for every image upload in the app.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif"}

var ErrInvalidExtension = errors.New("Invalid file type. Only JPG, JPEG, PNG, and GIF files are allowed.")

// Uploader stores an uploaded file under a generated collision-free name and
// returns that name. Callers keep only the name; FileLink resolves it to the
// URL the backend actually serves it from.
type Uploader interface {
	UploadFile(file *multipart.FileHeader, allowed ...string) (string, error)
	DeleteFile(name string) error
	FileLink(name string) string
}

// ValidExtension reports whether the file name carries one of the allowed
// extensions (case-insensitive).
func ValidExtension(fileName string, allowed ...string) bool {
	if len(allowed) == 0 {
		allowed = AllowImage
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// StoredName builds a unique object name preserving the original extension.
func StoredName(fileName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
}
