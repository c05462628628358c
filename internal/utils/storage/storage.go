package storage

import (
	"errors"
	"mime/multipart"
)

// AllowImage lists the file extensions accepted for uploaded images.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

var ErrExtensionNotAllowed = errors.New("file extension not allowed")

// Storage writes uploaded files to a path-addressed location and resolves
// the public link stored in the database. Object keys are relative paths
// like "uploads/<name>.jpg".
type Storage interface {
	UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error)
	DeleteFile(objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

func extensionAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == ext {
			return true
		}
	}
	return false
}
