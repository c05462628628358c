package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type localStorage struct {
	baseDir string
}

// NewLocalStorage stores files under baseDir (the directory served as the
// site's public root); public links are root-relative paths.
func NewLocalStorage(baseDir string) Storage {
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extensionAllowed(ext, allowedExt) {
		return "", ErrExtensionNotAllowed
	}

	key := folder + "/" + fileName + ext
	if err := os.MkdirAll(filepath.Join(s.baseDir, folder), os.ModePerm); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(key)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return key, nil
}

func (s *localStorage) DeleteFile(objectKey string) error {
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(objectKey)))
}

func (s *localStorage) GetPublicLinkKey(objectKey string) string {
	return "/" + objectKey
}

func (s *localStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "/")
}
