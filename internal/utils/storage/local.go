package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

type localStorage struct {
	dir string
}

// NewLocalStorage returns an Uploader writing into dir; files stored there are
// served statically under /uploads.
func NewLocalStorage(dir string) Uploader {
	if dir == "" {
		dir = "./uploads"
	}
	return &localStorage{dir: dir}
}

func (l *localStorage) UploadFile(file *multipart.FileHeader, allowed ...string) (string, error) {
	if !ValidExtension(file.Filename, allowed...) {
		return "", ErrInvalidExtension
	}

	if err := os.MkdirAll(l.dir, os.ModePerm); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := StoredName(file.Filename)
	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

func (l *localStorage) DeleteFile(name string) error {
	return os.Remove(filepath.Join(l.dir, name))
}

// FileLink points at the static /uploads mount backed by dir.
func (l *localStorage) FileLink(name string) string {
	return "/uploads/" + name
}
