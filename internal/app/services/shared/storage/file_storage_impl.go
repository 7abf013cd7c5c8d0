package storage

import (
	"context"
	"errors"
	"io/fs"
	"medirisk-service/internal/app/contracts"
	"medirisk-service/internal/pkg/constvars"
	"medirisk-service/internal/pkg/exceptions"
	"os"
	"path/filepath"
)

type fileStorage struct {
	Path string
}

func NewFileStorage(path string) contracts.DocumentStorage {
	return &fileStorage{
		Path: path,
	}
}

func (s *fileStorage) Driver() string {
	return constvars.StoreDriverFile
}

func (s *fileStorage) Location() string {
	return s.Path
}

func (s *fileStorage) Read(ctx context.Context) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, exceptions.ErrStoreReadDocument(err, s.Driver())
	}
	return data, true, nil
}

// Write replaces the document through a temp file in the same directory and a
// rename, so readers see either the old or the new document.
func (s *fileStorage) Write(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}
	if err := tmp.Close(); err != nil {
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return exceptions.ErrStoreWriteDocument(err, s.Driver())
	}
	return nil
}
