package storage

import "io"

type FileRepository interface {
	Store(ownerID string, originalName string, content io.Reader) (string, error)
	Load(key string) (io.ReadCloser, error)
	Delete(key string) error
}
