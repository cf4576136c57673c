package filerepo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/RichyP48/Inscription-en-ligne-bf/internal/models"
	uuid "github.com/satori/go.uuid"
)

const pkg = "fileRepo/"

// repository keeps applicant files under {root}/{ownerID}/{key}. Keys are
// generated from a random identifier plus a sanitized basename, so no caller
// input ever reaches path resolution directly and collisions cannot happen.
type repository struct {
	root string
}

func NewRepository(root string) *repository {
	return &repository{root: root}
}

// Init provisions the root directory. Must be called before first use.
func (r *repository) Init() error {
	op := pkg + "Init"

	abs, err := filepath.Abs(r.root)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	r.root = abs

	if err := os.MkdirAll(r.root, 0o750); err != nil {
		return fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	return nil
}

// Reset wipes every stored file and re-provisions the root. Test and ops
// use only.
func (r *repository) Reset() error {
	op := pkg + "Reset"

	if err := os.RemoveAll(r.root); err != nil {
		return fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	return r.Init()
}

func (r *repository) Store(ownerID string, originalName string, content io.Reader) (string, error) {
	op := pkg + "Store"

	if !isSafePathPart(ownerID) {
		return "", fmt.Errorf("%s: %w", op, models.ErrInvalidFileName)
	}

	base, err := sanitizeBasename(originalName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	key := ownerID + "/" + uuid.NewV4().String() + "_" + base

	dst, err := r.resolve(key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	// Write to a temp file and publish with an atomic rename so a partial
	// write is never observable by Load.
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	return key, nil
}

func (r *repository) Load(key string) (io.ReadCloser, error) {
	op := pkg + "Load"

	path, err := r.resolve(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	return f, nil
}

func (r *repository) Delete(key string) error {
	op := pkg + "Delete"

	path, err := r.resolve(key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, models.ErrFileNotFound)
		}
		return fmt.Errorf("%s: %w", op, models.ErrFileStorage)
	}

	return nil
}

// resolve maps a key to an absolute path and verifies the result stays
// inside the root. The check runs on the resolved path, not the raw key, so
// encoded traversal sequences cannot slip through.
func (r *repository) resolve(key string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(r.root, filepath.FromSlash(key)))
	if err != nil {
		return "", models.ErrInvalidFileName
	}

	if abs != r.root && !strings.HasPrefix(abs, r.root+string(os.PathSeparator)) {
		return "", models.ErrInvalidFileName
	}

	return abs, nil
}

func sanitizeBasename(name string) (string, error) {
	if name == "" {
		return "", models.ErrInvalidFileName
	}

	if strings.Contains(name, "..") ||
		strings.ContainsAny(name, "/\\") ||
		strings.ContainsRune(name, 0) {
		return "", models.ErrInvalidFileName
	}

	base := filepath.Base(filepath.Clean(name))
	if base == "." || base == string(os.PathSeparator) {
		return "", models.ErrInvalidFileName
	}

	return base, nil
}

func isSafePathPart(part string) bool {
	return part != "" &&
		!strings.Contains(part, "..") &&
		!strings.ContainsAny(part, "/\\")
}
