// Package blobstore persists uploaded files on the local filesystem under
// a single base directory and hands back storage-relative references.
package blobstore

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnsupportedType = errors.New("blobstore: unsupported file type")
	ErrEmptyName       = errors.New("blobstore: empty file name")
	ErrNotFound        = errors.New("blobstore: file not found")
	ErrTooLarge        = errors.New("blobstore: file exceeds size limit")
)

// allowedExts is the upload allow-list, keyed by lowercase extension
// without the dot.
var allowedExts = map[string]struct{}{
	"jpeg": {},
	"jpg":  {},
	"png":  {},
	"pdf":  {},
	"docx": {},
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Store writes blobs under Dir. Stored names are prefixed with an
// upload timestamp so repeated uploads of the same file never collide
// within a second.
type Store struct {
	dir      string
	maxBytes int64

	now func() time.Time
}

func New(dir string, maxBytes int64) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("blobstore: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "blobstore: create dir")
	}
	return &Store{dir: dir, maxBytes: maxBytes, now: time.Now}, nil
}

// Allowed reports whether the extension of name is accepted for upload.
func Allowed(name string) bool {
	_, ok := allowedExts[ext(name)]
	return ok
}

// Save streams r into the store and returns the reference to record,
// shaped as "uploads/<stored name>".
func (s *Store) Save(name string, r io.Reader) (string, error) {
	stored, err := s.storedName(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "blobstore: create file")
	}
	defer f.Close()

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(err, "blobstore: write file")
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		os.Remove(f.Name())
		return "", ErrTooLarge
	}

	return "uploads/" + stored, nil
}

// Open resolves a stored name to a readable file. Names that would
// escape the base directory are rejected as not found.
func (s *Store) Open(name string) (*os.File, error) {
	clean := filepath.Base(filepath.Clean(name))
	if clean == "" || clean == "." || clean == ".." || clean != name {
		return nil, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "blobstore: open file")
	}
	return f, nil
}

func (s *Store) storedName(name string) (string, error) {
	base := sanitize(name)
	if base == "" {
		return "", ErrEmptyName
	}
	if _, ok := allowedExts[ext(base)]; !ok {
		return "", ErrUnsupportedType
	}
	return s.now().Format("02012006150405") + "_" + base, nil
}

func sanitize(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = unsafeChars.ReplaceAllString(base, "_")
	return strings.Trim(base, "._")
}

func ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
