package uploads

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Store turns an uploaded file into a URL that can be persisted on the row.
// The two implementations are interchangeable; the strategy is picked once
// at startup from config.
type Store interface {
	Save(file *multipart.FileHeader) (string, error)
}

// DiskStore writes uploads under a fixed directory and hands back a public
// URL of the form <baseURL>/uploads/<filename>.
type DiskStore struct {
	dir     string
	baseURL string
}

// NewDiskStore creates the upload directory if it is absent.
func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	name := diskFilename(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s", s.baseURL, name), nil
}

// diskFilename builds a collision-resistant name: a millisecond timestamp
// prefix plus the slugged original name. "My Pic (1).PNG" -> "1700000000000-my-pic-1.png"
func diskFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = slug.Make(base)
	if base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), base, ext)
}

// InlineStore encodes the upload in place as a data: URI. Nothing touches
// the filesystem; the image lives inside the stored image_url column.
type InlineStore struct{}

func (InlineStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(raw)), nil
}
