package media

import (
	"fmt"
	"strings"
	"time"
)

type FileType string

const (
	TypeImage    FileType = "image"
	TypePDF      FileType = "pdf"
	TypeDocument FileType = "document"
)

// TypeForExt maps a lowercase file extension to its FileType. The second
// return is false for extensions the store refuses.
func TypeForExt(ext string) (FileType, bool) {
	switch ext {
	case "jpg", "jpeg", "png":
		return TypeImage, true
	case "pdf":
		return TypePDF, true
	case "docx":
		return TypeDocument, true
	default:
		return "", false
	}
}

// Item is an uploaded file recorded against a match, a team or a player.
// FileRef is the storage-relative reference, not a filesystem path.
type Item struct {
	ID         int64
	FileRef    string
	FileType   FileType
	Caption    string
	MatchID    *int64
	TeamID     *int64
	PlayerID   *int64
	UploadedBy *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsActive   bool
	IsDeleted  bool
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.FileRef) == "" {
		return fmt.Errorf("file reference is required")
	}
	if !i.FileType.Valid() {
		return fmt.Errorf("file type %q is invalid", i.FileType)
	}

	return nil
}

func (t FileType) Valid() bool {
	switch t {
	case TypeImage, TypePDF, TypeDocument:
		return true
	default:
		return false
	}
}
