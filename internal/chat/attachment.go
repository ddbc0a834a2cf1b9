package chat

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// ErrAttachmentIsDir is returned when a directory is picked as an attachment.
var ErrAttachmentIsDir = errors.New("attachment is a directory")

// Attachment describes a file picked for a message. Only metadata is kept;
// the demo never reads or uploads file contents.
type Attachment struct {
	Name     string
	Path     string
	Size     int64
	MIMEType string
}

// NewAttachment stats path and records its metadata.
func NewAttachment(path string) (*Attachment, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("attachment path is required")
	}
	abs, err := filepath.Abs(expandHome(trimmed))
	if err != nil {
		return nil, fmt.Errorf("resolve attachment %q: %w", trimmed, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat attachment: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, ErrAttachmentIsDir)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(abs)))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return &Attachment{
		Name:     filepath.Base(abs),
		Path:     abs,
		Size:     info.Size(),
		MIMEType: mimeType,
	}, nil
}

// IsImage reports whether the attachment is an image file.
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(a.MIMEType, "image/")
}

// Label is the short description shown on the attachment chip.
func (a *Attachment) Label() string {
	if a == nil {
		return ""
	}
	kind := "File"
	if a.IsImage() {
		kind = "Image"
	}
	return fmt.Sprintf("%s: %s (%s)", kind, a.Name, humanize.Bytes(uint64(a.Size)))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
