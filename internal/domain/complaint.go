package domain

import (
	"path/filepath"
	"strings"
)

// ComplaintSubmission is the request-scoped aggregate built from one
// inbound form post. It never outlives the request that created it.
type ComplaintSubmission struct {
	Name       string
	Email      string
	Phone      string
	Floor      string
	Room       string
	Complaint  string
	Attachment *ImageAttachment
}

// Valid reports whether all required fields are non-empty after trimming.
// Phone and Attachment never affect validity.
func (s ComplaintSubmission) Valid() bool {
	required := []string{s.Name, s.Email, s.Floor, s.Room, s.Complaint}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// ImageAttachment is an eligible uploaded image read fully into memory.
type ImageAttachment struct {
	Filename  string
	Extension string
	MIMEType  string
	SizeBytes int64
	Content   []byte
}

// ImageType resolves a filename against the allowed extension set.
// The match is a case-insensitive suffix check; on success it returns the
// lower-cased extension and the derived MIME type.
func ImageType(filename string, allowed []string) (ext, mimeType string, ok bool) {
	ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "", "", false
	}
	for _, candidate := range allowed {
		if ext == candidate {
			return ext, "image/" + ext, true
		}
	}
	return "", "", false
}

// CanonicalImageName returns the fixed attachment filename for an extension.
func CanonicalImageName(ext string) string {
	return "complaint_image." + ext
}
