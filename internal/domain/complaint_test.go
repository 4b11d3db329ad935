package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allowedExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

func TestImageType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantExt  string
		wantMIME string
		wantOK   bool
	}{
		{name: "png", filename: "leak.png", wantExt: "png", wantMIME: "image/png", wantOK: true},
		{name: "uppercase suffix", filename: "photo.JPG", wantExt: "jpg", wantMIME: "image/jpg", wantOK: true},
		{name: "jpeg", filename: "photo.jpeg", wantExt: "jpeg", wantMIME: "image/jpeg", wantOK: true},
		{name: "webp", filename: "wall.webp", wantExt: "webp", wantMIME: "image/webp", wantOK: true},
		{name: "disallowed", filename: "payload.exe", wantOK: false},
		{name: "double extension", filename: "archive.tar.gz", wantOK: false},
		{name: "no extension", filename: "image", wantOK: false},
		{name: "trailing dot", filename: "image.", wantOK: false},
		{name: "empty", filename: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ext, mimeType, ok := ImageType(tt.filename, allowedExtensions)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantExt, ext)
			require.Equal(t, tt.wantMIME, mimeType)
		})
	}
}

func TestCanonicalImageName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "complaint_image.png", CanonicalImageName("png"))
	require.Equal(t, "complaint_image.webp", CanonicalImageName("webp"))
}

func TestComplaintSubmission_Valid(t *testing.T) {
	t.Parallel()

	base := ComplaintSubmission{
		Name:      "Alice",
		Email:     "a@x.com",
		Floor:     "3",
		Room:      "12",
		Complaint: "Leaky faucet",
	}
	require.True(t, base.Valid())

	tests := []struct {
		name   string
		mutate func(*ComplaintSubmission)
	}{
		{name: "missing name", mutate: func(s *ComplaintSubmission) { s.Name = "" }},
		{name: "missing email", mutate: func(s *ComplaintSubmission) { s.Email = "" }},
		{name: "missing floor", mutate: func(s *ComplaintSubmission) { s.Floor = "" }},
		{name: "missing room", mutate: func(s *ComplaintSubmission) { s.Room = "" }},
		{name: "missing complaint", mutate: func(s *ComplaintSubmission) { s.Complaint = "" }},
		{name: "whitespace only name", mutate: func(s *ComplaintSubmission) { s.Name = "   " }},
		{name: "whitespace only complaint", mutate: func(s *ComplaintSubmission) { s.Complaint = "\t\n" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sub := base
			tt.mutate(&sub)
			require.False(t, sub.Valid())
		})
	}
}

func TestComplaintSubmission_PhoneAndAttachmentNeverAffectValidity(t *testing.T) {
	t.Parallel()

	sub := ComplaintSubmission{
		Name:      "Alice",
		Email:     "a@x.com",
		Floor:     "3",
		Room:      "12",
		Complaint: "Leaky faucet",
	}
	require.True(t, sub.Valid())

	sub.Phone = ""
	sub.Attachment = nil
	require.True(t, sub.Valid())

	sub.Phone = "+880123456789"
	sub.Attachment = &ImageAttachment{Filename: "complaint_image.png"}
	require.True(t, sub.Valid())
}
