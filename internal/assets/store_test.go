package assets

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestUploadImageRejectsBeforeAnyBytesMove(t *testing.T) {
	ctx := context.Background()
	s := &Store{bucket: "test", publicURL: "http://localhost"}

	_, err := s.UploadImage(ctx, "logo.png", "image/png", bytes.NewReader(nil), MaxImageSize+1)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("oversize upload: error = %v, want ErrTooLarge", err)
	}

	_, err = s.UploadImage(ctx, "notes.txt", "text/plain", bytes.NewReader(nil), 10)
	if !errors.Is(err, ErrNotAnImage) {
		t.Errorf("non-image upload: error = %v, want ErrNotAnImage", err)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"My Logo.PNG":   "my-logo.png",
		"../../evil.sh": "....evil.sh",
		"Ünïcode?.png":  "ncode.png",
		"":              "image",
	}
	for in, want := range cases {
		if got := sanitizeName(in); got != want {
			t.Errorf("sanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
