package export

import (
	"encoding/json"
	"testing"

	"nexus/admin/internal/content"
)

func TestJSONExport(t *testing.T) {
	doc := content.Default()
	doc.Settings.CompanyName = "EXPORT TEST"

	result, err := JSON(doc)
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	if result.Filename != "cms-data.json" {
		t.Errorf("filename = %q, want cms-data.json", result.Filename)
	}
	if result.MimeType != "application/json" {
		t.Errorf("mime type = %q", result.MimeType)
	}

	var parsed content.Document
	if err := json.Unmarshal(result.Data, &parsed); err != nil {
		t.Fatalf("exported data not parseable: %v", err)
	}
	if parsed.Settings.CompanyName != "EXPORT TEST" {
		t.Errorf("companyName = %q", parsed.Settings.CompanyName)
	}
}

func TestDataURL(t *testing.T) {
	got := dataURL("<p>a b</p>")
	want := "data:text/html;charset=utf-8,%3Cp%3Ea%20b%3C%2Fp%3E"
	if got != want {
		t.Errorf("dataURL = %q, want %q", got, want)
	}

	// Unreserved characters pass through, multi-byte runes are encoded per
	// UTF-8 byte.
	got = dataURL("Az09-_.~é")
	want = "data:text/html;charset=utf-8,Az09-_.~%C3%A9"
	if got != want {
		t.Errorf("dataURL = %q, want %q", got, want)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Nexus Studio": "Nexus-Studio",
		"Weird//Name!": "WeirdName",
		"///":          "site",
		"":             "site",
	}
	for in, want := range cases {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
