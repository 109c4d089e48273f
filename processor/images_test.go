package processor

import "testing"

func TestMimeTypeFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://utfs.io/f/abc123.png", "image/png"},
		{"https://utfs.io/f/abc123.jpg", "image/jpeg"},
		{"https://utfs.io/f/abc123.JPEG", "image/jpeg"},
		{"https://utfs.io/f/abc123.webp", "image/webp"},
		{"https://utfs.io/f/abc123.gif", "image/gif"},
		{"https://utfs.io/f/abc123.bmp", "image/jpeg"}, // unknown extension falls back
		{"https://utfs.io/f/noextension", "image/jpeg"},
	}

	for _, tc := range cases {
		if got := MimeTypeFromURL(tc.url); got != tc.want {
			t.Errorf("MimeTypeFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
