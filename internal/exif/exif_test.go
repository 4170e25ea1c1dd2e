package exif

import (
	"bytes"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCleanValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"quoted", `"FUJIFILM"`, strPtr("FUJIFILM")},
		{"unquoted", "FUJIFILM", strPtr("FUJIFILM")},
		{"multiple surrounding quotes", `""X-T4""`, strPtr("X-T4")},
		{"empty", "", nil},
		{"only quotes", `""`, nil},
		{"interior quotes kept", `"a "b" c"`, strPtr(`a "b" c`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanValue(tt.raw)
			if !equalPtr(got, tt.want) {
				t.Errorf("cleanValue(%q) = %v, want %v", tt.raw, deref(got), deref(tt.want))
			}
		})
	}
}

func TestCameraName(t *testing.T) {
	tests := []struct {
		name  string
		make  *string
		model *string
		want  *string
	}{
		{"both, distinct", strPtr("FUJIFILM"), strPtr("X-T4"), strPtr("FUJIFILM X-T4")},
		{"model repeats make", strPtr("NIKON"), strPtr("NIKON D750"), strPtr("NIKON D750")},
		{"model only", nil, strPtr("X-T4"), strPtr("X-T4")},
		{"make only", strPtr("FUJIFILM"), nil, strPtr("FUJIFILM")},
		{"neither", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cameraName(tt.make, tt.model)
			if !equalPtr(got, tt.want) {
				t.Errorf("cameraName() = %v, want %v", deref(got), deref(tt.want))
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name string
		meta Metadata
		want string
	}{
		{
			name: "all fields",
			meta: Metadata{
				Camera:      strPtr("FUJIFILM X-T4"),
				Lens:        strPtr("XF18-55mm"),
				FocalLength: strPtr("18 mm"),
				Aperture:    strPtr("5.6"),
				Exposure:    strPtr("1/280"),
				ISO:         strPtr("320"),
			},
			want: "FUJIFILM X-T4 · XF18-55mm · 18 mm  ƒ/5.6  1/280s  ISO 320",
		},
		{
			name: "settings only",
			meta: Metadata{
				Aperture: strPtr("2.8"),
				ISO:      strPtr("400"),
			},
			want: "ƒ/2.8  ISO 400",
		},
		{
			name: "camera only",
			meta: Metadata{Camera: strPtr("FUJIFILM X-T4")},
			want: "FUJIFILM X-T4",
		},
		{
			name: "whole second exposure",
			meta: Metadata{Exposure: strPtr("2")},
			want: "2s",
		},
		{
			name: "empty",
			meta: Metadata{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDegradesGracefully(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		got := Extract(filepath.Join(t.TempDir(), "nope.jpg"))
		if got != (Metadata{}) {
			t.Errorf("Extract() on missing file = %+v, want zero value", got)
		}
	})

	t.Run("image without exif", func(t *testing.T) {
		path := writeTestJPEG(t, 10, 10)
		got := Extract(path)
		if got != (Metadata{}) {
			t.Errorf("Extract() on plain JPEG = %+v, want zero value", got)
		}
	})

	t.Run("garbage file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.jpg")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatal(err)
		}
		got := Extract(path)
		if got != (Metadata{}) {
			t.Errorf("Extract() on garbage = %+v, want zero value", got)
		}
	})
}

func TestCaptureDateMissing(t *testing.T) {
	path := writeTestJPEG(t, 10, 10)
	if got := CaptureDate(path); got != nil {
		t.Errorf("CaptureDate() = %q, want nil", *got)
	}
}

func writeTestJPEG(t *testing.T, width, height int) string {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.jpg")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
	return path
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
