package upload

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func makeFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(64 << 20)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestValidateAcceptsPNG(t *testing.T) {
	fh := makeFileHeader(t, "photo.png", "image/png", pngHeader)
	mimeType, err := Validate(fh, KindImage)
	if err != nil {
		t.Fatal(err)
	}
	if mimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", mimeType)
	}
}

func TestValidateRejectsOversizeImage(t *testing.T) {
	content := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
	fh := makeFileHeader(t, "big.png", "image/png", content)
	if _, err := Validate(fh, KindImage); !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	fh := makeFileHeader(t, "script.html", "text/html", []byte("<html><body>hi</body></html>"))
	if _, err := Validate(fh, KindImage); !errors.Is(err, ErrBadMIMEType) {
		t.Errorf("got %v, want ErrBadMIMEType", err)
	}
}

func TestValidateSniffsContentNotFilename(t *testing.T) {
	// executable bytes behind an image filename and declared type
	fh := makeFileHeader(t, "notreally.png", "image/png", []byte("#!/bin/sh\necho pwned\n"))
	if _, err := Validate(fh, KindImage); !errors.Is(err, ErrBadMIMEType) {
		t.Errorf("got %v, want ErrBadMIMEType", err)
	}
}

func TestValidateVideoDeclaredTypeFallback(t *testing.T) {
	// some containers sniff as octet-stream; the declared type decides then
	fh := makeFileHeader(t, "clip.mp4", "video/mp4", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05})
	mimeType, err := Validate(fh, KindVideo)
	if err != nil {
		t.Fatal(err)
	}
	if mimeType != "video/mp4" {
		t.Errorf("mime = %q, want video/mp4", mimeType)
	}
}

func TestValidateRejectsBMP(t *testing.T) {
	// sniffs as image/bmp, which is not in the allow list
	fh := makeFileHeader(t, "scan.bmp", "image/bmp", []byte{'B', 'M', 0x36, 0x00, 0x00, 0x00})
	if _, err := Validate(fh, KindImage); !errors.Is(err, ErrBadMIMEType) {
		t.Errorf("got %v, want ErrBadMIMEType", err)
	}
}

func TestValidateAcceptsLargeVideoUnderLimit(t *testing.T) {
	fh := makeFileHeader(t, "field-tour.mp4", "video/mp4", make([]byte, 40<<20))
	if _, err := Validate(fh, KindVideo); err != nil {
		t.Errorf("40MB mp4 rejected: %v", err)
	}
}

func TestValidateVideoSizeLimit(t *testing.T) {
	fh := makeFileHeader(t, "clip.webm", "video/webm", make([]byte, MaxVideoSize+1))
	if _, err := Validate(fh, KindVideo); !errors.Is(err, ErrTooLarge) {
		t.Errorf("got %v, want ErrTooLarge", err)
	}
}

func TestBuildFileNameKeepsExtension(t *testing.T) {
	name := buildFileName("My Photo.JPG")
	if len(name) < 5 || name[len(name)-4:] != ".jpg" {
		t.Errorf("buildFileName = %q, want lowercase .jpg suffix", name)
	}
	if name == buildFileName("My Photo.JPG") {
		t.Error("two uploads of the same file collided")
	}
}
