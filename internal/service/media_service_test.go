package service

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rs/zerolog"
)

func newMediaFixture(t *testing.T) (*MediaService, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		PublicDir:      t.TempDir(),
		MaxUploadBytes: 1024,
	}
	return NewMediaService(cfg, zerolog.Nop()), cfg
}

// uploadPart builds a multipart file part the way gin hands it to handlers.
func uploadPart(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	part.Write(content)
	w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 10)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	header := form.File["image"][0]
	file, err := header.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { file.Close(); form.RemoveAll() })
	return file, header
}

func TestSaveUploadStoresFile(t *testing.T) {
	svc, cfg := newMediaFixture(t)
	content := []byte("fake image bytes")
	file, header := uploadPart(t, "photo.JPG", "image/jpeg", content)

	relPath, filename, err := svc.SaveUpload(file, header)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	if !strings.HasPrefix(relPath, config.ProductImagePath+"/") {
		t.Errorf("relPath = %q, want prefix %q", relPath, config.ProductImagePath+"/")
	}
	if !strings.HasSuffix(filename, ".jpg") {
		t.Errorf("filename = %q, want lowercased .jpg extension", filename)
	}

	onDisk := filepath.Join(cfg.UploadDir(), filename)
	got, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("stored bytes differ from upload")
	}
}

func TestSaveUploadGeneratesUniqueNames(t *testing.T) {
	svc, _ := newMediaFixture(t)

	names := make(map[string]bool)
	for i := 0; i < 5; i++ {
		file, header := uploadPart(t, "same.png", "image/png", []byte("x"))
		_, filename, err := svc.SaveUpload(file, header)
		if err != nil {
			t.Fatalf("SaveUpload: %v", err)
		}
		if names[filename] {
			t.Fatalf("filename %q repeated", filename)
		}
		names[filename] = true
	}
}

func TestSaveUploadRejectsExtension(t *testing.T) {
	svc, cfg := newMediaFixture(t)

	for _, name := range []string{"script.exe", "page.html", "noext", "archive.tar.gz"} {
		file, header := uploadPart(t, name, "", []byte("x"))
		if _, _, err := svc.SaveUpload(file, header); !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("SaveUpload(%q): got %v, want ErrUnsupportedFileType", name, err)
		}
	}

	// A rejected upload must leave nothing on disk.
	if entries, err := os.ReadDir(cfg.UploadDir()); err == nil && len(entries) > 0 {
		t.Errorf("rejected uploads left %d files behind", len(entries))
	}
}

func TestSaveUploadRejectsMismatchedContentType(t *testing.T) {
	svc, _ := newMediaFixture(t)

	file, header := uploadPart(t, "photo.jpg", "application/pdf", []byte("x"))
	if _, _, err := svc.SaveUpload(file, header); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("SaveUpload: got %v, want ErrUnsupportedFileType", err)
	}
}

func TestSaveUploadRejectsOversize(t *testing.T) {
	svc, _ := newMediaFixture(t)

	file, header := uploadPart(t, "big.jpg", "image/jpeg", bytes.Repeat([]byte("a"), 2048))
	if _, _, err := svc.SaveUpload(file, header); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("SaveUpload: got %v, want ErrFileTooLarge", err)
	}
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	svc, cfg := newMediaFixture(t)

	file, header := uploadPart(t, "photo.jpg", "image/jpeg", []byte("x"))
	relPath, filename, err := svc.SaveUpload(file, header)
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	svc.Delete(relPath)
	if _, err := os.Stat(filepath.Join(cfg.UploadDir(), filename)); !os.IsNotExist(err) {
		t.Error("file survived Delete")
	}

	// Deleting again or deleting nothing must not panic.
	svc.Delete(relPath)
	svc.Delete("")
}

func TestDeleteRefusesEscapingPaths(t *testing.T) {
	svc, cfg := newMediaFixture(t)

	outside := filepath.Join(filepath.Dir(cfg.PublicDir), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	svc.Delete("../outside.txt")
	svc.Delete("/etc/passwd")

	if _, err := os.Stat(outside); err != nil {
		t.Errorf("file outside the public dir was deleted: %v", err)
	}
}
