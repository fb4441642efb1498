package maven

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gavel-build/gavel/pkg/errors"
)

func buildAAR(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func TestJarArchiveWritesBytesAsIs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lib.jar")
	payload := []byte("jar bytes")

	if err := JarArchive(payload).ExtractClasses(path); err != nil {
		t.Fatalf("ExtractClasses() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("extracted = %q, want %q", got, payload)
	}
}

func TestAarArchiveUnwrapsClassesJar(t *testing.T) {
	classes := []byte("compiled classes")
	aar := buildAAR(t, map[string][]byte{
		"AndroidManifest.xml": []byte("<manifest/>"),
		"classes.jar":         classes,
		"res/values.xml":      []byte("<resources/>"),
	})

	path := filepath.Join(t.TempDir(), "lib.jar")
	if err := AarArchive(aar).ExtractClasses(path); err != nil {
		t.Fatalf("ExtractClasses() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read extracted file: %v", err)
	}
	if !bytes.Equal(got, classes) {
		t.Errorf("extracted = %q, want %q", got, classes)
	}
}

func TestAarArchiveMissingClassesJar(t *testing.T) {
	aar := buildAAR(t, map[string][]byte{"AndroidManifest.xml": []byte("<manifest/>")})

	err := AarArchive(aar).ExtractClasses(filepath.Join(t.TempDir(), "lib.jar"))
	if err == nil {
		t.Fatal("ExtractClasses() should fail without classes.jar")
	}
	if !errors.Is(err, errors.ErrCodeExtract) {
		t.Errorf("code = %q, want EXTRACT_ERROR", errors.GetCode(err))
	}
}

func TestAarArchiveCorruptZip(t *testing.T) {
	err := AarArchive([]byte("not a zip")).ExtractClasses(filepath.Join(t.TempDir(), "lib.jar"))
	if err == nil {
		t.Fatal("ExtractClasses() should fail on corrupt zip")
	}
	if !errors.Is(err, errors.ErrCodeExtract) {
		t.Errorf("code = %q, want EXTRACT_ERROR", errors.GetCode(err))
	}
}

func TestArchivePackagingTag(t *testing.T) {
	if got := JarArchive(nil).Packaging(); got != PackagingJAR {
		t.Errorf("Packaging() = %q, want %q", got, PackagingJAR)
	}
	if got := AarArchive(nil).Packaging(); got != PackagingAAR {
		t.Errorf("Packaging() = %q, want %q", got, PackagingAAR)
	}
}
