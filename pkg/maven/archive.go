package maven

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/gavel-build/gavel/pkg/errors"
)

// classesEntry is the archive member holding the class archive inside an aar.
const classesEntry = "classes.jar"

// Archive holds downloaded artifact bytes tagged with the packaging that was
// actually fetched. The tag decides how [Archive.ExtractClasses] unwraps the
// payload; packaging never leaks into the core as a free-form string beyond
// URL construction.
type Archive struct {
	packaging string
	data      []byte
}

// JarArchive tags raw bytes as a plain jar.
func JarArchive(data []byte) Archive {
	return Archive{packaging: PackagingJAR, data: data}
}

// AarArchive tags raw bytes as an Android aar container.
func AarArchive(data []byte) Archive {
	return Archive{packaging: PackagingAAR, data: data}
}

// Packaging returns the tag this archive was downloaded as.
func (a Archive) Packaging() string { return a.packaging }

// Size returns the raw payload length in bytes.
func (a Archive) Size() int { return len(a.data) }

// ExtractClasses writes the usable class archive to path. A jar is written
// as-is; an aar is opened as a zip archive and its "classes.jar" entry is
// written decompressed. A missing entry or corrupt zip fails the artifact.
func (a Archive) ExtractClasses(path string) error {
	switch a.packaging {
	case PackagingJAR:
		if err := os.WriteFile(path, a.data, 0644); err != nil {
			return errors.Wrap(errors.ErrCodeExtract, err, "write %s", path)
		}
		return nil

	case PackagingAAR:
		zr, err := zip.NewReader(bytes.NewReader(a.data), int64(len(a.data)))
		if err != nil {
			return errors.Wrap(errors.ErrCodeExtract, err, "open aar for %s", path)
		}
		for _, f := range zr.File {
			if f.Name != classesEntry {
				continue
			}
			rc, err := f.Open()
			if err != nil {
				return errors.Wrap(errors.ErrCodeExtract, err, "open %s in aar", classesEntry)
			}
			data, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return errors.Wrap(errors.ErrCodeExtract, err, "read %s from aar", classesEntry)
			}
			if err := os.WriteFile(path, data, 0644); err != nil {
				return errors.Wrap(errors.ErrCodeExtract, err, "write %s", path)
			}
			return nil
		}
		return errors.New(errors.ErrCodeExtract, "no %s entry in aar for %s", classesEntry, path)

	default:
		return errors.New(errors.ErrCodeInternal, "unsupported packaging %q", a.packaging)
	}
}
