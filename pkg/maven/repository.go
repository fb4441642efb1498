package maven

import (
	"strings"

	"github.com/gavel-build/gavel/pkg/errors"
)

// Repository is a remote Maven repository addressed by its base URL.
type Repository struct {
	BaseURL string
}

// MavenCentral returns the canonical Maven Central repository.
func MavenCentral() Repository {
	return Repository{BaseURL: "https://repo.maven.apache.org/maven2"}
}

// GoogleMaven returns Google's Android artifact repository.
func GoogleMaven() Repository {
	return Repository{BaseURL: "https://dl.google.com/dl/android/maven2"}
}

// URL builds the remote artifact URL for a coordinate:
//
//	{base}/{groupId with '.'→'/'}/{artifactId}/{version}/{artifactId}-{version}[-{classifier}].{packaging}
//
// The version is bracket-cleaned. Group, artifact, and version are required;
// packaging defaults to jar. No trailing slash and no percent-encoding
// beyond what the HTTP client performs.
func (r Repository) URL(c Coordinate) (string, error) {
	if c.GroupID == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "'groupId' is missing from %s", c)
	}
	if c.ArtifactID == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "'artifactId' is missing from %s", c)
	}
	if c.Version == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "'version' is missing from %s", c)
	}

	packaging := c.Packaging
	if packaging == "" {
		packaging = PackagingJAR
	}
	version := c.VersionCleaned()

	var b strings.Builder
	b.WriteString(strings.TrimSuffix(r.BaseURL, "/"))
	b.WriteByte('/')
	b.WriteString(strings.ReplaceAll(c.GroupID, ".", "/"))
	b.WriteByte('/')
	b.WriteString(c.ArtifactID)
	b.WriteByte('/')
	b.WriteString(version)
	b.WriteByte('/')
	b.WriteString(c.ArtifactID)
	b.WriteByte('-')
	b.WriteString(version)
	if c.Classifier != "" {
		b.WriteByte('-')
		b.WriteString(c.Classifier)
	}
	b.WriteByte('.')
	b.WriteString(packaging)
	return b.String(), nil
}
