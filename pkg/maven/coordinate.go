package maven

import (
	"path/filepath"
	"strings"

	"github.com/gavel-build/gavel/pkg/errors"
)

// Default packaging values applied during normalization.
const (
	PackagingJAR = "jar"
	PackagingAAR = "aar"
	PackagingPOM = "pom"
)

// Coordinate identifies a Maven artifact. An empty field means "unset";
// partial coordinates occur in raw descriptors and are filled in by
// [Coordinate.Normalize] during effective-project assembly. Nothing else
// defaults fields silently.
//
// Coordinates are immutable value types: every method returns a copy.
// The zero value compares equal field-by-field, so Coordinate is usable
// as a map key with full five-field identity.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string
	Classifier string
}

// NewCoordinate returns a coordinate with group, artifact, and version set.
func NewCoordinate(groupID, artifactID, version string) Coordinate {
	return Coordinate{GroupID: groupID, ArtifactID: artifactID, Version: version}
}

// POM returns a coordinate with pom packaging, the form used to request
// project descriptors.
func POM(groupID, artifactID, version string) Coordinate {
	return Coordinate{GroupID: groupID, ArtifactID: artifactID, Version: version, Packaging: PackagingPOM}
}

// ParseCoordinate parses "groupId:artifactId:version" with optional
// ":packaging" and ":classifier" segments, as accepted on the command line.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
			"invalid coordinate %q (expected groupId:artifactId:version)", s)
	}
	for i, p := range parts[:3] {
		if strings.TrimSpace(p) == "" {
			fields := []string{"groupId", "artifactId", "version"}
			return Coordinate{}, errors.New(errors.ErrCodeInvalidCoordinate,
				"invalid coordinate %q: empty %s", s, fields[i])
		}
	}

	c := Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}
	if len(parts) > 3 {
		c.Packaging = parts[3]
	}
	if len(parts) > 4 {
		c.Classifier = parts[4]
	}
	return c, nil
}

// WithPackaging returns a copy with the packaging replaced.
func (c Coordinate) WithPackaging(packaging string) Coordinate {
	c.Packaging = packaging
	return c
}

// VersionCleaned returns the version literal with surrounding [ ] brackets
// removed. A bracketed single version is Maven's soft-pin form; the brackets
// never appear in URLs or filenames.
func (c Coordinate) VersionCleaned() string {
	return strings.NewReplacer("[", "", "]", "").Replace(c.Version)
}

// Interpolate substitutes a single ${name} reference in the version literal
// from the given property map. Unknown references are left verbatim; only
// the version field participates in interpolation.
func (c Coordinate) Interpolate(properties map[string]string) Coordinate {
	v := c.Version
	start := strings.Index(v, "${")
	if start < 0 {
		return c
	}
	end := strings.Index(v[start:], "}")
	if end < 0 {
		return c
	}
	expr := v[start+2 : start+end]
	if val, ok := properties[expr]; ok {
		c.Version = v[:start] + val + v[start+end+1:]
	}
	return c
}

// Normalize fills missing group, artifact, and version from the parent
// coordinate and defaults the packaging when unset. The classifier does not
// participate in inheritance and is cleared.
func (c Coordinate) Normalize(parent Coordinate, defaultPackaging string) Coordinate {
	out := Coordinate{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Packaging:  c.Packaging,
	}
	if out.GroupID == "" {
		out.GroupID = parent.GroupID
	}
	if out.ArtifactID == "" {
		out.ArtifactID = parent.ArtifactID
	}
	if out.Version == "" {
		out.Version = parent.Version
	}
	if out.Packaging == "" {
		out.Packaging = defaultPackaging
	}
	return out
}

// Filename returns the relative extraction path "{artifactId}/{version}.{packaging}"
// with the cleaned version. Requires artifact, version, and packaging to be set.
func (c Coordinate) Filename() string {
	return filepath.Join(c.ArtifactID, c.VersionCleaned()+"."+c.Packaging)
}

// String renders "groupId:artifactId:version:packaging:classifier" with "?"
// for unset fields.
func (c Coordinate) String() string {
	f := func(s string) string {
		if s == "" {
			return "?"
		}
		return s
	}
	return strings.Join([]string{
		f(c.GroupID), f(c.ArtifactID), f(c.Version), f(c.Packaging), f(c.Classifier),
	}, ":")
}
