package maven

import (
	"path/filepath"
	"testing"

	"github.com/gavel-build/gavel/pkg/errors"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   string
		want Coordinate
	}{
		{"junit:junit:4.13.2", Coordinate{GroupID: "junit", ArtifactID: "junit", Version: "4.13.2"}},
		{"com.google.guava:guava:33.0-jre:jar", Coordinate{GroupID: "com.google.guava", ArtifactID: "guava", Version: "33.0-jre", Packaging: "jar"}},
		{"org.lwjgl:lwjgl:3.3.3:jar:natives-linux", Coordinate{GroupID: "org.lwjgl", ArtifactID: "lwjgl", Version: "3.3.3", Packaging: "jar", Classifier: "natives-linux"}},
	}

	for _, tt := range tests {
		got, err := ParseCoordinate(tt.in)
		if err != nil {
			t.Fatalf("ParseCoordinate(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCoordinate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCoordinateInvalid(t *testing.T) {
	for _, in := range []string{"", "junit", "junit:junit", "a:b:c:d:e:f", "junit::4.13.2"} {
		_, err := ParseCoordinate(in)
		if err == nil {
			t.Errorf("ParseCoordinate(%q) should fail", in)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidCoordinate) {
			t.Errorf("ParseCoordinate(%q) code = %q, want INVALID_COORDINATE", in, errors.GetCode(err))
		}
	}
}

func TestVersionCleaned(t *testing.T) {
	tests := []struct{ version, want string }{
		{"1.7.0", "1.7.0"},
		{"[1.7.0]", "1.7.0"},
		{"[1.7", "1.7"},
	}
	for _, tt := range tests {
		c := Coordinate{Version: tt.version}
		if got := c.VersionCleaned(); got != tt.want {
			t.Errorf("VersionCleaned(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	props := map[string]string{"lib.ver": "3.2.1"}

	tests := []struct{ version, want string }{
		{"${lib.ver}", "3.2.1"},
		{"prefix-${lib.ver}", "prefix-3.2.1"},
		{"${unknown.prop}", "${unknown.prop}"}, // unknown refs stay verbatim
		{"3.0.0", "3.0.0"},
		{"${broken", "${broken"},
	}
	for _, tt := range tests {
		c := Coordinate{Version: tt.version}.Interpolate(props)
		if c.Version != tt.want {
			t.Errorf("Interpolate(%q) = %q, want %q", tt.version, c.Version, tt.want)
		}
	}
}

func TestNormalizeInheritsFromParent(t *testing.T) {
	parent := POM("com.example", "parent", "9")

	c := Coordinate{ArtifactID: "child"}.Normalize(parent, PackagingPOM)
	want := Coordinate{GroupID: "com.example", ArtifactID: "child", Version: "9", Packaging: PackagingPOM}
	if c != want {
		t.Errorf("Normalize() = %v, want %v", c, want)
	}
}

func TestNormalizeKeepsOwnFields(t *testing.T) {
	parent := POM("com.example", "parent", "9")

	c := NewCoordinate("org.other", "lib", "2.0").Normalize(parent, PackagingJAR)
	want := Coordinate{GroupID: "org.other", ArtifactID: "lib", Version: "2.0", Packaging: PackagingJAR}
	if c != want {
		t.Errorf("Normalize() = %v, want %v", c, want)
	}
}

func TestNormalizeClearsClassifier(t *testing.T) {
	parent := POM("g", "p", "1")
	c := Coordinate{ArtifactID: "a", Classifier: "sources"}.Normalize(parent, PackagingJAR)
	if c.Classifier != "" {
		t.Errorf("Classifier = %q, want empty after normalization", c.Classifier)
	}
}

func TestFilename(t *testing.T) {
	c := Coordinate{ArtifactID: "appcompat", Version: "[1.7.0]", Packaging: PackagingJAR}
	want := filepath.Join("appcompat", "1.7.0.jar")
	if got := c.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestString(t *testing.T) {
	c := NewCoordinate("junit", "junit", "4.13.2")
	if got := c.String(); got != "junit:junit:4.13.2:?:?" {
		t.Errorf("String() = %q", got)
	}
}
