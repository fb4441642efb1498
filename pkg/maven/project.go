package maven

import "maps"

// ScopeCompile is the dependency scope walked transitively; ScopeImport
// marks a dependency-management entry as a BOM reference.
const (
	ScopeCompile = "compile"
	ScopeImport  = "import"
)

// DepKey is the identity of a dependency within a project's dependency maps.
// Versions and packaging deliberately do not participate: a project declares
// at most one version per (groupId, artifactId) pair, and the first writer
// wins during parent merging.
type DepKey struct {
	GroupID    string
	ArtifactID string
}

// String renders "groupId:artifactId" with "?" for unset fields.
func (k DepKey) String() string {
	f := func(s string) string {
		if s == "" {
			return "?"
		}
		return s
	}
	return f(k.GroupID) + ":" + f(k.ArtifactID)
}

// Dependency pairs an artifact coordinate with a resolution scope.
type Dependency struct {
	Coordinate Coordinate
	Scope      string
}

// Key returns the (groupId, artifactId) identity of this dependency.
func (d Dependency) Key() DepKey {
	return DepKey{GroupID: d.Coordinate.GroupID, ArtifactID: d.Coordinate.ArtifactID}
}

// Normalize fills missing coordinate fields from the parent and defaults the
// scope to compile.
func (d Dependency) Normalize(parent Coordinate, defaultPackaging string) Dependency {
	out := Dependency{
		Coordinate: d.Coordinate.Normalize(parent, defaultPackaging),
		Scope:      d.Scope,
	}
	if out.Scope == "" {
		out.Scope = ScopeCompile
	}
	return out
}

// Project is a parsed POM descriptor. Raw projects come out of a [POMParser]
// with whatever the document declared; the resolver normalizes them before
// caching. Cached projects always carry pom packaging on their own
// coordinate and fully specified dependency entries.
type Project struct {
	// Parent points at the parent descriptor, if any.
	Parent *Coordinate

	// Coordinate is the project's own identity.
	Coordinate Coordinate

	// Deps holds the project's own dependencies keyed by (groupId, artifactId).
	Deps map[DepKey]Dependency

	// DepManagement is the dependencyManagement block, nil when absent.
	// Entries with import scope are BOM references.
	DepManagement map[DepKey]Dependency

	// Properties holds the <properties> block used for version interpolation.
	Properties map[string]string
}

// Clone returns a deep copy. The descriptor cache hands out clones so that
// callers can mutate their view during assembly without corrupting the
// cached descriptor.
func (p *Project) Clone() *Project {
	out := &Project{
		Coordinate: p.Coordinate,
		Deps:       maps.Clone(p.Deps),
		Properties: maps.Clone(p.Properties),
	}
	if p.Parent != nil {
		parent := *p.Parent
		out.Parent = &parent
	}
	if p.DepManagement != nil {
		out.DepManagement = maps.Clone(p.DepManagement)
	}
	return out
}

// normalizeDeps normalizes every entry against the parent coordinate and
// re-keys the map, since normalization can fill in a missing groupId.
func normalizeDeps(deps map[DepKey]Dependency, parent Coordinate, defaultPackaging string) map[DepKey]Dependency {
	out := make(map[DepKey]Dependency, len(deps))
	for _, dep := range deps {
		dep = dep.Normalize(parent, defaultPackaging)
		out[dep.Key()] = dep
	}
	return out
}
