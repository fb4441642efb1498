package maven

import "testing"

func TestDependencyKeyIgnoresVersion(t *testing.T) {
	a := Dependency{Coordinate: NewCoordinate("g", "a", "1.0")}
	b := Dependency{Coordinate: NewCoordinate("g", "a", "2.0")}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %v vs %v", a.Key(), b.Key())
	}
}

func TestDependencyNormalizeDefaultsScope(t *testing.T) {
	parent := POM("com.example", "parent", "9")

	d := Dependency{Coordinate: Coordinate{ArtifactID: "lib"}}.Normalize(parent, PackagingJAR)
	if d.Scope != ScopeCompile {
		t.Errorf("Scope = %q, want %q", d.Scope, ScopeCompile)
	}
	if d.Coordinate.GroupID != "com.example" || d.Coordinate.Version != "9" {
		t.Errorf("coordinate not inherited: %v", d.Coordinate)
	}
	if d.Coordinate.Packaging != PackagingJAR {
		t.Errorf("Packaging = %q, want %q", d.Coordinate.Packaging, PackagingJAR)
	}
}

func TestDependencyNormalizeKeepsScope(t *testing.T) {
	parent := POM("g", "p", "1")
	d := Dependency{Coordinate: Coordinate{ArtifactID: "lib"}, Scope: "test"}.Normalize(parent, PackagingJAR)
	if d.Scope != "test" {
		t.Errorf("Scope = %q, want %q", d.Scope, "test")
	}
}

func TestProjectCloneIsDeep(t *testing.T) {
	parent := POM("g", "p", "1")
	original := &Project{
		Parent:     &parent,
		Coordinate: POM("g", "a", "1"),
		Deps: map[DepKey]Dependency{
			{GroupID: "g", ArtifactID: "b"}: {Coordinate: NewCoordinate("g", "b", "2")},
		},
		DepManagement: map[DepKey]Dependency{
			{GroupID: "g", ArtifactID: "c"}: {Coordinate: NewCoordinate("g", "c", "3")},
		},
		Properties: map[string]string{"k": "v"},
	}

	clone := original.Clone()
	clone.Deps[DepKey{GroupID: "x", ArtifactID: "y"}] = Dependency{}
	clone.DepManagement[DepKey{GroupID: "x", ArtifactID: "y"}] = Dependency{}
	clone.Properties["k"] = "mutated"
	*clone.Parent = POM("x", "y", "9")

	if len(original.Deps) != 1 {
		t.Error("clone mutation leaked into original Deps")
	}
	if len(original.DepManagement) != 1 {
		t.Error("clone mutation leaked into original DepManagement")
	}
	if original.Properties["k"] != "v" {
		t.Error("clone mutation leaked into original Properties")
	}
	if *original.Parent != parent {
		t.Error("clone mutation leaked into original Parent")
	}
}

func TestProjectCloneNilDepManagement(t *testing.T) {
	original := &Project{Coordinate: POM("g", "a", "1")}
	clone := original.Clone()
	if clone.DepManagement != nil {
		t.Error("Clone() should preserve a nil DepManagement")
	}
	if clone.Parent != nil {
		t.Error("Clone() should preserve a nil Parent")
	}
}

func TestNormalizeDepsRekeys(t *testing.T) {
	parent := POM("com.example", "parent", "9")
	// Parsed entry lacked a groupId, so its original key is partial.
	deps := map[DepKey]Dependency{
		{ArtifactID: "lib"}: {Coordinate: Coordinate{ArtifactID: "lib"}},
	}

	out := normalizeDeps(deps, parent, PackagingJAR)

	key := DepKey{GroupID: "com.example", ArtifactID: "lib"}
	dep, ok := out[key]
	if !ok {
		t.Fatalf("normalized map missing key %v; got %v", key, out)
	}
	if dep.Coordinate.Version != "9" {
		t.Errorf("Version = %q, want %q", dep.Coordinate.Version, "9")
	}
}
