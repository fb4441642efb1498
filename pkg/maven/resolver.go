package maven

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gavel-build/gavel/pkg/errors"
)

// Options configures resolver behavior.
type Options struct {
	// Logger receives progress and fallback diagnostics (optional).
	Logger func(format string, args ...any)
}

// withDefaults returns a copy of Options with zero values replaced.
func (o Options) withDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Resolver resolves artifact coordinates against an ordered repository list.
//
// The resolver memoizes every descriptor it parses, keyed by the project's
// normalized coordinate (pom packaging, parent-inherited fields filled in).
// The cache hands out clones; cached descriptors are never mutated after
// insertion.
//
// The core is single-threaded: one resolution runs at a time, and recursive
// assembly calls (parents, BOMs) re-enter on the same goroutine. The cache
// mutex is held only for the lookup and the insert, never across network
// work or recursion.
type Resolver struct {
	repos   []Repository
	fetcher URLFetcher
	parser  POMParser
	logf    func(format string, args ...any)

	mu    sync.Mutex
	cache map[Coordinate]*Project

	// assembling tracks coordinates on the assembly stack so that parent or
	// BOM cycles fail instead of recursing without bound.
	assembling map[Coordinate]bool
}

// New creates a Resolver over the given repositories and injected transport
// and parser capabilities.
func New(repos []Repository, fetcher URLFetcher, parser POMParser, opts Options) *Resolver {
	opts = opts.withDefaults()
	return &Resolver{
		repos:      repos,
		fetcher:    fetcher,
		parser:     parser,
		logf:       opts.Logger,
		cache:      make(map[Coordinate]*Project),
		assembling: make(map[Coordinate]bool),
	}
}

// FetchProject fetches and normalizes the descriptor for coord from a single
// repository. The requested packaging is forced to pom. On a cache hit the
// transport is not consulted and a clone is returned.
//
// A freshly parsed project is normalized before caching: its own packaging
// is forced to pom, dependency entries get their packaging and scope
// defaults, and when a parent is declared the project coordinate,
// dependencies, and dependency management inherit missing fields from the
// parent. The project is cached under its final normalized coordinate,
// which may differ from the requested one.
func (r *Resolver) FetchProject(ctx context.Context, repo Repository, coord Coordinate) (*Project, error) {
	coord = coord.WithPackaging(PackagingPOM)

	r.mu.Lock()
	cached, ok := r.cache[coord]
	r.mu.Unlock()
	if ok {
		r.logf("descriptor cache hit for %s", coord)
		return cached.Clone(), nil
	}

	url, err := repo.URL(coord)
	if err != nil {
		return nil, err
	}

	r.logf("fetching %s", url)
	text, err := r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	project, err := r.parser.Parse([]byte(text))
	if err != nil {
		return nil, err
	}

	own := project.Coordinate.WithPackaging(PackagingPOM)

	// Dependency entries inherit missing fields from the parent when one is
	// declared; without a parent there is nothing to inherit, but packaging
	// and scope still get their defaults.
	var inherit Coordinate
	if project.Parent != nil {
		parent := project.Parent.WithPackaging(PackagingPOM)
		own = own.Normalize(parent, PackagingPOM)
		project.Parent = &parent
		inherit = parent
	}

	project.Deps = normalizeDeps(project.Deps, inherit, PackagingJAR)
	if project.DepManagement != nil {
		project.DepManagement = normalizeDeps(project.DepManagement, inherit, PackagingJAR)
	}

	project.Coordinate = own
	if project.Properties == nil {
		project.Properties = make(map[string]string)
	}
	if own.Version != "" {
		project.Properties["project.version"] = own.Version
	}

	r.mu.Lock()
	r.cache[own] = project
	r.mu.Unlock()

	return project.Clone(), nil
}

// BuildEffectivePOM assembles the effective project for coord: the raw
// descriptor with parent dependencies merged in (the child shadows the
// parent), dependency-management versions interpolated, and BOM imports
// expanded. Repositories are tried in configured order and the first one
// that yields the descriptor wins; FILE_NOT_FOUND falls through to the next
// repository, while any other error aborts the assembly.
func (r *Resolver) BuildEffectivePOM(ctx context.Context, coord Coordinate) (*Project, error) {
	coord = coord.WithPackaging(PackagingPOM)

	if r.assembling[coord] {
		return nil, errors.New(errors.ErrCodeDependencyCycle,
			"cycle while assembling %s (parent or BOM refers back to it)", coord)
	}
	r.assembling[coord] = true
	defer delete(r.assembling, coord)

	r.logf("building effective POM for %s", coord)

	for _, repo := range r.repos {
		project, err := r.FetchProject(ctx, repo, coord)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}

		if coord.Version != "" {
			project.Properties["project.version"] = coord.Version
		}

		if project.Parent != nil {
			parentProject, err := r.BuildEffectivePOM(ctx, *project.Parent)
			if err != nil {
				return nil, err
			}
			// First writer wins: the child's entry shadows the parent's.
			for key, dep := range parentProject.Deps {
				if _, exists := project.Deps[key]; !exists {
					project.Deps[key] = dep
				}
			}
		}

		if project.DepManagement != nil {
			for _, key := range sortedDepKeys(project.DepManagement) {
				dep := project.DepManagement[key]
				dep.Coordinate = dep.Coordinate.Interpolate(project.Properties)
				project.DepManagement[key] = dep
			}

			for _, key := range sortedDepKeys(project.DepManagement) {
				bom := project.DepManagement[key]
				if bom.Scope != ScopeImport {
					continue
				}
				r.logf("expanding BOM %s", bom.Coordinate)
				bomProject, err := r.BuildEffectivePOM(ctx, bom.Coordinate)
				if err != nil {
					return nil, err
				}
				// BOM entries overwrite: they are ordered after the
				// project's own entries.
				for bomKey, bomDep := range bomProject.DepManagement {
					project.DepManagement[bomKey] = bomDep
				}
			}
		}

		return project, nil
	}

	return nil, errors.New(errors.ErrCodeFileNotFound, "can't find %s in any repository", coord)
}

// TryDownloadPackage downloads the binary archive for coord, trying each
// repository in order and, within a repository, aar before jar. The first
// successful byte fetch wins and is tagged with the packaging that
// succeeded. Transport failures other than FILE_NOT_FOUND are logged and
// treated as "try the next candidate"; only exhaustion surfaces an error.
func (r *Resolver) TryDownloadPackage(ctx context.Context, coord Coordinate) (Archive, error) {
	for _, repo := range r.repos {
		for _, packaging := range []string{PackagingAAR, PackagingJAR} {
			url, err := repo.URL(coord.WithPackaging(packaging))
			if err != nil {
				return Archive{}, err
			}

			data, err := r.fetcher.FetchBytes(ctx, url)
			if err != nil {
				r.logf("trying next candidate for %s: %v", coord.ArtifactID, err)
				continue
			}
			if packaging == PackagingAAR {
				return AarArchive(data), nil
			}
			return JarArchive(data), nil
		}
	}
	return Archive{}, errors.New(errors.ErrCodeFileNotFound, "can't find %s", coord.ArtifactID)
}

// DownloadAll resolves the given roots transitively and materializes every
// compile-scope artifact under targetDir as {artifactId}/{version}.jar. An
// extraction file already present is assumed valid and is not downloaded
// again, which makes repeated runs idempotent.
//
// The walk is breadth-first over compile-scope edges with a visited set.
// The returned coordinates are in completion order with packaging rewritten
// to jar, ready for classpath assembly. On failure the error is returned
// together with the coordinates that completed extraction; their files
// remain on disk.
func (r *Resolver) DownloadAll(ctx context.Context, roots []Coordinate, targetDir string) ([]Coordinate, error) {
	var queue []Coordinate
	for _, root := range roots {
		queue = append(queue, root.WithPackaging(PackagingPOM))
	}

	visited := make(map[Coordinate]bool)
	var done []Coordinate

	for len(queue) > 0 {
		coord := queue[0]
		queue = queue[1:]

		if visited[coord] {
			continue
		}
		visited[coord] = true

		r.logf("resolving %s", coord)

		project, err := r.BuildEffectivePOM(ctx, coord)
		if err != nil {
			return finishedSet(done), err
		}

		if err := os.MkdirAll(filepath.Join(targetDir, project.Coordinate.ArtifactID), 0755); err != nil {
			return finishedSet(done), errors.Wrap(errors.ErrCodeInternal, err,
				"create directory for %s", project.Coordinate.ArtifactID)
		}

		jarCoord := project.Coordinate.WithPackaging(PackagingJAR)
		extractPath := filepath.Join(targetDir, jarCoord.Filename())

		switch _, statErr := os.Stat(extractPath); {
		case statErr == nil:
			r.logf("already extracted %s", extractPath)
		case os.IsNotExist(statErr):
			archive, err := r.TryDownloadPackage(ctx, project.Coordinate)
			if err != nil {
				return finishedSet(done), err
			}
			if err := archive.ExtractClasses(extractPath); err != nil {
				return finishedSet(done), err
			}
			// The archive buffer is dropped here; only the extracted file
			// survives past this iteration.
		default:
			return finishedSet(done), errors.Wrap(errors.ErrCodeInternal, statErr,
				"stat %s", extractPath)
		}

		done = append(done, coord)

		for _, key := range sortedDepKeys(project.Deps) {
			dep := project.Deps[key]
			if dep.Scope == ScopeCompile {
				queue = append(queue, dep.Coordinate)
			}
		}
	}

	return finishedSet(done), nil
}

// finishedSet rewrites completed coordinates to jar packaging and drops
// duplicates that differed only by packaging, preserving completion order.
func finishedSet(done []Coordinate) []Coordinate {
	seen := make(map[Coordinate]bool, len(done))
	out := make([]Coordinate, 0, len(done))
	for _, c := range done {
		jar := c.WithPackaging(PackagingJAR)
		if !seen[jar] {
			seen[jar] = true
			out = append(out, jar)
		}
	}
	return out
}

// Edge connects a project to one of its compile-scope dependencies.
type Edge struct {
	From Coordinate
	To   Coordinate
}

// Graph is the compile-scope dependency graph reachable from a set of roots.
type Graph struct {
	Nodes []Coordinate
	Edges []Edge
}

// DependencyGraph walks effective POMs breadth-first from the roots and
// returns the compile-scope dependency graph without downloading any
// archives. Nodes and edges use jar-form coordinates.
func (r *Resolver) DependencyGraph(ctx context.Context, roots []Coordinate) (*Graph, error) {
	var queue []Coordinate
	for _, root := range roots {
		queue = append(queue, root.WithPackaging(PackagingPOM))
	}

	visited := make(map[Coordinate]bool)
	nodeSeen := make(map[Coordinate]bool)
	g := &Graph{}

	addNode := func(c Coordinate) {
		if !nodeSeen[c] {
			nodeSeen[c] = true
			g.Nodes = append(g.Nodes, c)
		}
	}

	for len(queue) > 0 {
		coord := queue[0]
		queue = queue[1:]

		if visited[coord] {
			continue
		}
		visited[coord] = true

		project, err := r.BuildEffectivePOM(ctx, coord)
		if err != nil {
			return nil, err
		}

		from := project.Coordinate.WithPackaging(PackagingJAR)
		addNode(from)

		for _, key := range sortedDepKeys(project.Deps) {
			dep := project.Deps[key]
			if dep.Scope != ScopeCompile {
				continue
			}
			to := dep.Coordinate.WithPackaging(PackagingJAR)
			addNode(to)
			g.Edges = append(g.Edges, Edge{From: from, To: to})
			queue = append(queue, dep.Coordinate)
		}
	}

	return g, nil
}

// sortedDepKeys returns the map keys in lexical order. Descriptor maps lose
// document order, so deterministic iteration keeps BFS enqueueing and BOM
// merging stable across runs.
func sortedDepKeys(m map[DepKey]Dependency) []DepKey {
	keys := make([]DepKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b DepKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return keys
}
