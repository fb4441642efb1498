// Package pkg provides the core libraries for gavel artifact resolution.
//
// # Overview
//
// Gavel downloads Maven artifacts together with their transitive
// compile-scope dependencies. The pkg directory is organized by concern:
//
//	[maven]    - Domain logic: coordinates, effective POM assembly,
//	             transitive resolution, archive extraction
//	[pomxml]   - POM descriptor parsing
//	[fetch]    - HTTP transport with retries and descriptor caching
//	[cache]    - Cache backends (file, redis, null)
//	[depgraph] - DOT/SVG export of resolved dependency graphs
//	[config]   - TOML configuration
//	[errors]   - Structured error codes
//	[httputil] - Retry with exponential backoff
//
// # Architecture
//
// The typical data flow through gavel:
//
//	Maven repository (POM descriptors)
//	         ↓
//	    [pomxml] package (parse project model)
//	         ↓
//	    [maven] package (effective POM, BFS resolution)
//	         ↓
//	    jar/aar download + classes extraction
//	         ↓
//	    local directory of class jars
//
// # Quick Start
//
// Resolve an artifact and everything it needs at compile time:
//
//	import (
//	    "context"
//	    "github.com/gavel-build/gavel/pkg/fetch"
//	    "github.com/gavel-build/gavel/pkg/maven"
//	    "github.com/gavel-build/gavel/pkg/pomxml"
//	)
//
//	repos := []maven.Repository{maven.MavenCentral(), maven.GoogleMaven()}
//	r := maven.New(repos, fetch.NewClient(), pomxml.New(), maven.Options{})
//
//	coord, _ := maven.ParseCoordinate("junit:junit:4.13.2")
//	jars, _ := r.DownloadAll(context.Background(), []maven.Coordinate{coord}, "target")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/maven/...    # Specific package
//
// [maven]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/maven
// [pomxml]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/pomxml
// [fetch]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/fetch
// [cache]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/cache
// [depgraph]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/depgraph
// [config]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/config
// [errors]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/gavel-build/gavel/pkg/httputil
package pkg
