// Package maven implements a minimal Maven-style artifact resolver.
//
// Given root artifact coordinates, the [Resolver] assembles an effective
// project descriptor for each (parent inheritance, property interpolation,
// BOM imports), transitively walks its compile-scope dependencies across an
// ordered list of repositories, downloads the binary archives, and
// materializes extracted class archives under a target directory. The
// returned coordinates can be joined into a classpath.
//
// # Effective projects
//
// A raw POM rarely stands alone: coordinates may be inherited from a parent
// descriptor, versions may be property references, and dependency management
// may be imported from BOM descriptors. [Resolver.BuildEffectivePOM] drives
// all of these to a fully normalized descriptor, trying repositories in
// configured order and memoizing every parsed descriptor by its normalized
// coordinate.
//
// # Collaborators
//
// The core is deliberately narrow about the outside world. HTTP transport
// and POM parsing are injected through the [URLFetcher] and [POMParser]
// interfaces; default implementations live in the fetch and pomxml packages.
//
// # Failure model
//
// Errors carry codes from the errors package. FILE_NOT_FOUND is the single
// recoverable signal and is consumed in exactly two places: the repository
// loop of package download and the repository loop of effective-project
// assembly. Every other error terminates the current resolution.
//
// # Limitations
//
// Version handling is intentionally minimal: a surrounding [ ] pair is
// stripped (single-version soft pin) and a single ${name} reference is
// interpolated from the project properties. Maven's full version-range
// grammar, exclusions, optional dependencies, and profile activation are
// out of scope.
package maven
