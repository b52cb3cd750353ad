// Package gitrepo contains helpers for interrogating Git repositories.
//
// It exposes RepositoryInspector for read-only queries against a checkout:
// metadata-marker detection, git availability probing, submodule listing,
// head revision lookup, and worktree cleanliness checks. All queries shell
// out to the git CLI and trust its line-oriented output; nothing in this
// package ever mutates a repository.
package gitrepo
