// Package digester computes SHA256 digests of files and in-memory
// content. Configured outputs use it to skip rewriting a file whose
// content has not changed, which keeps its mtime stable for the build.
package digester
