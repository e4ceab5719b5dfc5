// Package source exposes the public contracts for retrieving survey form
// markup: Source identifies where a document lives, Loader fetches it, and
// Document carries the UTF-8 markup with its origin. Implementations live
// under internal/source so the HTTP client stays hidden from consumers.
package source
