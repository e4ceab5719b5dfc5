// Package template defines the template contracts used by the site
// scaffolder: ranked candidate resolution with a silent empty fallback, and
// rendering against a context map. The pongo2-backed implementation lives in
// the gotemplate subpackage.
package template
