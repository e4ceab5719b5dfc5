// Package preview walks an extracted question catalog as terminal prompts and
// serializes the answers the way the form would submit them. It lets authors
// check a catalog before generating a site.
package preview
