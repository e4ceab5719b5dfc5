package source

import (
	"fmt"
	"strings"
)

// DocsKey returns the path segment preceding the final slash of location.
// For a published form URL such as
//
//	https://docs.google.com/forms/d/<key>/viewform
//
// that segment is the form key written into the site configuration.
func DocsKey(location string) (string, error) {
	parts := strings.Split(location, "/")
	if len(parts) < 2 {
		return "", fmt.Errorf("source: no key segment in %q", location)
	}
	return parts[len(parts)-2], nil
}
