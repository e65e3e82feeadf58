package filesystem

import "strings"

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}

// ResolvePaths applies ResolvePath to every entry.
func ResolvePaths(uris []string) []string {
	if len(uris) == 0 {
		return nil
	}
	out := make([]string, len(uris))
	for i, u := range uris {
		out[i] = ResolvePath(u)
	}
	return out
}
