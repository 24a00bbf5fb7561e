package record

import "strings"

// PassThrough lists the path segments that resolve to the current node when
// it has no key of that name. Feeds address "y:id.value" or
// "endtime.utime" regardless of whether the element was imported as a
// scalar or as a Mapping.
var PassThrough = map[string]struct{}{
	"value":   {},
	"content": {},
	"utime":   {},
}

// Split breaks a dotted path into segments after removing one trailing ".".
func Split(path string) []string {
	return strings.Split(strings.TrimSuffix(path, "."), ".")
}

func isIndex(seg string) bool {
	if seg == "" {
		return false
	}

	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}

	return true
}
