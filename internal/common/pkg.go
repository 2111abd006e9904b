package common

import (
	"path"
	"strconv"
	"strings"
)

// PkgAlias returns the name an import path is assumed to bind when the
// import has no explicit name: the last element, skipping a "vN" major
// version element and dropping a "go-" prefix or anything after a '.' or '-'.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)

	if len(base) > 1 && base[0] == 'v' {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(pkgPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i >= 0 {
		base = base[:i]
	}

	return base
}
