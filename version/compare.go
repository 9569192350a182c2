// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/marquee-cli/marquee/util"
)

// release matches the tags marquee is published under, such as v0.2.0 or
// v0.2.0-rc.1.
var release = regexp.MustCompile(`^v?(?P<major>\d+)\.(?P<minor>\d+)\.(?P<patch>\d+)(?:-(?P<pre>[0-9A-Za-z.]+))?$`)

type semver struct {
	core [3]int
	pre  []string
}

func parse(s string) (semver, error) {
	groups := util.ReGroups(release, strings.TrimSpace(s))
	if len(groups) == 0 {
		return semver{}, fmt.Errorf("invalid version: %q", s)
	}

	var v semver
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(groups[name])
		if err != nil {
			return semver{}, fmt.Errorf("invalid version: %q: %w", s, err)
		}
		v.core[i] = n
	}

	if pre := groups["pre"]; pre != "" {
		v.pre = strings.Split(pre, ".")
	}

	return v, nil
}

// comparePre orders pre-release identifiers. A release sorts after any of
// its pre-releases, numeric identifiers compare as numbers and sort before
// alphanumeric ones.
func comparePre(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		an, aErr := strconv.Atoi(a[i])
		bn, bErr := strconv.Atoi(b[i])

		var c int
		switch {
		case aErr == nil && bErr == nil:
			c = cmp.Compare(an, bn)
		case aErr == nil:
			c = -1
		case bErr == nil:
			c = 1
		default:
			c = strings.Compare(a[i], b[i])
		}

		if c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// Compare orders two release tags.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av.core {
		if c := cmp.Compare(av.core[i], bv.core[i]); c != 0 {
			return c, nil
		}
	}

	return comparePre(av.pre, bv.pre), nil
}
