package version_test

import (
	"strings"
	"testing"

	"github.com/teneleven/advance/test"
	"github.com/teneleven/advance/version"
)

func TestTitle(t *testing.T) {
	test.ExpectEquality(t, strings.HasPrefix(version.Title(), version.ApplicationName), true)
	test.ExpectInequality(t, version.Revision(), "")
}
