package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest replaces ForProduction in tests. It provides the running
// *testing.T and the development mode.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
