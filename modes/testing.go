package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest runs in development mode, where the builders check their
// allocation discipline.
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

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
