package bccconfigs

import (
	"github.com/reusee/bcc/logs"
	"github.com/reusee/dscope"
)

// Module provides typed configuration values. It reads a configs.Loader from
// the scope: LoaderModule in binaries, a test loader in tests.
type Module struct {
	dscope.Module
	Logs logs.Module
}

// LoaderModule provides the loader over the discovered config files.
type LoaderModule struct {
	dscope.Module
	Logs logs.Module
}
