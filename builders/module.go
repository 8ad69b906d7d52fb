package builders

import (
	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bccconfigs.Module
}

// NewBuilder returns a fresh Builder for one compilation.
type NewBuilder func() *Builder

func (Module) NewBuilder(
	logger logs.Logger,
	checked bccconfigs.Checked,
) NewBuilder {
	return func() *Builder {
		b := New()
		b.model.Checked = bool(checked)
		b.logger = logger
		return b
	}
}
