package scripts

import (
	"github.com/reusee/bcc/builders"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Builders builders.Module
}
