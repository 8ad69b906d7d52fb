package debugs

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
