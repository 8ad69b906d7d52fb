package main

import (
	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/debugs"
	"github.com/reusee/bcc/scripts"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Scripts scripts.Module
	Debugs  debugs.Module
	Loader  bccconfigs.LoaderModule
}
