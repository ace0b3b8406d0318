package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/papier/debugs"
	"github.com/reusee/papier/driver"
	"github.com/reusee/papier/logs"
	"github.com/reusee/papier/papierconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs papierconfigs.Module
	Driver  driver.Module
	Debugs  debugs.Module
}
