package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/machines"
)

type Module struct {
	dscope.Module
	Machines machines.Module
}
