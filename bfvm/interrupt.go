package bfvm

type Interrupt struct {
	Suspend bool
}

var InterruptSuspend = &Interrupt{
	Suspend: true,
}
