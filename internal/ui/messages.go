package ui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// DispatchMsg carries a callback that must run on the update loop. The tick
// scheduler wraps every tick in one.
type DispatchMsg struct {
	Fn func()
}

// ProgramDispatcher posts callbacks to a bubbletea program's update loop.
// It is created before the program and bound once the program exists.
type ProgramDispatcher struct {
	program atomic.Pointer[tea.Program]
}

// Bind attaches the program that receives dispatched callbacks
func (d *ProgramDispatcher) Bind(p *tea.Program) {
	d.program.Store(p)
}

// Dispatch sends fn to the update loop; it is dropped if no program is bound
func (d *ProgramDispatcher) Dispatch(fn func()) {
	if p := d.program.Load(); p != nil {
		p.Send(DispatchMsg{Fn: fn})
	}
}
