package model

import (
	"github.com/zxconsole/zxconsole/internal/agent"
)

const ringBufferCap = 64 * 1024

// ringBuffer is a bounded byte buffer that evicts the oldest bytes when
// full (spec §3: "bounded-size stdout/stderr ring buffers... oldest bytes
// evicted").
type ringBuffer struct {
	cap int
	buf []byte
}

func newRingBuffer(cap int) *ringBuffer { return &ringBuffer{cap: cap} }

func (r *ringBuffer) Write(data []byte) {
	r.buf = append(r.buf, data...)
	if over := len(r.buf) - r.cap; over > 0 {
		r.buf = r.buf[over:]
	}
}

func (r *ringBuffer) Bytes() []byte { return r.buf }

// ProcessEventKind distinguishes the observer events a Process fires (spec
// §3: "thread creation/destruction, module load, symbol indexing failures,
// stdio bytes").
type ProcessEventKind int

const (
	ProcessThreadCreated ProcessEventKind = iota
	ProcessThreadDestroyed
	ProcessModuleLoaded
	ProcessSymbolIndexFailed
	ProcessStdio
)

// ProcessEvent is delivered to Process observers.
type ProcessEvent struct {
	Kind    ProcessEventKind
	Process *Process
	Thread  *Thread
	Module  agent.ModuleInfo
	Stream  agent.IOStream
	Data    []byte
	Err     error
}

// Process is an attached-to running process (spec §3).
type Process struct {
	target *Target

	koid      uint64
	name      string
	component string
	origin    agent.StartOrigin

	threads map[uint64]*Thread
	modules []agent.ModuleInfo

	stdout *ringBuffer
	stderr *ringBuffer

	destroyed bool
	observers *ObserverList[ProcessEvent]
}

func newProcess(target *Target, info agent.ProcessInfo) *Process {
	return &Process{
		target:    target,
		koid:      info.Koid,
		name:      info.Name,
		component: info.Component,
		origin:    info.Origin,
		threads:   make(map[uint64]*Thread),
		stdout:    newRingBuffer(ringBufferCap),
		stderr:    newRingBuffer(ringBufferCap),
		observers: NewObserverList[ProcessEvent](),
	}
}

// AddObserver registers fn for Process events.
func (p *Process) AddObserver(fn func(ProcessEvent)) uint64 { return p.observers.Add(fn) }

// RemoveObserver unregisters a previously-added observer.
func (p *Process) RemoveObserver(id uint64) { p.observers.Remove(id) }

// Destroyed implements Destroyable.
func (p *Process) Destroyed() bool { return p.destroyed }

func (p *Process) Koid() uint64              { return p.koid }
func (p *Process) Name() string              { return p.name }
func (p *Process) Component() string         { return p.component }
func (p *Process) Origin() agent.StartOrigin { return p.origin }
func (p *Process) Target() *Target           { return p.target }
func (p *Process) Modules() []agent.ModuleInfo { return p.modules }
func (p *Process) Stdout() []byte            { return p.stdout.Bytes() }
func (p *Process) Stderr() []byte            { return p.stderr.Bytes() }

// Threads returns the owned threads in no particular order.
func (p *Process) Threads() []*Thread {
	out := make([]*Thread, 0, len(p.threads))
	for _, t := range p.threads {
		out = append(out, t)
	}
	return out
}

// ThreadByKoid looks up an owned thread.
func (p *Process) ThreadByKoid(koid uint64) (*Thread, bool) {
	t, ok := p.threads[koid]
	return t, ok
}

func (p *Process) createThread(info agent.ThreadStartingInfo) *Thread {
	th := newThread(p, info.ThreadKoid, info.Name)
	p.threads[info.ThreadKoid] = th
	p.observers.Fire(ProcessEvent{Kind: ProcessThreadCreated, Process: p, Thread: th})
	return th
}

func (p *Process) destroyThread(koid uint64) {
	th, ok := p.threads[koid]
	if !ok {
		return
	}
	delete(p.threads, koid)
	th.destroyed = true
	p.observers.Fire(ProcessEvent{Kind: ProcessThreadDestroyed, Process: p, Thread: th})
}

// ModuleForPC returns the symbol-service module name owning pc. Module
// address-range bookkeeping is a non-goal (spec §1); this returns the most
// recently loaded module, or "main" before any ModuleLoaded notification,
// which is enough to drive the fixture-based SymbolService end-to-end.
func (p *Process) ModuleForPC(pc uint64) string {
	if len(p.modules) == 0 {
		return "main"
	}
	return p.modules[len(p.modules)-1].Name
}

func (p *Process) addModule(mod agent.ModuleInfo) {
	p.modules = append(p.modules, mod)
	p.observers.Fire(ProcessEvent{Kind: ProcessModuleLoaded, Process: p, Module: mod})
}

func (p *Process) writeStdio(stream agent.IOStream, data []byte) {
	switch stream {
	case agent.IOStreamStdout:
		p.stdout.Write(data)
	case agent.IOStreamStderr:
		p.stderr.Write(data)
	}
	p.observers.Fire(ProcessEvent{Kind: ProcessStdio, Process: p, Stream: stream, Data: data})
}

func (p *Process) destroy() {
	for koid := range p.threads {
		p.destroyThread(koid)
	}
	p.destroyed = true
}
