// Package breakpoint implements BreakpointEngine and FilterEngine (spec
// §4.6): client-side breakpoint settings, their resolution to concrete
// per-process addresses, hit dispatch, and pattern-based process autoattach.
package breakpoint

import (
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/symbols"
)

// StopMode controls which threads a breakpoint hit suspends.
type StopMode int

const (
	StopAll StopMode = iota
	StopProcess
	StopThread
	StopNone
)

// BreakpointSettings is the serializable, client-held configuration of a
// Breakpoint (spec §4.6: "Settings held entirely on the client").
type BreakpointSettings struct {
	Location  symbols.InputLocation
	Enabled   bool
	StopMode  StopMode
	HitMult   int    // only every HitMult-th matching hit actually stops; 0/1 == every hit
	Condition string // expression; false -> continue transparently
}

// BreakpointLocation is one resolved, per-process address a Breakpoint has
// been mapped to (spec §4.6).
type BreakpointLocation struct {
	ProcessKoid uint64
	Address     uint64
	Pending     bool // true if the agent failed to install this address
}

// Breakpoint is a user- or controller-created breakpoint.
type Breakpoint struct {
	id         uint64
	internal   bool // invisible to listings; matches delivered only to owner
	owner      model.Controller
	settings   BreakpointSettings
	locations  []BreakpointLocation
	hitCount   int
	pending    bool // true when nothing resolved or any location failed to install
}

// NewBreakpoint constructs a user-visible Breakpoint with default settings.
func NewBreakpoint(id uint64, settings BreakpointSettings) *Breakpoint {
	if settings.HitMult <= 0 {
		settings.HitMult = 1
	}
	return &Breakpoint{id: id, settings: settings}
}

// NewInternalBreakpoint constructs a controller-owned breakpoint invisible
// to `breakpoint list` (spec §4.6: "ThreadControllers may install
// breakpoints that are invisible to the user").
func NewInternalBreakpoint(id uint64, owner model.Controller, settings BreakpointSettings) *Breakpoint {
	if settings.HitMult <= 0 {
		settings.HitMult = 1
	}
	return &Breakpoint{id: id, internal: true, owner: owner, settings: settings}
}

func (b *Breakpoint) ID() uint64                       { return b.id }
func (b *Breakpoint) Internal() bool                   { return b.internal }
func (b *Breakpoint) Owner() model.Controller          { return b.owner }
func (b *Breakpoint) Settings() BreakpointSettings      { return b.settings }
func (b *Breakpoint) Locations() []BreakpointLocation   { return b.locations }
func (b *Breakpoint) HitCount() int                     { return b.hitCount }
func (b *Breakpoint) Pending() bool                      { return b.pending }

// SetSettings replaces the breakpoint's settings; callers must re-resolve
// afterward (spec §4.6: "On any of {... modify settings ...}").
func (b *Breakpoint) SetSettings(s BreakpointSettings) {
	if s.HitMult <= 0 {
		s.HitMult = 1
	}
	b.settings = s
}

// Filter is a pattern that causes new matching processes to be auto-attached
// (spec §4.2/§4.6's FilterEngine).
type Filter struct {
	id      uint64
	Pattern string
	JobKoid uint64 // 0 means "any job the agent reports through"
}

func NewFilter(id uint64, pattern string, jobKoid uint64) *Filter {
	return &Filter{id: id, Pattern: pattern, JobKoid: jobKoid}
}

func (f *Filter) ID() uint64 { return f.id }
