// Package verbs implements the Verb handlers dispatched by
// internal/command's Registry (spec §4.7).
package verbs

import (
	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/command"
	"github.com/zxconsole/zxconsole/internal/model"
)

// Deps bundles the collaborators every handler needs: the Session (for
// System/Settings) and the breakpoint Engine (System-scoped but owned
// outside model, see internal/breakpoint's package doc).
type Deps struct {
	Session *model.Session
	Engine  *breakpoint.Engine
}

// RegisterAll registers every Verb this package implements against reg.
func RegisterAll(reg *command.Registry, deps Deps) {
	registerProcessVerbs(reg, deps)
	registerThreadVerbs(reg, deps)
	registerBreakpointVerbs(reg, deps)
	registerMemoryVerbs(reg, deps)
	registerIOVerbs(reg, deps)
}

var nounSet = func(kinds ...string) map[string]bool {
	m := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}
