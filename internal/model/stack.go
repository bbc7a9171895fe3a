package model

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/log"
)

// Stack is the ordered sequence of unified Frames for a Thread, frame 0
// innermost (spec §3/§4.4).
type Stack struct {
	frames       []Frame
	hasAllFrames bool
}

func newStack() *Stack {
	return &Stack{}
}

// Frames returns the unified stack, frame 0 innermost.
func (s *Stack) Frames() []Frame { return s.frames }

// Len returns the number of unified frames.
func (s *Stack) Len() int { return len(s.frames) }

// HasAllFrames reports whether the full chain has been fetched (spec §3).
func (s *Stack) HasAllFrames() bool { return s.hasAllFrames }

// At returns unified frame i. Indexing an empty stack, or past the known
// portion when !HasAllFrames, is a programmer error the caller must guard
// against by calling SyncFrames first (spec §3: "indexing past the known
// portion is an error that must cause synchronous frame fetching before
// proceeding").
func (s *Stack) At(i int) (Frame, bool) {
	if i < 0 || i >= len(s.frames) {
		return Frame{}, false
	}
	return s.frames[i], true
}

// PhysicalIndexOf maps a unified-stack index to the physical-frame index it
// belongs to (spec §4.4's unified-index -> physical-index mapping).
func (s *Stack) PhysicalIndexOf(unifiedIndex int) (int, bool) {
	f, ok := s.At(unifiedIndex)
	if !ok {
		return 0, false
	}
	return f.physicalIndex, true
}

// replaceTop implements stack reconstruction with inline expansion (spec
// §4.4): for each raw physical frame, the symbol service's inline call
// chain at that frame's PC is expanded into 1+len(chain) unified frames,
// all sharing the physical frame's PC/SP/BP but reporting progressively
// inner inlined symbols, frame 0 being the innermost inline.
//
// Per §9's design note, inline frames are expanded eagerly here rather than
// synthesized lazily per-request, since most consumers iterate the whole
// unified stack.
func (s *Stack) replaceTop(ctx context.Context, t *Thread, physical []agent.AgentFrame, hasAll bool) {
	module := ""
	if len(physical) > 0 {
		module = t.process.ModuleForPC(physical[0].PC)
	}

	unified := make([]Frame, 0, len(physical))
	for physIdx, pf := range physical {
		base := Frame{
			PC: pf.PC, SP: pf.SP, BP: pf.BP, HasBP: pf.HasBP,
			Module: module, physicalIndex: physIdx,
		}

		chain, err := t.symbols.InlineChainAt(ctx, module, pf.PC)
		if err != nil {
			log.ErrorErr(log.CatStack, "inline chain lookup failed", err, "pc", pf.PC)
			chain = nil
		}

		if len(chain) == 0 {
			if fn, ok, derr := t.symbols.DescribeFunction(ctx, module, pf.PC); derr == nil && ok {
				base.Function = fn.Name
				base.File = fn.File
			}
			unified = append(unified, base)
			continue
		}

		// N+1 unified frames share the physical PC/SP/BP; chain is
		// outermost-inlined first, so we emit it reversed (innermost last
		// in source order = frame 0 in the unified stack for this physical
		// frame) followed by the physical frame itself as the outermost.
		for i := len(chain) - 1; i >= 0; i-- {
			inl := chain[i]
			f := base
			f.IsInline = true
			f.Function = inl.Function
			f.File = inl.File
			f.Line = inl.Line
			unified = append(unified, f)
		}
		if fn, ok, derr := t.symbols.DescribeFunction(ctx, module, pf.PC); derr == nil && ok {
			base.Function = fn.Name
			base.File = fn.File
		}
		unified = append(unified, base)
	}

	s.frames = unified
	s.hasAllFrames = hasAll
	t.SetActiveFrame(0)
}
