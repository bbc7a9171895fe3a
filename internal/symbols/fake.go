package symbols

import (
	"context"
	"fmt"
	"sort"

	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// FakeLine is one declarative line-table row for FakeService's fixtures.
type FakeLine struct {
	Address  uint64
	File     string
	Line     int
	Function string
	// InlineChain is the inline call chain active at Address, outermost
	// first, empty when Address is a plain physical-frame location.
	InlineChain []InlineFrame
	// Calls lists call instructions occurring on this source line.
	Calls []CallInstruction
}

// FakeModule is one declarative module fixture: a function table plus a
// line table ordered by address.
type FakeModule struct {
	Name      string
	Functions []FunctionInfo
	Lines     []FakeLine // NewFakeService sorts these by Address ascending
}

// FakeService is an in-memory SymbolService driven by a small set of
// declarative module fixtures, used by unit tests of Stack, BreakpointEngine,
// and ThreadControllers without a real symbol database.
type FakeService struct {
	modules map[string]FakeModule
}

// NewFakeService builds a FakeService from a set of module fixtures.
func NewFakeService(modules ...FakeModule) *FakeService {
	s := &FakeService{modules: make(map[string]FakeModule, len(modules))}
	for _, m := range modules {
		sort.Slice(m.Lines, func(i, j int) bool { return m.Lines[i].Address < m.Lines[j].Address })
		s.modules[m.Name] = m
	}
	return s
}

func (s *FakeService) lineAt(module string, pc uint64) (FakeLine, bool) {
	m, ok := s.modules[module]
	if !ok {
		return FakeLine{}, false
	}
	for i := len(m.Lines) - 1; i >= 0; i-- {
		if m.Lines[i].Address <= pc {
			return m.Lines[i], true
		}
	}
	return FakeLine{}, false
}

func (s *FakeService) ResolveLocation(ctx context.Context, module string, loc InputLocation) ([]ResolvedLocation, error) {
	m, ok := s.modules[module]
	if !ok {
		return nil, zxerr.SymbolErr("unknown module %q", module)
	}

	switch loc.Kind {
	case LocationAddress:
		return []ResolvedLocation{{Address: loc.Address, Module: module}}, nil

	case LocationSymbol:
		var out []ResolvedLocation
		for _, fn := range m.Functions {
			if fn.Name == loc.Symbol {
				out = append(out, ResolvedLocation{Address: fn.LowPC, Module: module, File: fn.File, Line: fn.StartLine, Function: fn.Name})
			}
		}
		return out, nil

	case LocationFileLine, LocationBareLine:
		var exact *FakeLine
		var nearestLater *FakeLine
		for i := range m.Lines {
			l := &m.Lines[i]
			if loc.Kind == LocationFileLine && l.File != loc.File {
				continue
			}
			if l.Line == loc.Line {
				exact = l
				break
			}
			if l.Line > loc.Line && (nearestLater == nil || l.Line < nearestLater.Line) {
				nearestLater = l
			}
		}
		chosen := exact
		if chosen == nil {
			chosen = nearestLater
		}
		if chosen == nil {
			return nil, nil
		}
		return []ResolvedLocation{{Address: chosen.Address, Module: module, File: chosen.File, Line: chosen.Line, Function: chosen.Function}}, nil
	}
	return nil, zxerr.InputErr("unrecognized location kind")
}

func (s *FakeService) DescribeFunction(ctx context.Context, module string, pc uint64) (FunctionInfo, bool, error) {
	m, ok := s.modules[module]
	if !ok {
		return FunctionInfo{}, false, zxerr.SymbolErr("unknown module %q", module)
	}
	for _, fn := range m.Functions {
		if pc >= fn.LowPC && pc < fn.HighPC {
			return fn, true, nil
		}
	}
	return FunctionInfo{}, false, nil
}

func (s *FakeService) InlineChainAt(ctx context.Context, module string, pc uint64) ([]InlineFrame, error) {
	line, ok := s.lineAt(module, pc)
	if !ok {
		return nil, nil
	}
	return line.InlineChain, nil
}

func (s *FakeService) EvaluateExpression(ctx context.Context, module string, pc uint64, expr string) (string, error) {
	// The fixture cannot really evaluate C-like expressions; it supports a
	// tiny subset ("1" literals and "true"/"false") sufficient to drive
	// conditional-breakpoint and display-expression tests deterministically.
	switch expr {
	case "true", "1":
		return "true", nil
	case "false", "0", "":
		return "false", nil
	default:
		return "", zxerr.SymbolErr("cannot evaluate expression %q", expr)
	}
}

func (s *FakeService) CallInstructionsOnLine(ctx context.Context, module string, pc uint64) ([]CallInstruction, error) {
	line, ok := s.lineAt(module, pc)
	if !ok {
		return nil, nil
	}
	return line.Calls, nil
}

func (s *FakeService) LineRange(ctx context.Context, module string, pc uint64) (uint64, uint64, error) {
	m, ok := s.modules[module]
	if !ok {
		return 0, 0, zxerr.SymbolErr("unknown module %q", module)
	}
	line, ok := s.lineAt(module, pc)
	if !ok {
		return 0, 0, zxerr.NotFoundErr("no line table entry covers pc %#x", pc)
	}
	begin := line.Address
	end := begin
	for _, l := range m.Lines {
		if l.Address > begin {
			end = l.Address
			break
		}
	}
	if end == begin {
		end = begin + 1
	}
	return begin, end, nil
}

func (s *FakeService) String() string {
	return fmt.Sprintf("FakeService{%d modules}", len(s.modules))
}

var _ Service = (*FakeService)(nil)
