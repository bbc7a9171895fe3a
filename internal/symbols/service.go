// Package symbols defines the SymbolService external collaborator (spec
// §1, §4.4, §4.6): a pure query service over a symbol database. Its
// internal correctness (real DWARF parsing, an index) is explicitly a
// non-goal; this package ships FakeService, a declarative in-memory
// implementation sufficient to drive Stack expansion, BreakpointEngine
// resolution, and expression evaluation end-to-end.
package symbols

import "context"

// InputLocationKind tags which variant of a user-specified location a
// InputLocation carries (spec §4.6's four location forms).
type InputLocationKind int

const (
	LocationSymbol InputLocationKind = iota
	LocationFileLine
	LocationBareLine
	LocationAddress
)

// InputLocation is a user's symbolic statement of "where" (spec §4.6).
type InputLocation struct {
	Kind    InputLocationKind
	Symbol  string // LocationSymbol
	File    string // LocationFileLine
	Line    int    // LocationFileLine, LocationBareLine
	Address uint64 // LocationAddress
}

// ResolvedLocation is one concrete address a InputLocation resolved to
// within a specific module.
type ResolvedLocation struct {
	Address  uint64
	Module   string
	File     string
	Line     int
	Function string
}

// FunctionInfo describes a function for "sym-info"-style verbs.
type FunctionInfo struct {
	Name      string
	File      string
	StartLine int
	EndLine   int
	LowPC     uint64
	HighPC    uint64
}

// InlineFrame is one entry in the inline call chain at a PC, outermost
// first (spec §4.4 step 1).
type InlineFrame struct {
	Function string
	File     string
	Line     int
	CallSite uint64 // address of the call instruction in the enclosing frame, if known
}

// CallInstruction is one call instruction found on a source line, used by
// the interactive "Steps" controller (spec §4.5).
type CallInstruction struct {
	Address     uint64 // address of the call instruction itself
	RangeBegin  uint64 // StepIntoSpecific range: [RangeBegin, RangeEnd)
	RangeEnd    uint64
	Destination string // callee symbol, if statically known
}

// Service is the SymbolService external collaborator.
type Service interface {
	// ResolveLocation resolves a user InputLocation against one module's
	// symbol table, returning zero or more concrete addresses (spec §4.6:
	// symbolic name -> zero or more; file:line -> at most one, preferring
	// an exact match else the nearest later line in the same file).
	ResolveLocation(ctx context.Context, module string, loc InputLocation) ([]ResolvedLocation, error)

	// DescribeFunction returns static info about the function containing pc
	// in module, or ok=false if pc is not inside any known function.
	DescribeFunction(ctx context.Context, module string, pc uint64) (FunctionInfo, bool, error)

	// InlineChainAt returns the inline call chain active at pc, outermost
	// inlined first through innermost inlined last (spec §4.4 step 1). An
	// empty slice means pc is not inside any inlined call.
	InlineChainAt(ctx context.Context, module string, pc uint64) ([]InlineFrame, error)

	// EvaluateExpression evaluates expr in the context of a stopped thread's
	// frame (used for breakpoint conditions and "display" expressions,
	// spec §4.6 / §4.8). Returns a human-readable rendering of the result.
	EvaluateExpression(ctx context.Context, module string, pc uint64, expr string) (string, error)

	// CallInstructionsOnLine returns every call instruction on the source
	// line containing pc, used by the interactive "Steps" flow (spec §4.5).
	CallInstructionsOnLine(ctx context.Context, module string, pc uint64) ([]CallInstruction, error)

	// LineRange returns the [begin, end) address range of the source line
	// containing pc, used by StepInto/StepOver's range-stepping inner
	// controller.
	LineRange(ctx context.Context, module string, pc uint64) (begin, end uint64, err error)
}
