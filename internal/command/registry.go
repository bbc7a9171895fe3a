package command

import (
	"context"
	"sort"

	"github.com/zxconsole/zxconsole/internal/breakpoint"
	"github.com/zxconsole/zxconsole/internal/model"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// DetailLevel is the input shape a Verb expects beyond its bound Nouns
// (spec §4.7: "typed input, expression input, single-string input, or
// tokenized input").
type DetailLevel int

const (
	DetailNone DetailLevel = iota
	DetailTyped
	DetailExpression
	DetailString
	DetailTokenized
)

// BoundCommand is a parsed Command with its Nouns resolved to live model
// entities by ConsoleContext (spec §4.8's "Context binding").
type BoundCommand struct {
	Command    *Command
	Target     *model.Target
	Thread     *model.Thread
	FrameIndex int
	Breakpoint *breakpoint.Breakpoint
	Filter     *breakpoint.Filter
	Job        *model.JobContext
}

// Outcome is a verb handler's synchronous result (spec §4.7: "both must
// deliver exactly one user-visible completion or error").
type Outcome struct {
	Text  string
	Async bool
}

// Handler executes a bound Verb.
type Handler func(ctx context.Context, bound *BoundCommand) (Outcome, error)

// VerbSpec declares one Verb's accepted Nouns, input detail level, and
// handler (spec §4.7).
type VerbSpec struct {
	Name       string
	ValidNouns map[string]bool
	Detail     DetailLevel
	Handler    Handler
}

// Registry holds every registered VerbSpec and dispatches bound commands
// to them (spec §4.7's CommandModel).
type Registry struct {
	verbs map[string]VerbSpec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]VerbSpec)}
}

// Register adds or replaces spec.
func (r *Registry) Register(spec VerbSpec) { r.verbs[spec.Name] = spec }

// Lookup returns the VerbSpec for name.
func (r *Registry) Lookup(name string) (VerbSpec, bool) {
	spec, ok := r.verbs[name]
	return spec, ok
}

// Names returns every registered verb name, for callers (internal/tui's
// command palette) that need the full verb set rather than a single lookup.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateNouns checks that every noun in nouns is accepted by verb (spec
// §4.7: "Each Verb declares the set of Nouns it accepts (ValidateNouns)").
// Parsing is strict: an unrecognized noun fails the command without
// partial effect.
func (r *Registry) ValidateNouns(verb string, nouns []NounRef) error {
	spec, ok := r.verbs[verb]
	if !ok {
		return zxerr.New(zxerr.Input, "unknown verb %q", verb)
	}
	for _, n := range nouns {
		if !spec.ValidNouns[n.Kind] {
			return zxerr.New(zxerr.Input, "verb %q does not accept noun %q", verb, n.Kind)
		}
	}
	return nil
}

// Dispatch validates bound.Command.Verb's nouns and invokes its handler.
func (r *Registry) Dispatch(ctx context.Context, bound *BoundCommand) (Outcome, error) {
	verb := bound.Command.Verb
	spec, ok := r.verbs[verb]
	if !ok {
		return Outcome{}, zxerr.New(zxerr.Input, "unknown verb %q", verb)
	}
	if err := r.ValidateNouns(verb, bound.Command.Nouns); err != nil {
		return Outcome{}, err
	}
	return spec.Handler(ctx, bound)
}
