package breakpoint

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zxconsole/zxconsole/internal/symbols"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// persistedLocation is the YAML-serializable form of symbols.InputLocation.
type persistedLocation struct {
	Kind    string `yaml:"kind"`
	Symbol  string `yaml:"symbol,omitempty"`
	File    string `yaml:"file,omitempty"`
	Line    int    `yaml:"line,omitempty"`
	Address uint64 `yaml:"address,omitempty"`
}

// persistedBreakpoint is the YAML-serializable form of BreakpointSettings,
// used by the `breakpoint save`/`breakpoint load` verbs (spec §3).
type persistedBreakpoint struct {
	Location  persistedLocation `yaml:"location"`
	Enabled   bool              `yaml:"enabled"`
	StopMode  string            `yaml:"stop_mode"`
	HitMult   int               `yaml:"hit_mult,omitempty"`
	Condition string            `yaml:"condition,omitempty"`
}

type persistedFilter struct {
	Pattern string `yaml:"pattern"`
	JobKoid uint64 `yaml:"job_koid,omitempty"`
}

// persistedFile is the top-level document written by Save / read by Load.
type persistedFile struct {
	Breakpoints []persistedBreakpoint `yaml:"breakpoints"`
	Filters     []persistedFilter     `yaml:"filters"`
}

var locationKindNames = map[symbols.InputLocationKind]string{
	symbols.LocationSymbol:   "symbol",
	symbols.LocationFileLine: "file_line",
	symbols.LocationBareLine: "line",
	symbols.LocationAddress:  "address",
}

var locationKindValues = map[string]symbols.InputLocationKind{
	"symbol":    symbols.LocationSymbol,
	"file_line": symbols.LocationFileLine,
	"line":      symbols.LocationBareLine,
	"address":   symbols.LocationAddress,
}

var stopModeNames = map[StopMode]string{
	StopAll:     "all",
	StopProcess: "process",
	StopThread:  "thread",
	StopNone:    "none",
}

var stopModeValues = map[string]StopMode{
	"all":     StopAll,
	"process": StopProcess,
	"thread":  StopThread,
	"none":    StopNone,
}

// Save writes every non-internal breakpoint and every filter to path as
// YAML (spec §3's breakpoint/filter persistence).
func (e *Engine) Save(path string) error {
	doc := persistedFile{}
	for _, b := range e.Breakpoints() {
		s := b.Settings()
		doc.Breakpoints = append(doc.Breakpoints, persistedBreakpoint{
			Location: persistedLocation{
				Kind:    locationKindNames[s.Location.Kind],
				Symbol:  s.Location.Symbol,
				File:    s.Location.File,
				Line:    s.Location.Line,
				Address: s.Location.Address,
			},
			Enabled:   s.Enabled,
			StopMode:  stopModeNames[s.StopMode],
			HitMult:   s.HitMult,
			Condition: s.Condition,
		})
	}
	for _, f := range e.filters {
		doc.Filters = append(doc.Filters, persistedFilter{Pattern: f.Pattern, JobKoid: f.JobKoid})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return zxerr.Wrap(zxerr.FormatError, err, "marshal breakpoint file")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // user-chosen save path
		return zxerr.Wrap(zxerr.IO, err, "write %s", path)
	}
	return nil
}

// Load reads path and re-creates every breakpoint and filter it describes,
// resolving each new breakpoint immediately.
func (e *Engine) Load(ctx context.Context, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen load path
	if err != nil {
		return zxerr.Wrap(zxerr.IO, err, "read %s", path)
	}
	var doc persistedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zxerr.Wrap(zxerr.FormatError, err, "parse %s", path)
	}

	for _, pb := range doc.Breakpoints {
		settings := BreakpointSettings{
			Location: symbols.InputLocation{
				Kind:    locationKindValues[pb.Location.Kind],
				Symbol:  pb.Location.Symbol,
				File:    pb.Location.File,
				Line:    pb.Location.Line,
				Address: pb.Location.Address,
			},
			Enabled:   pb.Enabled,
			StopMode:  stopModeValues[pb.StopMode],
			HitMult:   pb.HitMult,
			Condition: pb.Condition,
		}
		if _, err := e.CreateBreakpoint(ctx, settings); err != nil {
			return err
		}
	}
	for _, pf := range doc.Filters {
		e.CreateFilter(pf.Pattern, pf.JobKoid)
	}
	return nil
}
