package model

// Frame is one entry in the unified stack (spec §3/§4.4). An inline frame
// shares the underlying physical frame's PC/SP/BP but reports a distinct
// symbol and source location.
type Frame struct {
	PC   uint64
	SP   uint64
	BP   uint64
	HasBP bool

	Module     string
	LoadAddr   uint64
	IsInline   bool
	Function   string
	File       string
	Line       int

	// physicalIndex is this frame's index into the raw physical-frame
	// sequence, used for the unified<->physical index mapping controllers
	// need (spec §4.4: "Finish frame 2 must operate on the physical frame
	// enclosing unified frame 2").
	physicalIndex int
}
