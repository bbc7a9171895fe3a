package model

import (
	"context"

	"github.com/zxconsole/zxconsole/internal/agent"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// JobContextState is one of the three states a JobContext may be in (spec
// §3).
type JobContextState int

const (
	JobContextNone JobContextState = iota
	JobContextAttaching
	JobContextAttached
)

func (s JobContextState) String() string {
	switch s {
	case JobContextAttaching:
		return "Attaching"
	case JobContextAttached:
		return "Attached"
	default:
		return "None"
	}
}

// JobContext is an attached container-of-processes used to observe process
// births (spec §3). At most one JobContext may be attached to any given
// container; the agent delivers new-process notifications to the most
// specific attached container.
type JobContext struct {
	system    *System
	state     JobContextState
	koid      uint64
	name      string
	destroyed bool
	observers *ObserverList[JobContextEvent]
}

// JobContextEvent is delivered to JobContext observers.
type JobContextEvent struct {
	JobContext *JobContext
	State      JobContextState
}

func newJobContext(sys *System) *JobContext {
	return &JobContext{system: sys, observers: NewObserverList[JobContextEvent]()}
}

func (j *JobContext) AddObserver(fn func(JobContextEvent)) uint64 { return j.observers.Add(fn) }
func (j *JobContext) RemoveObserver(id uint64)                    { j.observers.Remove(id) }
func (j *JobContext) Destroyed() bool                             { return j.destroyed }
func (j *JobContext) State() JobContextState                      { return j.state }
func (j *JobContext) Koid() uint64                                { return j.koid }
func (j *JobContext) Name() string                                { return j.name }

// Attach attaches to the job container identified by koid.
func (j *JobContext) Attach(ctx context.Context, koid uint64, pattern string) error {
	j.state = JobContextAttaching
	reply, err := j.system.session.transport.JobFilter(ctx, agent.JobFilterRequest{JobKoid: koid, Pattern: pattern})
	if err != nil || reply.Err != "" {
		j.state = JobContextNone
		if err != nil {
			return zxerr.Wrap(zxerr.Agent, err, "JobContext: attach")
		}
		return zxerr.New(zxerr.Agent, "JobContext: attach: %s", reply.Err)
	}
	j.koid = koid
	j.state = JobContextAttached
	j.observers.Fire(JobContextEvent{JobContext: j, State: j.state})
	return nil
}

func (j *JobContext) destroy() { j.destroyed = true }
