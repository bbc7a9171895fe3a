package agent

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// LoopbackTransport is an in-process fake agent, a minimal target-process
// simulator used by tests and cmd/zxagentstub so the rest of the client can
// run end-to-end without a real remote agent. It owns a small table of fake
// processes/threads and answers requests immediately; notifications are
// pushed by tests or by the SpawnFake*/Deliver* helper methods rather than by any real
// execution.
type LoopbackTransport struct {
	mu       sync.Mutex
	procs    map[uint64]*fakeProcess
	notifyCh chan Notification
	closed   bool
	nextKoid uint64
}

type fakeProcess struct {
	info    ProcessInfo
	threads map[uint64]ThreadInfo
	modules []ModuleInfo
	bps     map[uint64]AddOrChangeBreakpointRequest
}

// NewLoopbackTransport creates an empty fake agent.
func NewLoopbackTransport() *LoopbackTransport {
	return &LoopbackTransport{
		procs:    make(map[uint64]*fakeProcess),
		notifyCh: make(chan Notification, 64),
		nextKoid: 1000,
	}
}

func (l *LoopbackTransport) allocKoid() uint64 {
	return atomic.AddUint64(&l.nextKoid, 1)
}

// Notifications implements Transport.
func (l *LoopbackTransport) Notifications() <-chan Notification { return l.notifyCh }

// Close implements Transport.
func (l *LoopbackTransport) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	close(l.notifyCh)
	return nil
}

func (l *LoopbackTransport) publish(n Notification) {
	l.mu.Lock()
	closed := l.closed
	l.mu.Unlock()
	if closed {
		return
	}
	select {
	case l.notifyCh <- n:
	default:
		log.Warn(log.CatTransport, "loopback notification channel full, dropping", "kind", n.Kind)
	}
}

func (l *LoopbackTransport) Hello(ctx context.Context) (HelloReply, error) {
	return HelloReply{PointerSize: 8, PageSize: 4096, RegisterLayout: "fake-arch64"}, nil
}

// SpawnFakeProcess registers a new fake process with no threads and emits
// ProcessStarting, used by cmd/zxagentstub and tests to simulate a target
// appearing without going through Launch/Attach. Threads are added with
// SpawnFakeThread.
func (l *LoopbackTransport) SpawnFakeProcess(name string, origin StartOrigin) ProcessInfo {
	l.mu.Lock()
	koid := l.allocKoid()
	info := ProcessInfo{Koid: koid, Name: name, Origin: origin}
	l.procs[koid] = &fakeProcess{info: info, threads: make(map[uint64]ThreadInfo), bps: make(map[uint64]AddOrChangeBreakpointRequest)}
	l.mu.Unlock()
	l.publish(Notification{Kind: NotifyProcessStarting, ProcessStarting: &info})
	return info
}

// SpawnFakeThread registers a thread within an already-spawned fake process.
func (l *LoopbackTransport) SpawnFakeThread(procKoid uint64, name string) uint64 {
	l.mu.Lock()
	proc, ok := l.procs[procKoid]
	koid := l.allocKoid()
	if ok {
		proc.threads[koid] = ThreadInfo{Koid: koid, Name: name}
	}
	l.mu.Unlock()
	l.publish(Notification{Kind: NotifyThreadStarting, ThreadStarting: &ThreadStartingInfo{ProcessKoid: procKoid, ThreadKoid: koid, Name: name}})
	return koid
}

// DeliverThreadStopped injects a ThreadStopped notification, the primary way
// tests drive stack/controller/breakpoint behavior against this fake agent.
func (l *LoopbackTransport) DeliverThreadStopped(info ThreadStoppedInfo) {
	l.publish(Notification{Kind: NotifyThreadStopped, ThreadStopped: &info})
}

// DeliverModuleLoaded injects a ModuleLoaded notification.
func (l *LoopbackTransport) DeliverModuleLoaded(procKoid uint64, mod ModuleInfo) {
	l.mu.Lock()
	if proc, ok := l.procs[procKoid]; ok {
		proc.modules = append(proc.modules, mod)
	}
	l.mu.Unlock()
	l.publish(Notification{Kind: NotifyModuleLoaded, ModuleLoaded: &ModuleLoadedInfo{ProcessKoid: procKoid, Module: mod}})
}

// DeliverIOOutput injects stdout/stderr bytes for a process.
func (l *LoopbackTransport) DeliverIOOutput(procKoid uint64, stream IOStream, data []byte) {
	l.publish(Notification{Kind: NotifyIOOutput, IOOutput: &IOOutputInfo{ProcessKoid: procKoid, Stream: stream, Data: data}})
}

func (l *LoopbackTransport) Launch(ctx context.Context, req LaunchRequest) (LaunchReply, error) {
	name := req.Path
	origin := OriginLaunch
	if req.ComponentURL != "" {
		name = req.ComponentURL
		origin = OriginComponent
	}
	info := l.SpawnFakeProcess(name, origin)
	return LaunchReply{Process: info}, nil
}

func (l *LoopbackTransport) Attach(ctx context.Context, req AttachRequest) (AttachReply, error) {
	l.mu.Lock()
	proc, ok := l.procs[req.Koid]
	l.mu.Unlock()
	if !ok {
		return AttachReply{}, zxerr.NotFoundErr("no process with koid %d", req.Koid)
	}
	return AttachReply{Process: proc.info}, nil
}

func (l *LoopbackTransport) Detach(ctx context.Context, req DetachRequest) (DetachReply, error) {
	l.mu.Lock()
	_, ok := l.procs[req.Koid]
	l.mu.Unlock()
	if !ok {
		return DetachReply{Err: "no such process"}, nil
	}
	return DetachReply{}, nil
}

func (l *LoopbackTransport) Kill(ctx context.Context, req KillRequest) (KillReply, error) {
	l.mu.Lock()
	_, ok := l.procs[req.Koid]
	if ok {
		delete(l.procs, req.Koid)
	}
	l.mu.Unlock()
	if !ok {
		return KillReply{Err: "no such process"}, nil
	}
	l.publish(Notification{Kind: NotifyProcessExiting, ProcessExiting: &ProcessExitingInfo{Koid: req.Koid}})
	return KillReply{}, nil
}

func (l *LoopbackTransport) Pause(ctx context.Context, req PauseRequest) (PauseReply, error) {
	return PauseReply{Confirmed: true}, nil
}

func (l *LoopbackTransport) Resume(ctx context.Context, req ResumeRequest) (ResumeReply, error) {
	return ResumeReply{}, nil
}

func (l *LoopbackTransport) ReadMemory(ctx context.Context, req ReadMemoryRequest) (ReadMemoryReply, error) {
	return ReadMemoryReply{Data: make([]byte, req.Size)}, nil
}

func (l *LoopbackTransport) WriteMemory(ctx context.Context, req WriteMemoryRequest) (WriteMemoryReply, error) {
	return WriteMemoryReply{}, nil
}

func (l *LoopbackTransport) ReadRegisters(ctx context.Context, req ReadRegistersRequest) (ReadRegistersReply, error) {
	return ReadRegistersReply{Registers: map[string]uint64{}}, nil
}

func (l *LoopbackTransport) WriteRegisters(ctx context.Context, req WriteRegistersRequest) (WriteRegistersReply, error) {
	return WriteRegistersReply{}, nil
}

func (l *LoopbackTransport) AddOrChangeBreakpoint(ctx context.Context, req AddOrChangeBreakpointRequest) (AddOrChangeBreakpointReply, error) {
	l.mu.Lock()
	if proc, ok := l.procs[req.ProcessKoid]; ok {
		proc.bps[req.ClientID] = req
	}
	l.mu.Unlock()
	results := make([]LocationResult, len(req.Locations))
	for i, loc := range req.Locations {
		results[i] = LocationResult{Address: loc.Address, Ok: true}
	}
	return AddOrChangeBreakpointReply{Results: results}, nil
}

func (l *LoopbackTransport) RemoveBreakpoint(ctx context.Context, req RemoveBreakpointRequest) (RemoveBreakpointReply, error) {
	l.mu.Lock()
	for _, proc := range l.procs {
		delete(proc.bps, req.ClientID)
	}
	l.mu.Unlock()
	return RemoveBreakpointReply{}, nil
}

func (l *LoopbackTransport) ThreadStatus(ctx context.Context, req ThreadStatusRequest) (ThreadStatusReply, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	proc, ok := l.procs[req.ProcessKoid]
	if !ok {
		return ThreadStatusReply{Err: "no such process"}, nil
	}
	threads := make([]ThreadInfo, 0, len(proc.threads))
	for _, t := range proc.threads {
		threads = append(threads, t)
	}
	return ThreadStatusReply{Threads: threads}, nil
}

func (l *LoopbackTransport) Modules(ctx context.Context, req ModulesRequest) (ModulesReply, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	proc, ok := l.procs[req.ProcessKoid]
	if !ok {
		return ModulesReply{Err: "no such process"}, nil
	}
	return ModulesReply{Modules: proc.modules}, nil
}

func (l *LoopbackTransport) AddressSpace(ctx context.Context, req AddressSpaceRequest) (AddressSpaceReply, error) {
	return AddressSpaceReply{}, nil
}

func (l *LoopbackTransport) JobFilter(ctx context.Context, req JobFilterRequest) (JobFilterReply, error) {
	return JobFilterReply{}, nil
}

func (l *LoopbackTransport) HandleTable(ctx context.Context, req HandleTableRequest) (HandleTableReply, error) {
	return HandleTableReply{}, nil
}

var _ Transport = (*LoopbackTransport)(nil)
