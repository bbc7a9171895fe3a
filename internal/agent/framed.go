package agent

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"io"
	"sync"

	"github.com/zxconsole/zxconsole/internal/log"
	"github.com/zxconsole/zxconsole/internal/zxerr"
)

// wireMessage is the minimal envelope FramedTransport puts on the wire: a
// method name, a transaction id correlating request/reply, and a raw JSON
// payload. Notifications arrive as wireMessages with an empty TxnID.
type wireMessage struct {
	Method  string          `json:"method"`
	TxnID   string          `json:"txn_id,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

// FramedTransport implements Transport by framing wireMessages as
// 4-byte-length-prefixed JSON over an io.ReadWriteCloser. This is a minimal,
// swappable default: spec.md deliberately leaves the wire format a
// non-goal, so this framing exists only to give the rest of the client a
// real transport to run against (e.g. a TCP dial to a remote agent process).
type FramedTransport struct {
	conn io.ReadWriteCloser
	txns *transaction

	writeMu sync.Mutex

	notifyCh chan Notification
	closeOnce sync.Once
	closeErr  error
	readDone  chan struct{}
}

// NewFramedTransport starts the background read loop over conn and returns
// the transport. Call Close to stop the read loop and release conn.
func NewFramedTransport(conn io.ReadWriteCloser) *FramedTransport {
	t := &FramedTransport{
		conn:     conn,
		txns:     newTransactionTable(),
		notifyCh: make(chan Notification, 64),
		readDone: make(chan struct{}),
	}
	go t.readLoop()
	return t
}

func (t *FramedTransport) readLoop() {
	defer close(t.readDone)
	defer close(t.notifyCh)
	for {
		msg, err := readFrame(t.conn)
		if err != nil {
			if err != io.EOF {
				log.ErrorErr(log.CatTransport, "framed transport read failed", err)
			}
			return
		}
		if msg.TxnID != "" {
			if t.txns.resolve(msg.TxnID, msg.Payload) {
				continue
			}
			log.Warn(log.CatTransport, "reply for unknown transaction", "txn_id", msg.TxnID)
			continue
		}
		notif, err := decodeNotification(msg)
		if err != nil {
			log.ErrorErr(log.CatTransport, "malformed notification", err)
			continue
		}
		select {
		case t.notifyCh <- notif:
		default:
			log.Warn(log.CatTransport, "notification channel full, dropping", "method", msg.Method)
		}
	}
}

func readFrame(r io.Reader) (wireMessage, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return wireMessage{}, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return wireMessage{}, err
	}
	var msg wireMessage
	if err := json.Unmarshal(buf, &msg); err != nil {
		return wireMessage{}, zxerr.Wrap(zxerr.FormatError, err, "decoding wire frame")
	}
	return msg, nil
}

func writeFrame(w io.Writer, mu *sync.Mutex, msg wireMessage) error {
	buf, err := json.Marshal(msg)
	if err != nil {
		return zxerr.Wrap(zxerr.FormatError, err, "encoding wire frame")
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(buf)))
	mu.Lock()
	defer mu.Unlock()
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

func decodeNotification(msg wireMessage) (Notification, error) {
	var n Notification
	if err := json.Unmarshal(msg.Payload, &n); err != nil {
		return Notification{}, err
	}
	return n, nil
}

// call sends a request of the given method and blocks for its matching
// reply, honoring ctx cancellation by abandoning the transaction.
func call[Req any, Reply any](ctx context.Context, t *FramedTransport, method string, req Req) (Reply, error) {
	var reply Reply
	payload, err := json.Marshal(req)
	if err != nil {
		return reply, zxerr.Wrap(zxerr.FormatError, err, "encoding %s request", method)
	}
	txnID, ch := t.txns.begin()
	if err := writeFrame(t.conn, &t.writeMu, wireMessage{Method: method, TxnID: txnID, Payload: payload}); err != nil {
		t.txns.abandon(txnID)
		return reply, zxerr.Wrap(zxerr.IO, err, "writing %s request", method)
	}
	select {
	case <-ctx.Done():
		t.txns.abandon(txnID)
		return reply, ctx.Err()
	case raw, ok := <-ch:
		if !ok {
			return reply, zxerr.IOErr("transport closed awaiting %s reply", method)
		}
		if err := json.Unmarshal(raw, &reply); err != nil {
			return reply, zxerr.Wrap(zxerr.FormatError, err, "decoding %s reply", method)
		}
		return reply, nil
	}
}

func (t *FramedTransport) Notifications() <-chan Notification { return t.notifyCh }

func (t *FramedTransport) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
		<-t.readDone
	})
	return t.closeErr
}

func (t *FramedTransport) Hello(ctx context.Context) (HelloReply, error) {
	return call[struct{}, HelloReply](ctx, t, "Hello", struct{}{})
}

func (t *FramedTransport) Launch(ctx context.Context, req LaunchRequest) (LaunchReply, error) {
	return call[LaunchRequest, LaunchReply](ctx, t, "Launch", req)
}

func (t *FramedTransport) Attach(ctx context.Context, req AttachRequest) (AttachReply, error) {
	return call[AttachRequest, AttachReply](ctx, t, "Attach", req)
}

func (t *FramedTransport) Detach(ctx context.Context, req DetachRequest) (DetachReply, error) {
	return call[DetachRequest, DetachReply](ctx, t, "Detach", req)
}

func (t *FramedTransport) Kill(ctx context.Context, req KillRequest) (KillReply, error) {
	return call[KillRequest, KillReply](ctx, t, "Kill", req)
}

func (t *FramedTransport) Pause(ctx context.Context, req PauseRequest) (PauseReply, error) {
	return call[PauseRequest, PauseReply](ctx, t, "Pause", req)
}

func (t *FramedTransport) Resume(ctx context.Context, req ResumeRequest) (ResumeReply, error) {
	return call[ResumeRequest, ResumeReply](ctx, t, "Resume", req)
}

func (t *FramedTransport) ReadMemory(ctx context.Context, req ReadMemoryRequest) (ReadMemoryReply, error) {
	return call[ReadMemoryRequest, ReadMemoryReply](ctx, t, "ReadMemory", req)
}

func (t *FramedTransport) WriteMemory(ctx context.Context, req WriteMemoryRequest) (WriteMemoryReply, error) {
	return call[WriteMemoryRequest, WriteMemoryReply](ctx, t, "WriteMemory", req)
}

func (t *FramedTransport) ReadRegisters(ctx context.Context, req ReadRegistersRequest) (ReadRegistersReply, error) {
	return call[ReadRegistersRequest, ReadRegistersReply](ctx, t, "ReadRegisters", req)
}

func (t *FramedTransport) WriteRegisters(ctx context.Context, req WriteRegistersRequest) (WriteRegistersReply, error) {
	return call[WriteRegistersRequest, WriteRegistersReply](ctx, t, "WriteRegisters", req)
}

func (t *FramedTransport) AddOrChangeBreakpoint(ctx context.Context, req AddOrChangeBreakpointRequest) (AddOrChangeBreakpointReply, error) {
	return call[AddOrChangeBreakpointRequest, AddOrChangeBreakpointReply](ctx, t, "AddOrChangeBreakpoint", req)
}

func (t *FramedTransport) RemoveBreakpoint(ctx context.Context, req RemoveBreakpointRequest) (RemoveBreakpointReply, error) {
	return call[RemoveBreakpointRequest, RemoveBreakpointReply](ctx, t, "RemoveBreakpoint", req)
}

func (t *FramedTransport) ThreadStatus(ctx context.Context, req ThreadStatusRequest) (ThreadStatusReply, error) {
	return call[ThreadStatusRequest, ThreadStatusReply](ctx, t, "ThreadStatus", req)
}

func (t *FramedTransport) Modules(ctx context.Context, req ModulesRequest) (ModulesReply, error) {
	return call[ModulesRequest, ModulesReply](ctx, t, "Modules", req)
}

func (t *FramedTransport) AddressSpace(ctx context.Context, req AddressSpaceRequest) (AddressSpaceReply, error) {
	return call[AddressSpaceRequest, AddressSpaceReply](ctx, t, "AddressSpace", req)
}

func (t *FramedTransport) JobFilter(ctx context.Context, req JobFilterRequest) (JobFilterReply, error) {
	return call[JobFilterRequest, JobFilterReply](ctx, t, "JobFilter", req)
}

func (t *FramedTransport) HandleTable(ctx context.Context, req HandleTableRequest) (HandleTableReply, error) {
	return call[HandleTableRequest, HandleTableReply](ctx, t, "HandleTable", req)
}

var _ Transport = (*FramedTransport)(nil)
