package calltrace

import (
	"log/slog"

	"github.com/cwbudde/restirnv/internal/rtx"
)

// Record wraps driver so that every call on a resolved proc is written to w
// before it is forwarded. Write failures are logged and do not block the call.
func Record(driver rtx.Driver, w *Writer) rtx.Driver {
	return &recordingDriver{Driver: driver, w: w}
}

type recordingDriver struct {
	rtx.Driver
	w *Writer
}

func (d *recordingDriver) ProcAddress(name string) rtx.Proc {
	proc := d.Driver.ProcAddress(name)
	if proc == nil {
		return nil
	}
	return &recordingProc{name: name, proc: proc, w: d.w}
}

type recordingProc struct {
	name string
	proc rtx.Proc
	w    *Writer
}

func (p *recordingProc) Call(args ...uint32) {
	if err := p.w.Write(p.name, args); err != nil {
		slog.Warn("Failed to capture call", "proc", p.name, "error", err)
	}
	p.proc.Call(args...)
}
