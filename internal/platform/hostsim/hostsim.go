//go:build !arm

// This file is part of the rp2040 kernel.

// Package hostsim is the hosted Platform used when the kernel is built
// for development and testing off the target: the status LED is an
// in-memory on/off flag and the log sink is the host's own controlling
// terminal, put into raw mode via github.com/pkg/term so that the
// "\n" -> "\r\n" conversion the UART sink performs on real hardware has
// a faithful counterpart (a cooked terminal would perform its own
// translation and mask bugs in that conversion).
package hostsim

import (
	"io"
	"os"

	"github.com/pkg/term"

	"github.com/armkernel/rp2040/internal/platform"
)

// Driver implements platform.Platform by puppeting a host terminal.
type Driver struct {
	path string
	tty  *term.Term
	led  *textLED
	out  io.Writer
}

// New returns an uninitialized Driver; call Init before using it. path
// is the terminal device to open (e.g. "/dev/tty"); an empty path
// leaves Driver writing straight to os.Stdout without raw-mode
// switching, for environments with no controlling tty (CI).
func New(path string) *Driver {
	return &Driver{path: path, led: &textLED{}, out: os.Stdout}
}

// Init puts the terminal in raw mode if one was requested. Failure to
// open a tty is not fatal: Driver falls back to os.Stdout, which is
// the common case under "go test".
func (d *Driver) Init() error {
	if d.path == "" {
		return nil
	}
	t, err := term.Open(d.path)
	if err != nil {
		return nil
	}
	if err := t.SetRaw(); err != nil {
		t.Close()
		return nil
	}
	d.tty = t
	d.out = t
	return nil
}

// LED returns the host-simulated status LED, which records its on/off
// state in memory instead of driving a real pin.
func (d *Driver) LED() platform.LED {
	return d.led
}

// LogSink returns the writer log lines are sent to: the raw-mode tty if
// Init managed to open one, os.Stdout otherwise.
func (d *Driver) LogSink() io.Writer {
	return crlfWriter{d.out}
}

// Close restores the terminal's original mode. Not part of
// platform.Platform; called directly by cmd/kernel's hosted entry
// point on shutdown.
func (d *Driver) Close() error {
	if d.tty != nil {
		return d.tty.Restore()
	}
	return nil
}

var _ platform.Platform = (*Driver)(nil)

type textLED struct {
	on bool
}

func (l *textLED) On()     { l.on = true }
func (l *textLED) Off()    { l.on = false }
func (l *textLED) Toggle() { l.on = !l.on }

// crlfWriter performs the same "\n" -> "\r\n" translation the real
// UART0 transmit path performs, since klog itself never does.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	translated := make([]byte, 0, len(p))
	for _, b := range p {
		if b == '\n' {
			translated = append(translated, '\r')
		}
		translated = append(translated, b)
	}
	if _, err := c.w.Write(translated); err != nil {
		return 0, err
	}
	return len(p), nil
}
