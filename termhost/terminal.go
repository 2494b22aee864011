// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

package termhost

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/govita/govita/curated"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/userinput"
	"github.com/pkg/term"
)

// Sentinel errors.
const (
	TerminalError = "termhost: %v"
)

// DefaultDevice is the controlling terminal.
const DefaultDevice = "/dev/tty"

// how often the read loop checks for Stop()
const readTimeout = 100 * time.Millisecond

// Terminal reads keys from a terminal in raw mode.
type Terminal struct {
	tty *term.Term

	stopOnce sync.Once
	stop     chan struct{}
}

// Open the terminal device and put it into raw mode.
func Open(device string) (*Terminal, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	return &Terminal{
		tty:  tty,
		stop: make(chan struct{}),
	}, nil
}

// Read implements the io.Reader interface. A read timeout is not an error.
func (t *Terminal) Read(b []byte) (int, error) {
	n, err := t.tty.Read(b)
	if n == 0 && errors.Is(err, io.EOF) {
		return 0, nil
	}
	return n, err
}

// Run reads keys until Stop() is called, pushing the events to the channel.
func (t *Terminal) Run(events *userinput.Channel) error {
	err := ReadKeys(t, events, t.stop)
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	return nil
}

// Stop causes Run() to return. It is safe to call Stop() more than once.
func (t *Terminal) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

// Close restores the terminal to its original mode.
func (t *Terminal) Close() error {
	t.Stop()
	if err := t.tty.Restore(); err != nil {
		logger.Log(logger.Allow, "termhost", err)
	}
	return t.tty.Close()
}

// ReadKeys translates bytes from the reader into events until the done
// channel is closed or the reader returns io.EOF. A read of zero bytes with
// no error is a timeout.
func ReadKeys(r io.Reader, events *userinput.Channel, done <-chan struct{}) error {
	var b [16]byte
	for {
		select {
		case <-done:
			return nil
		default:
		}

		n, err := r.Read(b[:])
		for _, c := range b[:n] {
			if ev, ok := Translate(c); ok {
				events.Push(ev)
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
