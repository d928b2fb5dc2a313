// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"os"

	"golang.org/x/sys/unix"
)

// Milliseconds a blocking read waits before checking for cancellation
const pollInterval = 100

// termKeyboard reads keys from a terminal. Blocking reads give up with the
// context's error once it is cancelled.
type termKeyboard struct {
	ctx  context.Context
	file *os.File
	buf  [1]byte
}

func newTermKeyboard(ctx context.Context, file *os.File) *termKeyboard {
	return &termKeyboard{ctx: ctx, file: file}
}

func (kb *termKeyboard) poll(timeout int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(kb.file.Fd()), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, timeout)

	if err == unix.EINTR {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return n > 0, nil
}

func (kb *termKeyboard) Ready() bool {
	ready, err := kb.poll(0)
	return err == nil && ready
}

func (kb *termKeyboard) ReadByte() (byte, error) {
	for {
		if err := kb.ctx.Err(); err != nil {
			return 0, err
		}

		ready, err := kb.poll(pollInterval)

		if err != nil {
			return 0, err
		}

		if !ready {
			continue
		}

		n, err := kb.file.Read(kb.buf[:])

		if err != nil {
			return 0, err
		}

		if n == 1 {
			return kb.buf[0], nil
		}
	}
}
