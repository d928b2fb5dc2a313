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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// enterRawTerm switches the terminal to unbuffered, non-echoing input and
// returns a function that restores the previous settings.
func enterRawTerm(file *os.File) (func() error, error) {
	var termRestore unix.Termios

	if err := termios.Tcgetattr(file.Fd(), &termRestore); err != nil {
		return nil, err
	}

	termstate := termRestore

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	// Reads block for a single byte; the keyboard polls before reading
	termstate.Cc[unix.VMIN] = 1
	termstate.Cc[unix.VTIME] = 0

	if err := termios.Tcsetattr(
		file.Fd(), termios.TCSANOW, &termstate,
	); err != nil {
		return nil, err
	}

	return func() error {
		return termios.Tcsetattr(file.Fd(), termios.TCSANOW, &termRestore)
	}, nil
}
