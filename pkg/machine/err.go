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

package machine

import (
	"errors"

	"github.com/lassandro/golc3/pkg/translate"
)

var f = translate.From

var (
	ErrNotRunning = errors.New(f("machine not running"))
	ErrNoKeyboard = errors.New(f("no keyboard attached"))
	ErrNoDisplay  = errors.New(f("no display attached"))
)

// ErrOpcode reports an instruction whose opcode has no handler. Program is
// the address the instruction was fetched from.
type ErrOpcode struct {
	Opcode  Opcode
	Program uint16
}

func (err *ErrOpcode) Error() string {
	return f("unsupported opcode %#04b (%v) at %#04x", uint16(err.Opcode), err.Opcode, err.Program)
}

// ErrTrapVector reports a TRAP to a vector with no host routine.
type ErrTrapVector struct {
	Vector  uint16
	Program uint16
}

func (err *ErrTrapVector) Error() string {
	return f("unsupported trap vector %#02x at %#04x", err.Vector, err.Program)
}

// ErrHostIO reports a failed host device operation.
type ErrHostIO struct {
	Op  string
	Err error
}

func (err *ErrHostIO) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrHostIO) Unwrap() error {
	return err.Err
}
