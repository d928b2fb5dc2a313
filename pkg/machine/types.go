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
	"bufio"

	"github.com/sirupsen/logrus"
)

type DeviceHandler struct {
	Keyboard Keyboard
	Display  *bufio.Writer
}

type MachineState struct {
	Registers [8]uint16
	Program   uint16
	Condition uint16
	Memory    [1 << 16]uint16
}

type Status uint8

const (
	Running Status = iota
	Halted
	Faulted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	default:
		return "invalid"
	}
}

type Machine struct {
	Devices *DeviceHandler
	State   MachineState
	Status  Status

	// Err holds the fault that stopped the machine, if any
	Err error

	// Log receives step traces at debug level. Nil discards them.
	Log *logrus.Logger
}
