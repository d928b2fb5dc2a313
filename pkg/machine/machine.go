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
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lassandro/golc3/pkg/loader"
)

var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func (mc *MachineState) Reset() {
	for i := range mc.Registers {
		mc.Registers[i] = 0x0000
	}

	for i := range mc.Memory {
		mc.Memory[i] = 0x0000
	}

	mc.Program = MEMSPACE_USER
	mc.Condition = FLAG_ZERO
}

// Load resets the machine, copies each image into memory in order and points
// the program counter at the origin of the first one.
func (mc *Machine) Load(images ...*loader.Image) {
	mc.State.Reset()
	mc.Status = Running
	mc.Err = nil

	for i, img := range images {
		for addr, value := range img.Writes() {
			mc.State.Memory[addr] = value
		}

		if i == 0 {
			mc.State.Program = img.Origin
		}
	}
}

func (mc *Machine) LoadBin(reader io.Reader) error {
	img, err := loader.Read(reader)

	if err != nil {
		return err
	}

	mc.Load(img)
	return nil
}

func (mc *Machine) logger() *logrus.Logger {
	if mc.Log == nil {
		return discard
	}

	return mc.Log
}

func (mc *Machine) keyboard() Keyboard {
	if mc.Devices == nil {
		return nil
	}

	return mc.Devices.Keyboard
}

func (mc *Machine) read(addr uint16) uint16 {
	switch addr {
	case DEV_KBSR:
		// A pending key stays latched until KBDR is read
		if mc.State.Memory[DEV_KBSR]&DEV_READY != 0 {
			break
		}

		if kb := mc.keyboard(); kb != nil && kb.Ready() {
			if key, err := kb.ReadByte(); err == nil {
				mc.State.Memory[DEV_KBSR] = DEV_READY
				mc.State.Memory[DEV_KBDR] = uint16(key)
			}
		}

	case DEV_KBDR:
		if mc.State.Memory[DEV_KBSR]&DEV_READY == 0 {
			return 0
		}

		mc.State.Memory[DEV_KBSR] &^= DEV_READY

	case DEV_DSR:
		if mc.Devices != nil && mc.Devices.Display != nil {
			mc.State.Memory[DEV_DSR] = DEV_READY
		} else {
			mc.State.Memory[DEV_DSR] = 0
		}

	case DEV_DDR:
		return 0
	}

	return mc.State.Memory[addr]
}

func (mc *Machine) write(addr uint16, value uint16) error {
	mc.State.Memory[addr] = value

	if addr == DEV_DDR {
		return mc.emit("display", byte(value&0xFF))
	}

	return nil
}

func (mc *Machine) setFlags(value uint16) {
	if value == 0 {
		mc.State.Condition = FLAG_ZERO
	} else if value>>15 == 1 {
		mc.State.Condition = FLAG_NEG
	} else {
		mc.State.Condition = FLAG_POS
	}
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// Step fetches and executes a single instruction.
//
// An unsupported opcode or trap vector, or a failed host device, moves the
// machine to Faulted and returns the fault. A blocking read that is
// cancelled rolls the instruction back and moves the machine to Halted.
func (mc *Machine) Step() error {
	if mc.Status != Running {
		return ErrNotRunning
	}

	program := mc.State.Program
	link := mc.State.Registers[7]

	instruction := Instruction(mc.read(program))
	opcode := instruction.Opcode()

	mc.State.Program++

	log := mc.logger()

	if log.IsLevelEnabled(logrus.DebugLevel) {
		log.WithFields(logrus.Fields{
			"pc":    fmt.Sprintf("%#04x", program),
			"instr": fmt.Sprintf("%#04x", uint16(instruction)),
			"op":    opcode.String(),
		}).Debug("step")
	}

	var err error

	if handler := handlers[opcode]; handler != nil {
		err = handler(mc, instruction)
	} else {
		err = &ErrOpcode{Opcode: opcode, Program: program}
	}

	switch {
	case err == nil:
		if mc.Status == Halted {
			log.WithField("pc", fmt.Sprintf("%#04x", program)).Debug("halted")
		}

	case interrupted(err):
		mc.State.Program = program
		mc.State.Registers[7] = link
		mc.Status = Halted

		log.WithField("pc", fmt.Sprintf("%#04x", program)).Debug("interrupted")

	default:
		mc.Status = Faulted
		mc.Err = err

		log.WithError(err).Debug("faulted")
		return err
	}

	return nil
}

// Run steps the machine until it halts or faults, returning the fault if
// there was one. ctx is checked before every fetch; once it is done the
// machine halts without starting another instruction.
func (mc *Machine) Run(ctx context.Context) error {
	for mc.Status == Running {
		if ctx.Err() != nil {
			mc.Status = Halted
			mc.logger().WithField(
				"pc", fmt.Sprintf("%#04x", mc.State.Program),
			).Debug("interrupted")
			break
		}

		if err := mc.Step(); err != nil {
			return err
		}
	}

	return mc.Err
}
