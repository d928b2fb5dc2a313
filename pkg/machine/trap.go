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

var traps = map[uint16]func(mc *Machine) error{
	TRAP_GETC:  (*Machine).trapGetc,
	TRAP_OUT:   (*Machine).trapOut,
	TRAP_PUTS:  (*Machine).trapPuts,
	TRAP_IN:    (*Machine).trapIn,
	TRAP_PUTSP: (*Machine).trapPutsp,
	TRAP_HALT:  (*Machine).trapHalt,
}

// TRAP |1111    |0000   |trapvect8       | System call
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) trap(in Instruction) error {
	vector := in.TrapVect8()

	mc.State.Registers[7] = mc.State.Program

	routine, ok := traps[vector]

	if !ok {
		return &ErrTrapVector{Vector: vector, Program: mc.State.Program - 1}
	}

	return routine(mc)
}

func (mc *Machine) getc(op string) (byte, error) {
	kb := mc.keyboard()

	if kb == nil {
		return 0, &ErrHostIO{Op: op, Err: ErrNoKeyboard}
	}

	key, err := kb.ReadByte()

	if err != nil {
		return 0, &ErrHostIO{Op: op, Err: err}
	}

	return key, nil
}

// emit writes data to the display and flushes it
func (mc *Machine) emit(op string, data ...byte) error {
	if mc.Devices == nil || mc.Devices.Display == nil {
		return &ErrHostIO{Op: op, Err: ErrNoDisplay}
	}

	if _, err := mc.Devices.Display.Write(data); err != nil {
		return &ErrHostIO{Op: op, Err: err}
	}

	if err := mc.Devices.Display.Flush(); err != nil {
		return &ErrHostIO{Op: op, Err: err}
	}

	return nil
}

func (mc *Machine) trapGetc() error {
	key, err := mc.getc("GETC")

	if err != nil {
		return err
	}

	mc.State.Registers[0] = uint16(key)

	return nil
}

func (mc *Machine) trapOut() error {
	return mc.emit("OUT", byte(mc.State.Registers[0]&0xFF))
}

// One character per word, up to the first zero word
func (mc *Machine) trapPuts() error {
	var text []byte

	addr := mc.State.Registers[0]

	for range 1 << 16 {
		word := mc.read(addr)

		if word == 0 {
			break
		}

		text = append(text, byte(word&0xFF))
		addr++
	}

	return mc.emit("PUTS", text...)
}

func (mc *Machine) trapIn() error {
	if err := mc.emit("IN", []byte(inPrompt)...); err != nil {
		return err
	}

	key, err := mc.getc("IN")

	if err != nil {
		return err
	}

	if err := mc.emit("IN", key); err != nil {
		return err
	}

	mc.State.Registers[0] = uint16(key)

	return nil
}

// Two characters per word, low byte first, up to the first zero byte
func (mc *Machine) trapPutsp() error {
	var text []byte

	addr := mc.State.Registers[0]

scan:
	for range 1 << 16 {
		word := mc.read(addr)

		for _, char := range [2]byte{byte(word & 0xFF), byte(word >> 8)} {
			if char == 0 {
				break scan
			}

			text = append(text, char)
		}

		addr++
	}

	return mc.emit("PUTSP", text...)
}

func (mc *Machine) trapHalt() error {
	if err := mc.emit("HALT", []byte(haltNotice)...); err != nil {
		return err
	}

	mc.Status = Halted

	return nil
}
