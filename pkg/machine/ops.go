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

type handler func(mc *Machine, in Instruction) error

// RTI and RES have no entry and fault when fetched
var handlers = [16]handler{
	OP_ADD:  (*Machine).add,
	OP_AND:  (*Machine).and,
	OP_BR:   (*Machine).branch,
	OP_JMP:  (*Machine).jump,
	OP_JSR:  (*Machine).jumpSubroutine,
	OP_LD:   (*Machine).load,
	OP_LDI:  (*Machine).loadIndirect,
	OP_LDR:  (*Machine).loadBase,
	OP_LEA:  (*Machine).loadAddress,
	OP_NOT:  (*Machine).not,
	OP_ST:   (*Machine).store,
	OP_STI:  (*Machine).storeIndirect,
	OP_STR:  (*Machine).storeBase,
	OP_TRAP: (*Machine).trap,
}

// ADD  |0001    |DR   |SR1  |0|00 |SR2   | Register  addition
// ADD  |0001    |DR   |SR1  |1|imm5      | Immediate addition
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) add(in Instruction) error {
	dest := in.DR()
	operand := in.Imm5()

	if !in.Immediate() {
		operand = mc.State.Registers[in.SR2()]
	}

	mc.State.Registers[dest] = mc.State.Registers[in.SR1()] + operand
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// AND  |0101    |DR   |SR1  |0|00 |SR2   | Register  bitwise
// AND  |0101    |DR   |SR1  |1|imm5      | Immediate bitwise
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) and(in Instruction) error {
	dest := in.DR()
	operand := in.Imm5()

	if !in.Immediate() {
		operand = mc.State.Registers[in.SR2()]
	}

	mc.State.Registers[dest] = mc.State.Registers[in.SR1()] & operand
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// BR   |0000    |N|Z|P|PCoffset9         | Conditional branch
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) branch(in Instruction) error {
	if in.DR()&mc.State.Condition != 0 {
		mc.State.Program += in.PCOffset9()
	}

	return nil
}

// JMP  |1100    |000  |BaseR|000000      | Jump
// RET  |1100    |000  |111  |000000      | Return
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) jump(in Instruction) error {
	mc.State.Program = mc.State.Registers[in.SR1()]

	return nil
}

// JSR  |0100    |1|PCoffset11            | Jump to subroutine
// JSRR |0100    |0|00 |BaseR|000000      | Jump to subroutine register
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) jumpSubroutine(in Instruction) error {
	link := mc.State.Program

	if in.Relative() {
		mc.State.Program += in.PCOffset11()
	} else {
		mc.State.Program = mc.State.Registers[in.SR1()]
	}

	mc.State.Registers[7] = link

	return nil
}

// LD   |0010    |DR   |PCoffset9         | Load
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) load(in Instruction) error {
	dest := in.DR()
	addr := mc.State.Program + in.PCOffset9()

	mc.State.Registers[dest] = mc.read(addr)
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// LDI  |1010    |DR   |PCoffset9         | Load indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) loadIndirect(in Instruction) error {
	dest := in.DR()
	addr := mc.State.Program + in.PCOffset9()

	mc.State.Registers[dest] = mc.read(mc.read(addr))
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// LDR  |0110    |DR   |BaseR|offset6     | Load base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) loadBase(in Instruction) error {
	dest := in.DR()
	addr := mc.State.Registers[in.SR1()] + in.Offset6()

	mc.State.Registers[dest] = mc.read(addr)
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// LEA  |1110    |DR   |PCoffset9         | Load effective address
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) loadAddress(in Instruction) error {
	dest := in.DR()

	mc.State.Registers[dest] = mc.State.Program + in.PCOffset9()
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// NOT  |1001    |DR   |SR   |1|11111     | Bitwise complement
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) not(in Instruction) error {
	dest := in.DR()

	mc.State.Registers[dest] = ^mc.State.Registers[in.SR1()]
	mc.setFlags(mc.State.Registers[dest])

	return nil
}

// ST   |0011    |SR   |PCoffset9         | Store
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) store(in Instruction) error {
	addr := mc.State.Program + in.PCOffset9()

	return mc.write(addr, mc.State.Registers[in.DR()])
}

// STI  |1011    |SR   |PCoffset9         | Store indirect
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) storeIndirect(in Instruction) error {
	addr := mc.State.Program + in.PCOffset9()

	return mc.write(mc.read(addr), mc.State.Registers[in.DR()])
}

// STR  |0111    |SR   |BaseR|offset6     | Store base+offset
// ---- [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
func (mc *Machine) storeBase(in Instruction) error {
	addr := mc.State.Registers[in.SR1()] + in.Offset6()

	return mc.write(addr, mc.State.Registers[in.DR()])
}
