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
	"github.com/lassandro/golc3/pkg/encoding"
)

type Opcode uint16

var opcodeNames = [16]string{
	OP_BR:   "BR",
	OP_ADD:  "ADD",
	OP_LD:   "LD",
	OP_ST:   "ST",
	OP_JSR:  "JSR",
	OP_AND:  "AND",
	OP_LDR:  "LDR",
	OP_STR:  "STR",
	OP_RTI:  "RTI",
	OP_NOT:  "NOT",
	OP_LDI:  "LDI",
	OP_STI:  "STI",
	OP_JMP:  "JMP",
	OP_RES:  "RES",
	OP_LEA:  "LEA",
	OP_TRAP: "TRAP",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}

	return "invalid"
}

// Instruction is a fetched 16-bit word. The accessors extract the operand
// fields shared by the LC-3 instruction layouts:
//
//	[15:12] opcode
//	[11:9]  DR / SR / nzp
//	[8:6]   SR1 / BaseR
//	[5]     immediate mode
//	[2:0]   SR2
type Instruction uint16

func (in Instruction) Opcode() Opcode {
	return Opcode(in >> 12)
}

func (in Instruction) DR() uint16 {
	return uint16(in>>9) & 0x7
}

func (in Instruction) SR1() uint16 {
	return uint16(in>>6) & 0x7
}

func (in Instruction) SR2() uint16 {
	return uint16(in) & 0x7
}

func (in Instruction) Immediate() bool {
	return (in>>5)&0x1 == 1
}

// JSR with bit 11 set is PC-relative, otherwise JSRR through BaseR
func (in Instruction) Relative() bool {
	return (in>>11)&0x1 == 1
}

func (in Instruction) Imm5() uint16 {
	return encoding.SignExtend(uint16(in), 5)
}

func (in Instruction) Offset6() uint16 {
	return encoding.SignExtend(uint16(in), 6)
}

func (in Instruction) PCOffset9() uint16 {
	return encoding.SignExtend(uint16(in), 9)
}

func (in Instruction) PCOffset11() uint16 {
	return encoding.SignExtend(uint16(in), 11)
}

func (in Instruction) TrapVect8() uint16 {
	return encoding.ZeroExtend(uint16(in), 8)
}
