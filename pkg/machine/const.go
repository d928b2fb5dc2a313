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

const (
	FLAG_POS  uint16 = 1 << 0
	FLAG_ZERO uint16 = 1 << 1
	FLAG_NEG  uint16 = 1 << 2
)

const (
	TRAP_GETC  uint16 = 0x20
	TRAP_OUT   uint16 = 0x21
	TRAP_PUTS  uint16 = 0x22
	TRAP_IN    uint16 = 0x23
	TRAP_PUTSP uint16 = 0x24
	TRAP_HALT  uint16 = 0x25
)

const (
	MEMSPACE_USER    uint16 = 0x3000
	MEMSPACE_DEVICES uint16 = 0xFE00
)

const (
	DEV_KBSR uint16 = 0xFE00
	DEV_KBDR uint16 = 0xFE02
	DEV_DSR  uint16 = 0xFE04
	DEV_DDR  uint16 = 0xFE06
)

// Device status registers report readiness in their high bit
const DEV_READY uint16 = 1 << 15

const (
	OP_ADD  Opcode = 0b0001
	OP_AND  Opcode = 0b0101
	OP_BR   Opcode = 0b0000
	OP_JMP  Opcode = 0b1100
	OP_JSR  Opcode = 0b0100
	OP_LD   Opcode = 0b0010
	OP_LDI  Opcode = 0b1010
	OP_LDR  Opcode = 0b0110
	OP_LEA  Opcode = 0b1110
	OP_NOT  Opcode = 0b1001
	OP_ST   Opcode = 0b0011
	OP_STI  Opcode = 0b1011
	OP_STR  Opcode = 0b0111
	OP_TRAP Opcode = 0b1111

	// Supervisor return, no privileged mode on this machine
	OP_RTI Opcode = 0b1000

	// Reserved
	OP_RES Opcode = 0b1101
)

const inPrompt = "Enter a character: "
const haltNotice = "HALT\n"
