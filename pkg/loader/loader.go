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

// Package loader reads LC-3 program images.
//
// An image is a sequence of big-endian 16-bit words. The first word is the
// origin, the address at which the remaining words are placed.
package loader

import (
	"encoding/binary"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
)

const memorySize = 1 << 16

type Image struct {
	Origin uint16
	Words  []uint16
}

// Writes yields the (address, value) pairs that place the image in memory.
func (img *Image) Writes() iter.Seq2[uint16, uint16] {
	return func(yield func(uint16, uint16) bool) {
		for i, word := range img.Words {
			if !yield(img.Origin+uint16(i), word) {
				return
			}
		}
	}
}

// End returns the address one past the last word of the image.
func (img *Image) End() int {
	return int(img.Origin) + len(img.Words)
}

func Read(reader io.Reader) (*Image, error) {
	data, err := io.ReadAll(reader)

	if err != nil {
		return nil, &ErrLoad{Err: &wrapped{ErrUnreadable, err}}
	}

	img, err := parse(data)

	if err != nil {
		return nil, &ErrLoad{Err: err}
	}

	return img, nil
}

func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)

	if errors.Is(err, fs.ErrNotExist) {
		return nil, &ErrLoad{Path: path, Err: &wrapped{ErrNotFound, err}}
	} else if err != nil {
		return nil, &ErrLoad{Path: path, Err: &wrapped{ErrUnreadable, err}}
	}

	img, err := parse(data)

	if err != nil {
		return nil, &ErrLoad{Path: path, Err: err}
	}

	return img, nil
}

func parse(data []byte) (*Image, error) {
	if len(data) < 2 || len(data)%2 != 0 {
		return nil, ErrTruncated
	}

	img := &Image{
		Origin: binary.BigEndian.Uint16(data),
		Words:  make([]uint16, 0, len(data)/2-1),
	}

	for i := 2; i < len(data); i += 2 {
		img.Words = append(img.Words, binary.BigEndian.Uint16(data[i:]))
	}

	if img.End() > memorySize {
		return nil, ErrOverflow
	}

	return img, nil
}
