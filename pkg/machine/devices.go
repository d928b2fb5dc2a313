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
	"context"
	"io"
)

// Keyboard is the host input device. ReadByte blocks until a character is
// available; Ready reports whether ReadByte would return without blocking.
type Keyboard interface {
	io.ByteReader
	Ready() bool
}

// NewKeyboard adapts reader into a Keyboard. In-memory readers (anything
// with a Len method, such as *bytes.Reader or *strings.Reader) never block
// and are read directly; any other stream is pumped by a StreamKeyboard.
func NewKeyboard(ctx context.Context, reader io.Reader) Keyboard {
	if buffer, ok := reader.(interface{ Len() int }); ok {
		return &BufferKeyboard{bufio.NewReader(reader), buffer}
	}

	return NewStreamKeyboard(ctx, reader)
}

// BufferKeyboard reads keys from an in-memory reader.
type BufferKeyboard struct {
	*bufio.Reader
	source interface{ Len() int }
}

func (kb *BufferKeyboard) Ready() bool {
	return kb.Buffered() > 0 || kb.source.Len() > 0
}

type keystroke struct {
	key byte
	err error
}

// StreamKeyboard reads keys from a stream that may block, such as a pipe.
// A goroutine moves keys from the stream onto a channel, so Ready never
// waits and ReadByte gives up with the context's error once it is done.
type StreamKeyboard struct {
	ctx  context.Context
	keys chan keystroke
	next *keystroke
}

func NewStreamKeyboard(ctx context.Context, reader io.Reader) *StreamKeyboard {
	kb := &StreamKeyboard{ctx: ctx, keys: make(chan keystroke, 64)}
	go kb.pump(reader)
	return kb
}

func (kb *StreamKeyboard) pump(reader io.Reader) {
	var buf [1]byte

	for {
		n, err := reader.Read(buf[:])

		if n == 1 && !kb.send(keystroke{key: buf[0]}) {
			return
		}

		if err != nil {
			kb.send(keystroke{err: err})
			return
		}
	}
}

func (kb *StreamKeyboard) send(key keystroke) bool {
	select {
	case kb.keys <- key:
		return true
	case <-kb.ctx.Done():
		return false
	}
}

func (kb *StreamKeyboard) Ready() bool {
	if kb.next != nil {
		return true
	}

	select {
	case key := <-kb.keys:
		kb.next = &key
		return true
	default:
		return false
	}
}

// ReadByte returns the next key. A stream error is returned by this and
// every later call.
func (kb *StreamKeyboard) ReadByte() (byte, error) {
	if kb.next == nil {
		select {
		case key := <-kb.keys:
			kb.next = &key
		case <-kb.ctx.Done():
			return 0, kb.ctx.Err()
		}
	}

	key := *kb.next

	if key.err == nil {
		kb.next = nil
	}

	return key.key, key.err
}
