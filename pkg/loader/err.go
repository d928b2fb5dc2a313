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

package loader

import (
	"errors"

	"github.com/lassandro/golc3/pkg/translate"
)

var f = translate.From

var (
	ErrNotFound   = errors.New(f("image not found"))
	ErrUnreadable = errors.New(f("image unreadable"))
	ErrTruncated  = errors.New(f("image truncated"))
	ErrOverflow   = errors.New(f("image overflows memory"))
)

// ErrLoad reports an image that could not be loaded. Err is one of the
// sentinel errors above, possibly wrapping the underlying cause.
type ErrLoad struct {
	Path string
	Err  error
}

func (err *ErrLoad) Error() string {
	if err.Path == "" {
		return err.Err.Error()
	}

	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}

type wrapped struct {
	kind  error
	cause error
}

func (err *wrapped) Error() string {
	return f("%v: %v", err.kind, err.cause)
}

func (err *wrapped) Unwrap() []error {
	return []error{err.kind, err.cause}
}
