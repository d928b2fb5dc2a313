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

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lassandro/golc3/pkg/encoding"
	"github.com/lassandro/golc3/pkg/loader"
	"github.com/lassandro/golc3/pkg/machine"
)

const usage = "golc3 [-trace] [-json] [-start 0x####] filename [filename...]"

type options struct {
	help  bool
	trace bool
	json  bool
	start string
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	var opts options

	flags := flag.NewFlagSet("golc3", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}

	flags.BoolVar(&opts.help, "help", false, "Displays command usage")
	flags.BoolVar(&opts.trace, "trace", false, "Logs every executed instruction")
	flags.BoolVar(&opts.json, "json", false, "Writes log output as JSON")
	flags.StringVar(
		&opts.start, "start", "",
		"Overrides the initial program counter, which otherwise is the "+
			"origin of the first image",
	)

	if err := flags.Parse(args); err != nil {
		return nil, nil, err
	}

	if opts.help {
		flags.Usage()
	}

	return &opts, flags.Args(), nil
}

func newLogger(out io.Writer, opts *options) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	if opts.json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	if opts.trace {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func golc3(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, paths, err := parseFlags(args, stderr)

	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 1
	}

	if opts.help {
		return 0
	}

	log := newLogger(stderr, opts)

	if len(paths) == 0 {
		log.Error(usage)
		return 1
	}

	images := make([]*loader.Image, 0, len(paths))

	for _, path := range paths {
		img, err := loader.Load(path)

		if err != nil {
			log.WithError(err).Error("Error loading image")
			return 1
		}

		log.WithFields(logrus.Fields{
			"path":   path,
			"origin": fmt.Sprintf("%#04x", img.Origin),
			"words":  len(img.Words),
		}).Debug("Image loaded")

		images = append(images, img)
	}

	var mc machine.Machine
	mc.Log = log
	mc.Load(images...)

	if opts.start != "" {
		addr, err := encoding.DecodeHex(opts.start)

		if err != nil {
			log.WithError(err).Errorf("Invalid start address %q", opts.start)
			return 1
		}

		mc.State.Program = addr
	}

	devices := machine.DeviceHandler{Display: bufio.NewWriter(stdout)}

	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		restore, err := enterRawTerm(file)

		if err != nil {
			log.WithError(err).Error("Error configuring terminal")
			return 1
		}

		defer func() {
			if err := restore(); err != nil {
				log.WithError(err).Error("Error restoring terminal")
			}
		}()

		devices.Keyboard = newTermKeyboard(ctx, file)
	} else {
		devices.Keyboard = machine.NewKeyboard(ctx, stdin)
	}

	mc.Devices = &devices

	if err := mc.Run(ctx); err != nil {
		log.WithError(err).WithField(
			"pc", fmt.Sprintf("%#04x", mc.State.Program),
		).Error("Machine faulted")
		return 1
	}

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)

	code := golc3(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
