/*
	Go logname -- print user's login name

	Copyright (C) 2015 Eric Lagergren

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

/* Written by Eric Lagergren */

// Package logname prints the login name of the current session.
package logname

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/ericlagergren/go-logname/internal/login"
)

// ErrTooManyArgs is returned when logname is given any operand at all.
// Arguments are never inspected, so --help and --version fail too.
var ErrTooManyArgs = errors.New("too many arguments")

// Source reports the login name of the current session.
type Source interface {
	Login() (string, error)
}

// SourceFunc adapts an ordinary function to a Source.
type SourceFunc func() (string, error)

// Login calls f.
func (f SourceFunc) Login() (string, error) { return f() }

// Runner holds everything a single logname invocation touches.
type Runner struct {
	// Program prefixes every diagnostic.
	Program string
	Source  Source
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns a Runner wired to the real login lookup and the process's
// standard streams.
func New(program string) *Runner {
	return &Runner{
		Program: program,
		Source:  &login.System{},
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Run executes logname. argc counts the program name, so a plain
// "logname" has argc == 1.
func (r *Runner) Run(argc int) Result {
	var res Result
	if argc > 1 {
		return r.warn(res, ErrTooManyArgs)
	}

	name, err := r.lookup()
	if err != nil {
		return r.warn(res, err)
	}
	return r.warn(res, r.write(name))
}

func (r *Runner) lookup() (string, error) {
	name, err := r.Source.Login()
	if err == nil && name == "" {
		err = login.ErrNoName
	}
	if err != nil {
		return "", errors.Wrap(err, "getlogin")
	}
	return name, nil
}

// write emits name and its newline in a single Write.
func (r *Runner) write(name string) error {
	if _, err := io.WriteString(r.Stdout, name+"\n"); err != nil {
		return errors.Wrapf(err, "puts: %s", name)
	}
	return nil
}

// warn records err in res and prints the diagnostic. A nil err leaves res
// untouched.
func (r *Runner) warn(res Result, err error) Result {
	if err == nil {
		return res
	}
	if res.Failed() {
		return res
	}
	log.New(r.Stderr, r.Program+": ", 0).Println(err)
	return res.fail(err)
}
