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

// Command logname prints the login name of the current session.
//
// Any operand, including --help or --version, is an error.
package main

import (
	"os"
	"path/filepath"

	logname "github.com/ericlagergren/go-logname"
)

func main() {
	r := logname.New(filepath.Base(os.Args[0]))
	os.Exit(r.Run(len(os.Args)).ExitCode())
}
