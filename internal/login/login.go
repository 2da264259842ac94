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

// Package login resolves the login name of the current session the way
// getlogin(3) does. There is no fallback to $LOGNAME or the
// effective user ID; POSIX prohibits one.
package login

import "github.com/pkg/errors"

// ErrNoName is returned when no login name is recorded and no system
// error explains why.
var ErrNoName = errors.New("failed to get login name")

const (
	// LoginUIDFile holds the audit login UID of the calling process.
	LoginUIDFile = "/proc/self/loginuid"
)

// System looks up the login name from the operating system. The zero value
// queries the real files and standard input.
type System struct {
	// LoginUIDFile overrides /proc/self/loginuid.
	LoginUIDFile string
	// UtmpFile overrides /var/run/utmp.
	UtmpFile string
	// Fd is the descriptor whose terminal names the session.
	Fd int

	lookupID func(uid string) (string, error)
	ttyName  func(fd int) (string, error)
}

// GetLogin returns the login name of the current session.
func GetLogin() (string, error) {
	var s System
	return s.Login()
}
