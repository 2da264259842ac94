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

package login

import (
	"os"
	"os/user"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/ericlagergren/go-logname/internal/utmp"
)

// noLoginUID is (uid_t)-1, written by the kernel when no login UID is set.
const noLoginUID = 4294967295

// Login returns the login name recorded for the session. The audit login
// UID wins when the kernel has one; otherwise the utmp entry for the
// terminal on s.Fd is used.
func (s *System) Login() (string, error) {
	name, ok, err := s.fromLoginUID()
	if ok {
		return name, err
	}
	return s.fromUtmp()
}

// fromLoginUID reports ok == false when the caller should fall back to
// utmp.
func (s *System) fromLoginUID() (name string, ok bool, err error) {
	file := s.LoginUIDFile
	if file == "" {
		file = LoginUIDFile
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", false, nil
	}
	text := strings.TrimSpace(string(b))
	uid, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return "", false, nil
	}
	if uid == noLoginUID {
		return "", true, unix.ENXIO
	}

	lookup := s.lookupID
	if lookup == nil {
		lookup = lookupUsername
	}
	name, err = lookup(text)
	if err != nil || name == "" {
		return "", false, nil
	}
	return name, true, nil
}

func (s *System) fromUtmp() (string, error) {
	ttyName := s.ttyName
	if ttyName == nil {
		ttyName = ttyname
	}
	tty, err := ttyName(s.Fd)
	if err != nil {
		return "", err
	}
	line := strings.TrimPrefix(tty, "/dev/")

	file := s.UtmpFile
	if file == "" {
		file = utmp.UtmpFile
	}
	utmps, err := utmp.ReadUtmp(file)
	if err != nil {
		return "", err
	}
	for _, u := range utmps {
		if u.Type != utmp.LoginProcess && u.Type != utmp.UserProcess {
			continue
		}
		if u.LineName() != line {
			continue
		}
		if name := u.ExtractTrimmedName(); name != "" {
			return name, nil
		}
		return "", ErrNoName
	}
	return "", unix.ENOENT
}

func lookupUsername(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// ttyname returns the path of the terminal open on fd.
func ttyname(fd int) (string, error) {
	if _, err := unix.IoctlGetTermios(fd, unix.TCGETS); err != nil {
		return "", err
	}
	return os.Readlink("/proc/self/fd/" + strconv.Itoa(fd))
}
