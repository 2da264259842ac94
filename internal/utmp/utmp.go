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

// Package utmp reads login records in the glibc utmp format.
package utmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	UtmpFile = "/var/run/utmp"
	WtmpFile = "/var/log/wtmp"
)

// Record types, see utmp(5).
const (
	Empty        = 0
	RunLevel     = 1
	BootTime     = 2
	NewTime      = 3
	OldTime      = 4
	InitProcess  = 5
	LoginProcess = 6
	UserProcess  = 7
	DeadProcess  = 8
	Accounting   = 9
)

const (
	LineSize = 32
	NameSize = 32
	HostSize = 256
)

type ExitStatus struct {
	Termination int16
	Exit        int16
}

// TimeVal is the 32-bit timeval glibc stores even on 64-bit systems.
type TimeVal struct {
	Sec  int32
	Usec int32
}

// Utmp is one record of the utmp file. Its binary size is 384 bytes.
type Utmp struct {
	Type    int16
	_       [2]byte
	Pid     int32
	Line    [LineSize]byte
	ID      [4]byte
	User    [NameSize]byte
	Host    [HostSize]byte
	Exit    ExitStatus
	Session int32
	Tv      TimeVal
	AddrV6  [4]int32
	_       [20]byte
}

// Size is the length in bytes of a single record.
var Size = binary.Size(Utmp{})

// IsUserProcess reports whether u describes a logged in user.
func (u *Utmp) IsUserProcess() bool {
	return u.Type == UserProcess && u.User[0] != 0
}

// ExtractTrimmedName returns the user field without trailing NULs.
func (u *Utmp) ExtractTrimmedName() string {
	return trim(u.User[:])
}

// LineName returns the device name, relative to /dev, without trailing NULs.
func (u *Utmp) LineName() string {
	return trim(u.Line[:])
}

func trim(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// Read decodes records from r until EOF. A trailing partial record is
// discarded.
func Read(r io.Reader) ([]Utmp, error) {
	br := bufio.NewReader(r)

	var utmps []Utmp
	for {
		var u Utmp
		err := binary.Read(br, binary.NativeEndian, &u)
		switch err {
		case nil:
			utmps = append(utmps, u)
		case io.EOF, io.ErrUnexpectedEOF:
			return utmps, nil
		default:
			return nil, errors.Wrap(err, "utmp")
		}
	}
}

// ReadUtmp reads every record in file.
func ReadUtmp(file string) ([]Utmp, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
