// Copyright 2023. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package pcn

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadList parses a function in the textual PCN format: whitespace-separated
// decimal integers, beginning with the arity N and the number of product
// terms M, followed by M cube descriptions. Each cube starts with the count
// k of its enumerated variables, then k signed indices: a positive v puts
// variable v in positive polarity and a negative v puts variable |v| in
// negative polarity, both 1-based, so index v is stored at position |v|-1.
// Variables not listed are don't care. For instance
//
//	3
//	2
//	2 1 -2
//	1 3
//
// reads as F = x0*x1' + x2. Malformed input (truncated header or cube line,
// an index of zero or outside [1..N]) yields an error and no CubeList.
func ReadList(r io.Reader) (CubeList, error) {
	br := bufio.NewReader(r)
	var n, m int
	if _, err := fmt.Fscan(br, &n); err != nil {
		return CubeList{}, errors.Wrap(err, "reading arity header")
	}
	if n < 0 {
		return CubeList{}, errors.Errorf("negative arity %d in header", n)
	}
	if _, err := fmt.Fscan(br, &m); err != nil {
		return CubeList{}, errors.Wrap(err, "reading cube count header")
	}
	if m < 0 {
		return CubeList{}, errors.Errorf("negative cube count %d in header", m)
	}
	l := NewList(n)
	for j := 1; j <= m; j++ {
		c, err := readCube(br, n)
		if err != nil {
			return CubeList{}, errors.Wrapf(err, "reading cube %d of %d", j, m)
		}
		l.appendRaw(c)
	}
	return l, nil
}

// readCube parses one cube line: the count of enumerated variables followed
// by that many signed 1-based indices.
func readCube(br *bufio.Reader, n int) (Cube, error) {
	var k int
	if _, err := fmt.Fscan(br, &k); err != nil {
		return nil, errors.Wrap(err, "reading variable count")
	}
	if k < 0 {
		return nil, errors.Errorf("negative variable count %d", k)
	}
	c := NewCube(n)
	for i := 0; i < k; i++ {
		var v int
		if _, err := fmt.Fscan(br, &v); err != nil {
			return nil, errors.Wrapf(err, "reading variable %d of %d", i+1, k)
		}
		if v == 0 {
			return nil, errors.New("variable index 0 is not a valid 1-based index")
		}
		pol, idx := POS, v-1
		if v < 0 {
			pol, idx = NEG, -v-1
		}
		if idx >= n {
			return nil, errors.Errorf("variable %d outside arity %d", v, n)
		}
		c = AndCube(Literal{Index: uint32(idx), Pol: pol}, c)
	}
	return c, nil
}

// ReadListFile reads a function in the PCN format from a file.
func ReadListFile(filename string) (CubeList, error) {
	file, err := os.Open(filename)
	if err != nil {
		return CubeList{}, errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close()
	l, err := ReadList(file)
	if err != nil {
		return CubeList{}, errors.Wrapf(err, "parsing %s", filename)
	}
	return l, nil
}

// Fprint writes a function to w in the PCN format read by ReadList: the
// arity and the number of terms on their own lines, then one line per cube
// with the count of enumerated variables followed by their signed 1-based
// indices.
func Fprint(w io.Writer, l CubeList) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, l.N())
	fmt.Fprintln(bw, l.Len())
	for _, c := range l.cubes {
		fmt.Fprint(bw, c.enumerated())
		for i, f := range c {
			switch f {
			case POS:
				fmt.Fprintf(bw, " %d", i+1)
			case NEG:
				fmt.Fprintf(bw, " -%d", i+1)
			}
		}
		fmt.Fprintln(bw)
	}
	return errors.Wrap(bw.Flush(), "writing PCN output")
}

// WriteListFile writes a function in the PCN format to a file, creating or
// truncating it.
func WriteListFile(filename string, l CubeList) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer file.Close()
	if err := Fprint(file, l); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return errors.Wrapf(file.Close(), "closing %s", filename)
}
