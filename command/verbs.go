// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/codec"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/metrics"
)

// verb is one entry of the command language.
type verb struct {
	Name  string
	Arity int // tokens including the verb itself
	Usage string
	Desc  string
	Fail  string // diagnostic prefix printed on failure
	Run   func(d *Dispatcher, args []string) error
}

var verbTable = []verb{
	{Name: "create", Arity: 4, Usage: "create <name> <rows> <cols>", Desc: "Create a zeroed matrix.", Fail: "Create Failed", Run: runCreate},
	{Name: "display", Arity: 2, Usage: "display <name>", Desc: "Print a matrix.", Fail: "Display Failed", Run: runDisplay},
	{Name: "add", Arity: 4, Usage: "add <a> <b> <out>", Desc: "Store a+b as a new matrix.", Fail: "Addition Failed", Run: runAdd},
	{Name: "duplicate", Arity: 3, Usage: "duplicate <src> <dst>", Desc: "Copy a matrix under a new name.", Fail: "Duplication Failed", Run: runDuplicate},
	{Name: "equal", Arity: 3, Usage: "equal <a> <b>", Desc: "Compare two matrices.", Fail: "Equal Failed", Run: runEqual},
	{Name: "shift", Arity: 4, Usage: "shift <name> <l|r> <amount>", Desc: "Bit-shift every element in place.", Fail: "Matrix shift failed", Run: runShift},
	{Name: "random", Arity: 4, Usage: "random <name> <lo> <hi>", Desc: "Fill with values in [lo,hi].", Fail: "Randomize Failed", Run: runRandom},
	{Name: "read", Arity: 2, Usage: "read <path>", Desc: "Load a matrix file.", Fail: "Read Failed", Run: runRead},
	{Name: "write", Arity: 2, Usage: "write <name>", Desc: "Save a matrix to a file named after it.", Fail: "Write Failed", Run: runWrite},
}

// parseUint32 parses a base-10 operand.
func parseUint32(field, s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, matrix.ErrInvalidArgument)
	}

	return uint32(v), nil
}

func runCreate(d *Dispatcher, args []string) error {
	rows, err := parseUint32("rows", args[2])
	if err != nil {
		return err
	}
	cols, err := parseUint32("cols", args[3])
	if err != nil {
		return err
	}
	m, err := matrix.New(args[1], int(rows), int(cols))
	if err != nil {
		return err
	}
	if err = d.insert(m); err != nil {
		return err
	}
	d.printOK("Created Matrix (%s,%d,%d)", m.Name(), m.Rows(), m.Cols())

	return nil
}

func runDisplay(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	d.printMatrix(m)

	return nil
}

func runAdd(d *Dispatcher, args []string) error {
	a, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	b, err := d.lookup(args[2])
	if err != nil {
		return err
	}
	out, err := matrix.New(args[3], a.Rows(), a.Cols())
	if err != nil {
		return err
	}
	if err = matrix.Add(a, b, out); err != nil {
		return err
	}
	if err = d.insert(out); err != nil {
		return err
	}
	d.printOK("Added %s with %s into %s", a.Name(), b.Name(), out.Name())

	return nil
}

func runDuplicate(d *Dispatcher, args []string) error {
	src, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	dst, err := matrix.Duplicate(src, args[2])
	if err != nil {
		return err
	}
	if err = d.insert(dst); err != nil {
		return err
	}
	d.printOK("Duplication of %s into %s finished", src.Name(), dst.Name())

	return nil
}

func runEqual(d *Dispatcher, args []string) error {
	a, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	b, err := d.lookup(args[2])
	if err != nil {
		return err
	}
	if matrix.Equal(a, b) {
		d.printOK("SAME DATA IN BOTH")
	} else {
		d.printOK("DIFFERENT DATA IN BOTH")
	}

	return nil
}

func runShift(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	dir, err := matrix.ParseDirection(args[2])
	if err != nil {
		return err
	}
	amount, err := parseUint32("amount", args[3])
	if err != nil {
		return err
	}
	if err = matrix.Shift(m, dir, uint(amount)); err != nil {
		return err
	}
	d.printOK("Matrix (%s) has been shifted by %d", m.Name(), amount)

	return nil
}

func runRandom(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	lo, err := parseUint32("lo", args[2])
	if err != nil {
		return err
	}
	hi, err := parseUint32("hi", args[3])
	if err != nil {
		return err
	}
	if err = matrix.Randomize(m, lo, hi, d.rng); err != nil {
		return err
	}
	d.printOK("Matrix (%s) is randomized between %d %d", m.Name(), lo, hi)

	return nil
}

func runRead(d *Dispatcher, args []string) error {
	path := args[1]
	if !filepath.IsAbs(path) {
		path = filepath.Join(d.dataDir, path)
	}
	m, err := codec.ReadMatrix(path)
	if err != nil {
		return err
	}
	if err = d.insert(m); err != nil {
		return err
	}
	d.metrics.ObserveCodecBytes(metrics.DirectionRead, codec.EncodedSize(m))
	d.printOK("Matrix (%s) is read from the filesystem", m.Name())

	return nil
}

func runWrite(d *Dispatcher, args []string) error {
	m, err := d.lookup(args[1])
	if err != nil {
		return err
	}
	path, err := d.filePath(m.Name())
	if err != nil {
		return err
	}
	n, err := codec.WriteMatrix(path, m)
	d.metrics.ObserveCodecBytes(metrics.DirectionWrite, n)
	if err != nil {
		return err
	}
	d.printOK("Matrix (%s) is written out to the filesystem", m.Name())

	return nil
}

// filePath maps a matrix name to its file under the data directory.
func (d *Dispatcher) filePath(name string) (string, error) {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafeName)
	}

	return filepath.Join(d.dataDir, name), nil
}
