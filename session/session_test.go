// SPDX-License-Identifier: MIT

package session

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/command"
	"github.com/katalvlaran/lvmat/registry"
	"github.com/stretchr/testify/require"
)

// scriptReader replays fixed lines, then returns err (io.EOF by default).
type scriptReader struct {
	lines []string
	err   error
	reads int
}

func (r *scriptReader) ReadLine() (string, error) {
	r.reads++
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]

	return line, nil
}

type promptingScript struct {
	scriptReader
	prompt string
}

func (r *promptingScript) SetPrompt(p string) { r.prompt = p }

type recordingDispatcher struct {
	lines []string
	err   error
}

func (d *recordingDispatcher) Dispatch(line string) error {
	d.lines = append(d.lines, line)
	return d.err
}

type countingReleaser struct{ calls int }

func (r *countingReleaser) DestroyAll() { r.calls++ }

func TestRunDispatchesUntilExit(t *testing.T) {
	in := &scriptReader{lines: []string{"create A 1 1", "", "   ", "display A", "exit", "display B"}}
	d := &recordingDispatcher{}
	rel := &countingReleaser{}

	require.NoError(t, New(in, d, rel).Run())
	require.Equal(t, []string{"create A 1 1", "display A"}, d.lines)
	require.Equal(t, 1, rel.calls)
}

func TestRunStopsAtEOF(t *testing.T) {
	in := &scriptReader{lines: []string{"display A"}}
	d := &recordingDispatcher{}
	rel := &countingReleaser{}

	require.NoError(t, New(in, d, rel).Run())
	require.Equal(t, []string{"display A"}, d.lines)
	require.Equal(t, 1, rel.calls)
}

func TestRunDispatchErrorsDoNotStopLoop(t *testing.T) {
	in := &scriptReader{lines: []string{"bad", "worse"}}
	d := &recordingDispatcher{err: errors.New("boom")}

	require.NoError(t, New(in, d, nil).Run())
	require.Len(t, d.lines, 2)
}

func TestRunReadErrorReleasesAndFails(t *testing.T) {
	readErr := errors.New("tty gone")
	in := &scriptReader{lines: []string{"display A"}, err: readErr}
	rel := &countingReleaser{}

	err := New(in, &recordingDispatcher{}, rel).Run()
	require.ErrorIs(t, err, readErr)
	require.Equal(t, 1, rel.calls)
}

// "exit" must match the whole line.
func TestRunExitIsExact(t *testing.T) {
	in := &scriptReader{lines: []string{"exits", "exit now", " exit "}}
	d := &recordingDispatcher{}

	require.NoError(t, New(in, d, nil).Run())
	require.Equal(t, []string{"exits", "exit now"}, d.lines)
}

func TestRunPrintsPrompt(t *testing.T) {
	var out bytes.Buffer
	in := &scriptReader{lines: []string{"x"}}

	require.NoError(t, New(in, &recordingDispatcher{}, nil, WithOutput(&out), WithPrompt("lv> ")).Run())
	require.Equal(t, "lv> lv> ", out.String(), "one prompt per read")
}

func TestRunPromptingReaderDrawsOwnPrompt(t *testing.T) {
	var out bytes.Buffer
	in := &promptingScript{scriptReader: scriptReader{lines: []string{"x"}}}

	require.NoError(t, New(in, &recordingDispatcher{}, nil, WithOutput(&out), WithPrompt("lv> ")).Run())
	require.Equal(t, "lv> ", in.prompt)
	require.Empty(t, out.String())
}

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader("  create A 1 1 \r\n\ndisplay A"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "create A 1 1", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	require.Empty(t, line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	require.Equal(t, "display A", line, "last line without newline is kept")

	_, err = r.ReadLine()
	require.ErrorIs(t, err, io.EOF)
}

// Full stack: lines from a reader through the dispatcher into a registry.
func TestRunWithDispatcher(t *testing.T) {
	dir := t.TempDir()
	reg, err := registry.New(10)
	require.NoError(t, err)
	var out bytes.Buffer
	d, err := command.New(reg, &out, command.WithDataDir(dir))
	require.NoError(t, err)

	script := "create A 2 2\nrandom A 3 3\nwrite A\nequal A A\nexit\n"
	require.NoError(t, New(NewLineReader(strings.NewReader(script)), d, reg).Run())

	require.Equal(t, strings.Join([]string{
		"Created Matrix (A,2,2)",
		"Matrix (A) is randomized between 3 3",
		"Matrix (A) is written out to the filesystem",
		"SAME DATA IN BOTH",
		"",
	}, "\n"), out.String())
	require.FileExists(t, filepath.Join(dir, "A"))
	require.Zero(t, reg.Len(), "registry released at exit")
}
