// SPDX-License-Identifier: MIT

package parser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/affinity/prefs"
)

var (
	// ErrMissingGroupSize means the input had no non-blank line.
	ErrMissingGroupSize = errors.New("parser: missing group size")

	// ErrBadGroupSize means the first line is not a non-negative integer.
	ErrBadGroupSize = errors.New("parser: bad group size")

	// ErrOrphanChoice means an indented line appeared before any chooser.
	ErrOrphanChoice = errors.New("parser: choice without a chooser")
)

// Input is the parsed content of a preference file.
type Input struct {
	GroupSize int
	Entries   []prefs.Entry
}

// Parse reads the preference format from r.
func Parse(r io.Reader) (*Input, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	in := &Input{}
	line := 0
	seenHeader := false
	for sc.Scan() {
		line++
		raw := strings.TrimRight(sc.Text(), "\r")
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		if !seenHeader {
			k, err := strconv.Atoi(text)
			if err != nil || k < 0 {
				return nil, errors.Wrapf(ErrBadGroupSize, "line %d: %q", line, text)
			}
			in.GroupSize = k
			seenHeader = true

			continue
		}

		if raw[0] == ' ' || raw[0] == '\t' {
			if len(in.Entries) == 0 {
				return nil, errors.Wrapf(ErrOrphanChoice, "line %d: %q", line, text)
			}
			last := &in.Entries[len(in.Entries)-1]
			last.Choices = append(last.Choices, text)

			continue
		}
		in.Entries = append(in.Entries, prefs.Entry{Chooser: text})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read preferences")
	}
	if !seenHeader {
		return nil, ErrMissingGroupSize
	}

	return in, nil
}

// ParseFile opens path and parses it.
func ParseFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open preferences")
	}
	defer f.Close()

	in, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return in, nil
}
