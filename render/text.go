// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/affinity/grouping"
)

// WriteText writes p in the plain-text layout.
func WriteText(w io.Writer, p *grouping.Partition) error {
	if p == nil {
		return errors.New("render: nil partition")
	}
	bw := bufio.NewWriter(w)
	for _, g := range p.Groups {
		for _, name := range g.Names {
			bw.WriteString(name)
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	for _, name := range p.OutlierNames {
		bw.WriteString(name)
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "write partition")
}
