package heightmap

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// initialLineBuffer is the scanner's starting buffer; it grows as needed.
const initialLineBuffer = 64 * 1024

// Read consumes r fully, one row of digits per line, and builds a Grid.
// Lines may be arbitrarily wide. Trailing carriage returns are stripped.
// Blank lines at the end of the stream are ignored; a blank line followed by
// another row is kept as an empty row and fails with ErrNonRectangular.
// Construction errors keep their sentinel (errors.Is still matches
// ErrMalformedInput); read failures are wrapped with the line number.
func Read(r io.Reader) (*Grid, error) {
	var rows []string
	blanks := 0 // blank lines seen since the last non-blank row
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt32)
	line := 0
	for s.Scan() {
		line++
		row := strings.TrimRight(s.Text(), "\r")
		if row == "" {
			blanks++
			continue
		}
		for ; blanks > 0; blanks-- {
			rows = append(rows, "")
		}
		rows = append(rows, row)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "heightmap: reading line %d", line+1)
	}

	return FromRows(rows)
}
