package banner

import (
	"fmt"
	"io"
	"strings"
)

const height = 5

// Fprint writes a five-row asterisk box with the message centered on the
// middle row.
func Fprint(w io.Writer, message string) {
	width := len(message) + 4

	var b strings.Builder
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			switch {
			case i == 0 || i == height-1 || j == 0 || j == width-1:
				b.WriteByte('*')
			case i == height/2 && message != "" && j == (width-len(message))/2:
				b.WriteString(message)
				j += len(message) - 1
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	fmt.Fprint(w, b.String())
}
