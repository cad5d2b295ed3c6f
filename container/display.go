package container

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// String renders the elements bottom to top as [a, b, c].
func (s *FixedStack[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, v := range s.vals {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprint(&b, v)
	}

	b.WriteByte(']')

	return b.String()
}

// Display prints the stack to stdout.
func (s *FixedStack[T]) Display() {
	_ = s.DisplayTo(os.Stdout)
}

func (s *FixedStack[T]) DisplayTo(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.String())

	return err
}

func (s *FixedStack[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}
