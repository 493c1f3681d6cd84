package handoff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"github.com/clktmr/socfpga/hps/clkmgr"
)

// ParseText reads a configuration in text form. Each line assigns a value to
// a configuration word:
//
//	# main PLL, 25 MHz * 80
//	main.pllglob 0x00000103
//	main.pllm    80
//	osc          25000000
//
// Words which aren't assigned are zero.
func ParseText(r io.Reader) (*clkmgr.Config, error) {
	c := new(clkmgr.Config)
	seen := make(map[string]bool)

	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		words, err := shellwords.SplitPosix(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		for i, w := range words {
			if strings.HasPrefix(w, "#") {
				words = words[:i]
				break
			}
		}
		if len(words) == 0 {
			continue
		}
		if len(words) != 2 {
			return nil, fmt.Errorf("line %d: expected name and value", n)
		}

		name := strings.ToLower(words[0])
		ptr := lookup(name)
		if ptr == nil {
			return nil, fmt.Errorf("line %d: unknown name %q", n, words[0])
		}
		if seen[name] {
			return nil, fmt.Errorf("line %d: duplicate %q", n, words[0])
		}
		seen[name] = true

		v, err := strconv.ParseUint(words[1], 0, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		*ptr(c) = uint32(v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func lookup(name string) func(*clkmgr.Config) *uint32 {
	for i := range entries {
		if entries[i].name == name {
			return entries[i].ptr
		}
	}
	return nil
}

// WriteText writes c in the form read by ParseText.
func WriteText(w io.Writer, c *clkmgr.Config) error {
	for i := range entries {
		e := &entries[i]
		var err error
		if strings.Contains(e.name, ".") {
			_, err = fmt.Fprintf(w, "%-16s 0x%08x\n", e.name, *e.ptr(c))
		} else {
			_, err = fmt.Fprintf(w, "%-16s %d\n", e.name, *e.ptr(c))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
