package interp

import (
	"sort"
	"strings"

	"github.com/npratt/calc/internal/rng"
)

// add reads two integers and writes their sum.
func (i *Interpreter) add() error {
	a, err := i.readNumber()
	if err != nil {
		return err
	}
	b, err := i.readNumber()
	if err != nil {
		return err
	}
	return i.console.WriteLine(formatInt(a + b))
}

// median reads a count n followed by n integers and writes their median.
func (i *Interpreter) median() error {
	n, err := i.readNumber()
	if err != nil {
		return err
	}

	values := make([]int64, 0, max64(n, 0))
	for k := int64(0); k < n; k++ {
		v, err := i.readNumber()
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	if n <= 0 {
		return i.console.WriteLine("0")
	}
	sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })

	if n%2 == 1 {
		return i.console.WriteLine(formatInt(values[n/2]))
	}
	lo, hi := values[n/2-1], values[n/2]
	return i.console.WriteLine(formatHalfSum(lo + hi))
}

// rand reads a count and writes that many Park-Miller outputs seeded from
// the session's last random number, then advances the in-memory seed; the
// ClearCommand that Run calls after the command saves it.
func (i *Interpreter) rand() error {
	count, err := i.readNumber()
	if err != nil {
		return err
	}

	stream := rng.NewStream(i.state.LastRandomNumber)
	for k := int64(0); k < count; k++ {
		if err := i.console.WriteLine(formatInt(stream.Next())); err != nil {
			return err
		}
	}
	i.state.LastRandomNumber = stream.State()
	return nil
}

// help writes the command summary and enters a sub-loop until "end".
func (i *Interpreter) help() error {
	for _, l := range [...]string{msgHelpIntro, msgHelpCommands, msgHelpExitHint} {
		if err := i.console.WriteLine(l); err != nil {
			return err
		}
	}

	for {
		line, err := i.console.ReadLine()
		if err != nil {
			return err
		}
		cmd := strings.TrimSpace(line)

		switch cmd {
		case "end":
			return nil
		case "add":
			if err := i.writeHelpEntry(msgHelpAdd); err != nil {
				return err
			}
		case "median":
			if err := i.writeHelpEntry(msgHelpMedian); err != nil {
				return err
			}
		case "rand":
			if err := i.writeHelpEntry(msgHelpRand); err != nil {
				return err
			}
		default:
			if err := i.console.WriteLine(msgHelpUnknown); err != nil {
				return err
			}
			if err := i.writeHelpEntry(msgHelpCommands); err != nil {
				return err
			}
		}
	}
}

func (i *Interpreter) writeHelpEntry(line string) error {
	if err := i.console.WriteLine(line); err != nil {
		return err
	}
	return i.console.WriteLine(msgHelpExitHint)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
