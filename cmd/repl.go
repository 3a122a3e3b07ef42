package cmd

import (
	"bufio"
	"devcalc/history"
	"devcalc/logging"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const replPrompt = "> "

const replHelp = `Enter an expression to evaluate it.

:history   list previous expressions (1 is the most recent)
!!         evaluate the most recent expression again
!N         evaluate expression N from the history again
:help      display this text
:quit      leave the REPL`

// runREPL runs an interactive session reading expressions from in until the
// input ends or the user quits.
func (s *session) runREPL(in io.Reader) error {
	h := history.New(s.cfg.HistorySize)

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, replPrompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}

		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case line == ":help":
			fmt.Fprintln(s.out, replHelp)
			continue
		case line == ":history":
			for i, entry := range h.Entries() {
				fmt.Fprintf(s.out, "%3d  %s\n", i+1, entry)
			}
			continue
		case strings.HasPrefix(line, "!"):
			entry, ok := recall(h, line[1:])
			if !ok {
				logging.PrintWarningMessage("History", fmt.Sprintf("no history entry `%s`", line[1:]))
				continue
			}

			fmt.Fprintln(s.out, entry)
			line = entry
		}

		h.Add(line)
		s.evaluate(line)
	}
}

// recall looks up the history entry named by ref: `!` for the most recent entry
// or a 1-based entry number.
func recall(h *history.History, ref string) (string, bool) {
	if ref == "!" {
		return h.Last()
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return "", false
	}

	return h.Get(n)
}
