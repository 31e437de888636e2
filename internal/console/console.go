// internal/console/console.go
//
// Line-oriented front end for a single game.
//
// Input, one command per line:
//   - a word: type its letters, then submit
//   - :type <letters>  type letters without submitting
//   - :enter           submit the pending letters
//   - :back            remove the last pending letter
//   - :hard            toggle hard mode
//   - :quit            leave (progress is kept by the caller)
//
// Board cells: [x] right, (x) misplaced, " x " wrong, " _ " empty.
// The console only ever changes the game through its mutators.

package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/cemysce/termle/internal/game"
	"github.com/cemysce/termle/internal/share"
	"github.com/cemysce/termle/internal/stats"
)

// Options configures a session.
type Options struct {
	Label string       // game number shown in the share text
	Style share.Style
	Stats *stats.Stats // printed when the game ends; may be nil
}

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

var congratulations = []string{"Genius", "Magnificent", "Impressive", "Splendid", "Great", "Phew"}

// Run plays g to completion or until input ends or :quit. The returned error
// is an I/O failure or a statistics invariant violation from the game.
func Run(in io.Reader, out io.Writer, g *game.Game, opts Options) error {
	w := &printer{out: out}
	w.board(g)
	if g.IsCompleted() {
		w.finish(g, opts)
		return w.err
	}
	w.keyboard(g)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		switch {
		case line == "":
			continue
		case cmd == ":quit":
			w.printf("Bye.\n")
			return w.err
		case cmd == ":back":
			if !g.RemoveLastLetter() {
				w.printf("Nothing to remove\n")
			}
			w.pending(g)
		case cmd == ":hard":
			if g.ToggleHardMode() {
				w.printf("Hard mode %s\n", onOff(g.HardMode()))
			} else {
				w.printf("Hard mode can only be enabled at the start of a game\n")
			}
		case cmd == ":type":
			if r, ok := typeLetters(g, strings.TrimSpace(arg)); !ok {
				w.printf("Cannot type %q\n", r)
			}
			w.pending(g)
		case cmd == ":enter":
			done, err := submit(w, g, opts)
			if err != nil || done {
				return err
			}
		case strings.HasPrefix(cmd, ":"):
			w.printf("Unknown command %s\n", cmd)
		default:
			clearPending(g)
			if _, ok := typeLetters(g, line); !ok {
				clearPending(g)
				w.printf("Not in word list\n")
				break
			}
			done, err := submit(w, g, opts)
			if err != nil || done {
				return err
			}
		}
		if w.err != nil {
			return w.err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return w.err
}

// submit reports whether the game ended.
func submit(w *printer, g *game.Game, opts Options) (bool, error) {
	res, err := g.SubmitPending()
	if err != nil {
		return true, err
	}
	w.outcome(g, res)
	if g.IsCompleted() {
		w.finish(g, opts)
		return true, w.err
	}
	return false, w.err
}

// typeLetters stops at the first letter the game refuses and returns it.
func typeLetters(g *game.Game, letters string) (rune, bool) {
	for _, r := range letters {
		if !g.AppendLetter(r) {
			return r, false
		}
	}
	return 0, true
}

func clearPending(g *game.Game) {
	for g.RemoveLastLetter() {
	}
}

// printer keeps the first write error so callers can check once.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

func cell(letter byte, s game.LetterStatus) string {
	switch s {
	case game.StatusRight:
		return "[" + string(letter) + "]"
	case game.StatusMisplaced:
		return "(" + string(letter) + ")"
	default:
		return " " + string(letter) + " "
	}
}

func (p *printer) board(g *game.Game) {
	guesses := g.Guesses()
	for _, gs := range guesses {
		row := make([]string, len(gs.Word))
		for i := range gs.Word {
			row[i] = cell(gs.Word[i], gs.Statuses[i])
		}
		p.printf("%s\n", strings.Join(row, ""))
	}
	for i := len(guesses); i < g.MaxGuesses(); i++ {
		p.printf("%s\n", strings.Repeat(" _ ", g.WordLength()))
	}
}

func (p *printer) keyboard(g *game.Game) {
	for _, row := range keyboardRows {
		keys := lo.Map([]rune(row), func(r rune, _ int) string {
			s := g.LetterStatus(r)
			if s == game.StatusWrong {
				return " . "
			}
			return cell(byte(r), s)
		})
		p.printf("%s\n", strings.Join(keys, ""))
	}
}

func (p *printer) pending(g *game.Game) {
	p.printf("> %s\n", g.Pending())
}

func (p *printer) outcome(g *game.Game, res game.Result) {
	if res.Outcome.Valid() {
		p.board(g)
		if !g.IsCompleted() {
			p.keyboard(g)
		}
		return
	}
	switch res.Outcome {
	case game.OutcomeInvalidTooShort:
		p.printf("Not enough letters\n")
		p.pending(g)
	case game.OutcomeInvalid:
		p.printf("Not in word list\n")
		p.pending(g)
	case game.OutcomeHardModeMissingRight:
		p.printf("%s letter must be %c\n", ordinal(res.Position+1), upper(res.Letter))
		p.pending(g)
	case game.OutcomeHardModeMissingMisplace:
		p.printf("Guess must contain %c\n", upper(res.Letter))
		p.pending(g)
	}
}

func (p *printer) finish(g *game.Game, opts Options) {
	if g.IsWon() {
		n := len(g.Guesses())
		p.printf("%s\n", congratulations[min(n, len(congratulations))-1])
	} else if answer, ok := g.Answer(); ok {
		p.printf("%s\n", strings.ToUpper(answer))
	}
	if st := opts.Stats; st != nil {
		p.printf("\nPlayed %d  Win %% %d  Current streak %d  Max streak %d\n",
			st.Completed(), st.PercentWon(), st.CurrentStreak(), st.MaxStreak())
		dist := st.Distribution()
		for _, b := range st.Buckets() {
			p.printf("%2d %s %d\n", b, strings.Repeat("#", dist[b]), dist[b])
		}
	}
	p.printf("\n%s\n", share.Text(g, opts.Label, opts.Style))
}

func ordinal(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return fmt.Sprintf("%dth", n)
	case n%10 == 1:
		return fmt.Sprintf("%dst", n)
	case n%10 == 2:
		return fmt.Sprintf("%dnd", n)
	case n%10 == 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

func upper(r rune) rune { return []rune(strings.ToUpper(string(r)))[0] }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
