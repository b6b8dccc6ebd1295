// Package cli plays hangman over plain line-oriented streams.
// It serves terminals without full-screen support and scripted input.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Commands understood at the guess prompt besides single letters.
const (
	cmdQuit    = "quit"
	cmdRestart = "restart"
)

// Options configures a line-mode session.
type Options struct {
	Words           []string
	MaxWrongGuesses int
	PackTitle       string
	Recorder        *storage.Recorder // Optional
	Logger          *log.Logger       // Optional
}

// styles holds the renderer-bound styles for one output stream.
type styles struct {
	title  lipgloss.Style
	word   lipgloss.Style
	wrong  lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	notice lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		word:   r.NewStyle().Bold(true),
		wrong:  r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("1")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
		good:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		bad:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		notice: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Session is a line-mode game bound to an input and output stream.
type Session struct {
	game   *hangman.Game
	opts   Options
	in     *bufio.Scanner
	out    io.Writer
	st     styles
	logger *log.Logger
	inRun  bool

	// lines is fed by readLines so prompts can also wait on ctx.
	lines   chan string
	stop    chan struct{}
	readErr error // Set before lines is closed
}

// NewSession creates a line-mode session.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   hangman.New(opts.Words, hangman.WithMaxWrongGuesses(opts.MaxWrongGuesses)),
		opts:   opts,
		in:     bufio.NewScanner(in),
		out:    out,
		st:     newStyles(out),
		logger: logger,
		lines:  make(chan string),
		stop:   make(chan struct{}),
	}
}

// Run plays until the input ends, the player quits, or ctx is cancelled.
// An unfinished run with progress is recorded as abandoned.
// A Session can be run once.
func (s *Session) Run(ctx context.Context) error {
	go s.readLines()
	defer close(s.stop)
	defer s.abandon()

	title := "H A N G M A N"
	if s.opts.PackTitle != "" {
		title += "  ·  " + s.opts.PackTitle
	}
	s.println(s.st.title.Render(title))
	s.println(s.st.dim.Render(`Type a letter and press Enter. "restart" starts over, "quit" leaves.`))

	if s.game.Phase() == hangman.PhaseAllLevelsComplete {
		return endOfInput(s.dialog(ctx, hangman.SignalAllLevelsComplete))
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printBoard()
		line, err := s.prompt(ctx, "Guess: ")
		if err != nil {
			return endOfInput(err)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdRestart:
			s.abandon()
			s.game.ResetGame()
			s.println(s.st.notice.Render("Starting over."))
			continue
		}

		done, err := s.guess(ctx, line)
		if err != nil {
			return endOfInput(err)
		}
		if done {
			return nil
		}
	}
}

// endOfInput treats the input running out as a normal end of session.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// guess applies one line of input. It returns done when the session should end.
func (s *Session) guess(ctx context.Context, line string) (done bool, err error) {
	if utf8.RuneCountInString(line) != 1 {
		s.println(s.st.notice.Render("Enter a single letter."))
		return false, nil
	}
	r, _ := utf8.DecodeRuneInString(line)
	if !unicode.IsLetter(r) {
		s.println(s.st.notice.Render("Only letters can be guessed."))
		return false, nil
	}

	out, ok := s.game.GuessLetter(line)
	if !ok {
		s.println(s.st.notice.Render(fmt.Sprintf("You already tried %s.", strings.ToUpper(line))))
		return false, nil
	}
	s.inRun = true
	s.logger.Debug("guess", "letter", out.Letter, "kind", out.Kind, "score", out.Score)

	switch out.Kind {
	case hangman.KindCorrect:
		s.println(s.st.good.Render(fmt.Sprintf("%s is in the word (+1)", out.Letter)))
	case hangman.KindWrong:
		s.println(s.st.bad.Render(fmt.Sprintf("%s is not in the word (-1)", out.Letter)))
	}

	switch out.Signal {
	case hangman.SignalLevelComplete:
		s.println("The word was " + s.st.word.Render(s.game.CurrentWord()))
		if err := s.dialog(ctx, out.Signal); err != nil {
			return true, err
		}
		next := s.game.AdvanceLevel()
		if next.Signal == hangman.SignalAllLevelsComplete {
			s.record(storage.OutcomeCompleted)
			again, err := s.playAgain(ctx, next.Signal)
			return !again, err
		}

	case hangman.SignalGameOver:
		s.println("The word was " + s.st.word.Render(s.game.CurrentWord()))
		s.record(storage.OutcomeGameOver)
		again, err := s.playAgain(ctx, out.Signal)
		return !again, err
	}

	return false, nil
}

// playAgain shows the signal and resets the game when the player agrees.
func (s *Session) playAgain(ctx context.Context, sig hangman.Signal) (bool, error) {
	if err := s.dialog(ctx, sig); err != nil {
		return false, err
	}
	line, err := s.prompt(ctx, "Play again? [Y/n] ")
	if err != nil {
		return false, err
	}
	if strings.HasPrefix(strings.ToLower(line), "n") {
		return false, nil
	}
	s.game.ResetGame()
	return true, nil
}

// dialog prints a signal and waits for Enter after a level is complete.
func (s *Session) dialog(ctx context.Context, sig hangman.Signal) error {
	style := s.st.good
	if sig == hangman.SignalGameOver {
		style = s.st.bad
	}
	s.println("")
	s.println(style.Render("== " + sig.Title() + " =="))
	s.println(sig.Message())
	if sig == hangman.SignalAllLevelsComplete || sig == hangman.SignalGameOver {
		return nil
	}
	_, err := s.prompt(ctx, s.st.dim.Render("Press Enter to continue"))
	return err
}

func (s *Session) printBoard() {
	snap := s.game.Snapshot()

	letters := strings.Split(snap.Display, "")
	wrong := "-"
	if len(snap.WrongGuesses) > 0 {
		parts := make([]string, len(snap.WrongGuesses))
		for i, g := range snap.WrongGuesses {
			parts[i] = s.st.wrong.Render(g)
		}
		wrong = strings.Join(parts, " ")
	}

	s.println("")
	s.println(s.st.dim.Render(fmt.Sprintf("Level %d/%d   Score %d   Guesses left %d",
		snap.Level, snap.LevelCount, snap.Score, snap.RemainingGuesses)))
	s.println("Word:  " + s.st.word.Render(strings.Join(letters, " ")))
	s.println("Wrong: " + wrong)
}

// prompt writes label and waits for one trimmed line. It returns io.EOF at
// end of input and ctx.Err() when ctx is cancelled first.
func (s *Session) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(s.out, label)
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.out)
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			fmt.Fprintln(s.out)
			if s.readErr != nil {
				return "", s.readErr
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// readLines scans the input until it ends or the session stops.
// A pending Scan cannot be interrupted, so the goroutine may outlive Run
// until the reader returns.
func (s *Session) readLines() {
	defer close(s.lines)
	for s.in.Scan() {
		select {
		case s.lines <- s.in.Text():
		case <-s.stop:
			return
		}
	}
	s.readErr = s.in.Err()
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) record(outcome string) {
	if s.opts.Recorder != nil {
		s.opts.Recorder.Record(s.game.Snapshot(), outcome)
	}
	s.inRun = false
}

func (s *Session) abandon() {
	if s.inRun {
		s.record(storage.OutcomeAbandoned)
	}
}

// Snapshot returns the game state, mainly for tests.
func (s *Session) Snapshot() hangman.Snapshot {
	return s.game.Snapshot()
}

// Run plays a line-mode session over in and out.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	return NewSession(in, out, opts).Run(ctx)
}
