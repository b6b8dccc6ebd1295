package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Minimum screen size for the board.
const (
	minBoardW = 40
	minBoardH = 16
)

// gallows is the empty scaffold. The figure is drawn on top of it.
var gallows = []string{
	"  ┌───┐",
	"      │",
	"      │",
	"      │",
	"      │",
	"      │",
	"══════╧═",
}

// figurePart is one piece of the hanged figure, relative to the scaffold.
type figurePart struct {
	x, y int
	r    rune
}

// figure lists the pieces in the order they appear.
var figure = []figurePart{
	{2, 1, '│'}, // rope
	{2, 2, 'O'}, // head
	{2, 3, '│'}, // body
	{1, 3, '/'}, // left arm
	{3, 3, '\\'},
	{1, 4, '/'}, // left leg
	{3, 4, '\\'},
}

// BoardView is everything the board needs for one frame.
type BoardView struct {
	Snap      hangman.Snapshot
	PackTitle string
	Last      hangman.Outcome // Most recent accepted guess
	Flash     bool            // Highlight Last.Letter
	Dialog    hangman.Signal  // SignalNone when no dialog is open
}

// DrawBoard draws the whole game screen into dst.
func DrawBoard(dst *core.Screen, v BoardView) {
	dst.Clear()

	if dst.Width() < minBoardW || dst.Height() < minBoardH {
		drawTooSmall(dst)
		return
	}

	bounds := dst.Bounds()

	// Title
	dst.SetStyle(ColorTitle, core.AttrBold)
	title := "H A N G M A N"
	if v.PackTitle != "" {
		title += "  ·  " + v.PackTitle
	}
	dst.DrawTextCentered(0, title)
	dst.SetStyle(core.ColorGray, core.AttrNone)
	dst.DrawHLine(0, 1, bounds.W, '─')

	drawHUD(dst, v.Snap)

	// Gallows on the left, word and guesses on the right
	art := core.NewRect(4, 4, 8, len(gallows))
	drawGallows(dst, art, figureParts(len(v.Snap.WrongGuesses), v.Snap.MaxWrongGuesses))

	right := core.NewRect(art.Right()+2, art.Y, bounds.W-art.Right()-4, art.H)
	drawWord(dst, right, v)
	drawWrongGuesses(dst, right, v)

	// Footer hint
	dst.SetStyle(core.ColorGray, core.AttrNone)
	hint := "Type a letter to guess"
	if v.Snap.Phase != hangman.PhasePlaying {
		hint = "Press Enter to continue"
	}
	dst.DrawTextCentered(art.Bottom()+2, hint)

	if v.Dialog != hangman.SignalNone {
		drawDialog(dst, v.Dialog)
	}
	dst.ResetStyle()
}

func drawHUD(dst *core.Screen, snap hangman.Snapshot) {
	dst.SetStyle(core.ColorCyan, core.AttrNone)
	level := fmt.Sprintf("Level: %d", snap.Level)
	if snap.Phase == hangman.PhaseAllLevelsComplete {
		level = fmt.Sprintf("Level: %d (done)", snap.LevelCount)
	} else if snap.LevelCount > 0 {
		level = fmt.Sprintf("Level: %d/%d", snap.Level, snap.LevelCount)
	}
	hud := fmt.Sprintf("%s    Score: %d    Guesses left: %d", level, snap.Score, snap.RemainingGuesses)
	dst.DrawTextCentered(2, hud)
}

// figureParts maps the wrong-guess count onto the number of figure pieces,
// so the figure is complete exactly when the game is lost.
func figureParts(wrong, maxWrong int) int {
	if maxWrong <= 0 || wrong <= 0 {
		return 0
	}
	if wrong >= maxWrong {
		return len(figure)
	}
	return core.Clamp(wrong*len(figure)/maxWrong, 1, len(figure)-1)
}

func drawGallows(dst *core.Screen, r core.Rect, parts int) {
	dst.SetStyle(core.ColorGray, core.AttrNone)
	for i, line := range gallows {
		dst.DrawText(r.X, r.Y+i, line)
	}

	color := core.ColorWhite
	if parts == len(figure) {
		color = core.ColorBrightRed
	}
	dst.SetStyle(color, core.AttrBold)
	for _, p := range figure[:parts] {
		dst.Set(r.X+p.x, r.Y+p.y, p.r)
	}
}

func drawWord(dst *core.Screen, r core.Rect, v BoardView) {
	display := v.Snap.Display
	if display == "" {
		dst.SetStyle(core.ColorBrightGreen, core.AttrBold)
		dst.DrawTextIn(r, r.Y+1, "All words guessed!")
		return
	}

	letters := strings.Split(display, "")
	text := strings.Join(letters, " ")
	x := r.X + (r.W-len([]rune(text)))/2
	y := r.Y + 1

	for i, l := range letters {
		switch {
		case v.Flash && v.Last.Kind == hangman.KindCorrect && l == v.Last.Letter:
			dst.SetStyle(core.ColorBrightYellow, core.AttrBold|core.AttrReverse)
		case l == hangman.Placeholder:
			dst.SetStyle(core.ColorGray, core.AttrNone)
		case v.Snap.Revealed():
			dst.SetStyle(core.ColorBrightGreen, core.AttrBold)
		default:
			dst.SetStyle(core.ColorBrightWhite, core.AttrBold)
		}
		dst.DrawText(x+i*2, y, l)
	}
}

func drawWrongGuesses(dst *core.Screen, r core.Rect, v BoardView) {
	y := r.Y + 4
	label := "Wrong: "
	x := r.X + (r.W-len(label)-2*v.Snap.MaxWrongGuesses)/2

	dst.SetStyle(core.ColorGray, core.AttrNone)
	dst.DrawText(x, y, label)
	x += len(label)

	if len(v.Snap.WrongGuesses) == 0 {
		dst.DrawText(x, y, "-")
		return
	}

	for i, g := range v.Snap.WrongGuesses {
		attr := core.AttrStrikethrough
		color := core.ColorRed
		if v.Flash && v.Last.Kind == hangman.KindWrong && i == len(v.Snap.WrongGuesses)-1 {
			color = core.ColorBrightRed
			attr |= core.AttrBold
		}
		dst.SetStyle(color, attr)
		dst.DrawText(x+i*2, y, g)
	}
}

func drawDialog(dst *core.Screen, sig hangman.Signal) {
	title, msg := sig.Title(), sig.Message()
	w := max(len(msg), len(title)) + 6
	box := dst.Bounds().Centered(w, 7)

	dst.SetStyle(core.ColorDefault, core.AttrNone)
	dst.DrawRect(box, ' ')

	frame := core.ColorYellow
	switch sig {
	case hangman.SignalGameOver:
		frame = core.ColorRed
	case hangman.SignalAllLevelsComplete:
		frame = core.ColorBrightGreen
	}
	dst.SetStyle(frame, core.AttrNone)
	dst.DrawBox(box)

	dst.SetStyle(frame, core.AttrBold)
	dst.DrawTextIn(box, box.Y+1, title)
	dst.SetStyle(core.ColorBrightWhite, core.AttrNone)
	dst.DrawTextIn(box, box.Y+3, msg)
	dst.SetStyle(core.ColorCyan, core.AttrReverse)
	dst.DrawTextIn(box, box.Y+5, " Enter: OK ")
}

func drawTooSmall(dst *core.Screen) {
	dst.SetStyle(core.ColorYellow, core.AttrNone)
	msg := fmt.Sprintf("Terminal too small (%dx%d)", minBoardW, minBoardH)
	dst.DrawText(0, 0, msg)
	dst.ResetStyle()
}
