package textfit

import (
	"image/color"
	"strings"

	"github.com/danielgatis/go-ansicode"
)

var _ ansicode.Handler = (*printedText)(nil)

// printedText collects the runes a terminal would print for a byte stream.
// Cursor movement, erasure, modes and every other control function are
// dropped; REP (CSI b) repeats reach it as repeated Input calls.
type printedText struct {
	b strings.Builder
}

// decodePrinted runs text through an ANSI decoder and returns what it prints.
func decodePrinted(text string) string {
	h := &printedText{}
	// Decoder.Write never fails.
	_, _ = ansicode.NewDecoder(h).Write([]byte(text))
	return h.b.String()
}

// Input collects a printed rune.
func (h *printedText) Input(r rune) {
	h.b.WriteRune(r)
}

func (h *printedText) ApplicationCommandReceived(data []byte) {}
func (h *printedText) Backspace() {}
func (h *printedText) Bell() {}
func (h *printedText) CarriageReturn() {}
func (h *printedText) ClearLine(mode ansicode.LineClearMode) {}
func (h *printedText) ClearScreen(mode ansicode.ClearMode) {}
func (h *printedText) ClearTabs(mode ansicode.TabulationClearMode) {}
func (h *printedText) ClipboardLoad(clipboard byte, terminator string) {}
func (h *printedText) ClipboardStore(clipboard byte, data []byte) {}
func (h *printedText) ConfigureCharset(ansicode.CharsetIndex, ansicode.Charset) {}
func (h *printedText) Decaln() {}
func (h *printedText) DeleteChars(n int) {}
func (h *printedText) DeleteLines(n int) {}
func (h *printedText) DeviceStatus(n int) {}
func (h *printedText) EraseChars(n int) {}
func (h *printedText) Goto(y, x int) {}
func (h *printedText) GotoCol(n int) {}
func (h *printedText) GotoLine(n int) {}
func (h *printedText) HorizontalTabSet() {}
func (h *printedText) IdentifyTerminal(b byte) {}
func (h *printedText) InsertBlank(n int) {}
func (h *printedText) InsertBlankLines(n int) {}
func (h *printedText) LineFeed() {}
func (h *printedText) MoveBackward(n int) {}
func (h *printedText) MoveBackwardTabs(n int) {}
func (h *printedText) MoveDown(n int) {}
func (h *printedText) MoveDownCr(n int) {}
func (h *printedText) MoveForward(n int) {}
func (h *printedText) MoveForwardTabs(n int) {}
func (h *printedText) MoveUp(n int) {}
func (h *printedText) MoveUpCr(n int) {}
func (h *printedText) PopKeyboardMode(n int) {}
func (h *printedText) PopTitle() {}
func (h *printedText) PrivacyMessageReceived(data []byte) {}
func (h *printedText) PushKeyboardMode(mode ansicode.KeyboardMode) {}
func (h *printedText) PushTitle() {}
func (h *printedText) ReportKeyboardMode() {}
func (h *printedText) ReportModifyOtherKeys() {}
func (h *printedText) ResetColor(i int) {}
func (h *printedText) ResetState() {}
func (h *printedText) RestoreCursorPosition() {}
func (h *printedText) ReverseIndex() {}
func (h *printedText) SaveCursorPosition() {}
func (h *printedText) ScrollDown(n int) {}
func (h *printedText) ScrollUp(n int) {}
func (h *printedText) SetActiveCharset(n int) {}
func (h *printedText) SetColor(index int, c color.Color) {}
func (h *printedText) SetCursorStyle(style ansicode.CursorStyle) {}
func (h *printedText) SetDynamicColor(prefix string, index int, terminator string) {}
func (h *printedText) SetHyperlink(hyperlink *ansicode.Hyperlink) {}
func (h *printedText) SetKeyboardMode(ansicode.KeyboardMode, ansicode.KeyboardModeBehavior) {}
func (h *printedText) SetKeypadApplicationMode() {}
func (h *printedText) SetMode(mode ansicode.TerminalMode) {}
func (h *printedText) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys) {}
func (h *printedText) SetScrollingRegion(top, bottom int) {}
func (h *printedText) SetTerminalCharAttribute(ansicode.TerminalCharAttribute) {}
func (h *printedText) SetTitle(title string) {}
func (h *printedText) StartOfStringReceived(data []byte) {}
func (h *printedText) Substitute() {}
func (h *printedText) Tab(n int) {}
func (h *printedText) TextAreaSizeChars() {}
func (h *printedText) TextAreaSizePixels() {}
func (h *printedText) UnsetKeypadApplicationMode() {}
func (h *printedText) UnsetMode(mode ansicode.TerminalMode) {}
