package tui

import (
	"github.com/gdamore/tcell/v2"

	"vecsketch/core"
	"vecsketch/editor"
)

// editorKey converts a tcell key event to the editor's key model. Terminals
// deliver Ctrl+Z as a control code and report Meta as Alt.
func editorKey(ev *tcell.EventKey) editor.Key {
	mods := ev.Modifiers()
	k := editor.Key{
		Ctrl: mods&tcell.ModCtrl != 0,
		Meta: mods&(tcell.ModMeta|tcell.ModAlt) != 0,
	}

	switch ev.Key() {
	case tcell.KeyRune:
		k.Code = editor.KeyRune
		k.Rune = ev.Rune()
	case tcell.KeyCtrlZ:
		k.Code = editor.KeyRune
		k.Rune = 'z'
		k.Ctrl = true
	case tcell.KeyEscape:
		k.Code = editor.KeyEscape
	case tcell.KeyDelete:
		k.Code = editor.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.Code = editor.KeyBackspace
	case tcell.KeyEnter:
		k.Code = editor.KeyEnter
	default:
		k.Code = editor.KeyOther
	}
	return k
}

// toolKeys selects a shape with a single letter.
var toolKeys = map[rune]core.ShapeKind{
	'b': core.Bezier,
	'l': core.Line,
	'r': core.Rectangle,
	'c': core.Circle,
}

func (a *App) handleDrawKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		a.quit = true
		return
	}

	k := editorKey(ev)
	if a.handleEditorKey(k, false) {
		return
	}

	if k.Code != editor.KeyRune || k.Ctrl || k.Meta {
		return
	}

	if kind, ok := toolKeys[k.Rune]; ok {
		a.session.SelectKind(kind)
		a.setStatus("tool: " + kind.String())
		return
	}

	switch k.Rune {
	case 'q':
		a.quit = true
	case ':':
		a.mode = ModeCommand
		a.command = a.command[:0]
	case 'u':
		a.undo()
	case 'w':
		a.export("", "")
	case 'g':
		a.panel.ToggleGrid()
		a.rebuildGrid()
	case 's':
		a.panel.ToggleSnap()
	case '+', '=':
		a.panel.AdjustGridSize(1)
		a.rebuildGrid()
	case '-':
		a.panel.AdjustGridSize(-1)
		a.rebuildGrid()
	case 'f':
		a.panel.ToggleFill()
		a.session.Restyle()
	case '[':
		a.panel.AdjustStrokeWidth(-1)
		a.session.Restyle()
	case ']':
		a.panel.AdjustStrokeWidth(1)
		a.session.Restyle()
	}
}

func (a *App) handleCommandKey(ev *tcell.EventKey) {
	k := editorKey(ev)

	switch k.Code {
	case editor.KeyEscape:
		a.leaveCommand()
		return
	case editor.KeyEnter:
		line := string(a.command)
		a.leaveCommand()
		a.runCommand(line)
		return
	case editor.KeyBackspace:
		if n := len(a.command); n > 0 {
			a.command = a.command[:n-1]
		} else {
			a.leaveCommand()
		}
		return
	}

	if k.IsPrintable() {
		a.command = append(a.command, k.Rune)
		return
	}

	// The command line has focus, so Delete and Backspace never clear here
	a.handleEditorKey(k, true)
}

// handleEditorKey runs the editor binding for k, if any, and reports it.
func (a *App) handleEditorKey(k editor.Key, textFocused bool) bool {
	if editor.ResolveKey(k, textFocused) == editor.ActionUndo {
		a.undo()
		return true
	}
	committed := a.session.History().Len()
	action := a.session.HandleKey(k, textFocused)
	if action == editor.ActionNone {
		return false
	}
	a.reportAction(action, committed)
	return true
}

func (a *App) leaveCommand() {
	a.mode = ModeDraw
	a.command = a.command[:0]
}

func (a *App) undo() {
	if shape, ok := a.session.Undo(); ok {
		a.setStatus("undo " + shape.Kind.String())
		return
	}
	a.setStatus("nothing to undo")
}

// reportAction sets the status after a key action; committed is the
// history length before the action ran.
func (a *App) reportAction(action editor.Action, committed int) {
	switch action {
	case editor.ActionClear:
		a.setStatus("canvas cleared")
	case editor.ActionCancel:
		a.setStatus("")
	case editor.ActionFinalize:
		shapes := a.session.History().Snapshot()
		if len(shapes) > committed {
			a.setStatus(shapes[len(shapes)-1].Kind.String() + " committed")
		}
	}
}
