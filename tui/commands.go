package tui

import (
	"fmt"
	"strconv"
	"strings"

	"vecsketch/core"
)

// runCommand executes a ':' command line.
func (a *App) runCommand(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	if err := a.execute(fields[0], fields[1:]); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) execute(name string, args []string) error {
	switch name {
	case "q", "quit":
		a.quit = true
	case "stroke":
		if len(args) != 1 {
			return fmt.Errorf("usage: stroke #rrggbb")
		}
		if err := a.panel.SetStrokeColor(args[0]); err != nil {
			return err
		}
		a.session.Restyle()
	case "fill":
		if len(args) != 1 {
			return fmt.Errorf("usage: fill #rrggbb|on|off")
		}
		switch args[0] {
		case "on", "off":
			if a.panel.Style().FillEnabled != (args[0] == "on") {
				a.panel.ToggleFill()
			}
		default:
			if err := a.panel.SetFillColor(args[0]); err != nil {
				return err
			}
		}
		a.session.Restyle()
	case "width":
		if len(args) != 1 {
			return fmt.Errorf("usage: width N")
		}
		w, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid width %q", args[0])
		}
		if err := a.panel.SetStrokeWidth(w); err != nil {
			return err
		}
		a.session.Restyle()
	case "grid":
		if len(args) != 1 {
			return fmt.Errorf("usage: grid N")
		}
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid grid size %q", args[0])
		}
		if err := a.panel.SetGridSize(size); err != nil {
			return err
		}
		a.rebuildGrid()
	case "snap":
		switch {
		case len(args) == 0:
			a.panel.ToggleSnap()
		case len(args) == 1 && (args[0] == "on" || args[0] == "off"):
			if a.panel.Snap() != (args[0] == "on") {
				a.panel.ToggleSnap()
			}
		default:
			return fmt.Errorf("usage: snap [on|off]")
		}
		a.setStatus("snap " + onOff(a.panel.Snap()))
	case "shape", "tool":
		if len(args) != 1 {
			return fmt.Errorf("usage: shape bezier|line|rectangle|circle")
		}
		kind, err := core.ParseShapeKind(args[0])
		if err != nil {
			return err
		}
		a.session.SelectKind(kind)
	case "undo":
		a.undo()
	case "clear":
		a.session.Clear()
		a.setStatus("canvas cleared")
	case "export", "w":
		var format, base string
		if len(args) > 0 {
			format = args[0]
		}
		if len(args) > 1 {
			base = args[1]
		}
		a.export(format, base)
	default:
		return fmt.Errorf("unknown command: %s", name)
	}
	return nil
}
