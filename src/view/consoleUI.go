package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"sparselife/src/universe"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

type ConsoleUI struct {
	s          universe.Simulator
	g          *gocui.Gui
	k          []keyBindings
	cursor     universe.Coordinate
	fillers    map[universe.CellState]string
	deadFiller string
	message    string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}

	//per-rule cell glyphs, the palettes follow the rule families' usual
	//conventions (firing green, recruiting yellow, electron heads red)
	ruleFillers = map[string]map[universe.CellState]string{
		"life": {
			universe.LifeAlive: aurora.Green("█").BgBrightGreen().String(),
		},
		"briansbrain": {
			universe.BrainOn:         aurora.Green("█").String(),
			universe.BrainRecruiting: aurora.Yellow("▒").String(),
		},
		"wireworld": {
			universe.WireworldWire: aurora.White("#").String(),
			universe.WireworldHead: aurora.Red("O").String(),
			universe.WireworldTail: aurora.Blue("o").String(),
		},
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.g.Mouse = true
	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{gocui.KeyArrowUp,
			"↑↓←→",
			"Move cursor",
			t.cmdCursorUp,
			""},
		{gocui.KeyArrowDown,
			"",
			"",
			t.cmdCursorDown,
			""},
		{gocui.KeyArrowLeft,
			"",
			"",
			t.cmdCursorLeft,
			""},
		{gocui.KeyArrowRight,
			"",
			"",
			t.cmdCursorRight,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Toggle cell",
			t.cmdToggle,
			""},
		{'n',
			"N",
			"Next step",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Clear",
			t.cmdClear,
			""},
		{'w',
			"W",
			"Settle with random",
			t.cmdSettleWithRandom,
			""},
		{'v',
			"V",
			"Save state",
			t.cmdSave,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle the cell",
			t.cmdMouseClick,
			"battlefield"},
	}
	for d := 0; d <= 9; d++ {
		digit := d
		t.k = append(t.k, keyBindings{
			rune('0' + d),
			"",
			"",
			func(_ *gocui.View) error { return t.stampByDigit(digit) },
			""})
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(s *universe.Simulation) {
	t.s = s
	t.fillers = ruleFillers[s.Rule().Name()]
	o := s.Options()
	t.cursor = universe.Coordinate{Y: o.Height / 2, X: o.Width / 2}
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("battlefield")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once now
		//this terminal driver allows to redraw only changed chars
		//there is an opportunity to speed up with a selective redraw
		v.Clear()

		u := t.s.Snapshot()
		mode := t.s.Status().RunningMode
		editing := mode == universe.RunningStateManual || mode == universe.RunningStateFinished

		crop := false
		maxW, maxH := v.Size()
		if u.Width > maxW || u.Height > maxH {
			crop = true
		}

		var b bytes.Buffer

		for y := 0; y < u.Height; y++ {
			//discard the data outside the view area
			if y >= maxH {
				break
			}
			//line feed char
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < u.Width; x++ {
				if x >= maxW {
					break
				}
				if editing && t.cursor.Y == y && t.cursor.X == x {
					b.WriteString(aurora.Colorize("X", aurora.MagentaFg).String())
					continue
				}
				if f, ok := t.fillers[u.Get(universe.Coordinate{Y: y, X: x})]; ok {
					b.WriteString(f)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.s.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Active Cells", "%v", s.ActiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
			if outcome := outcomeDescr(s); outcome != "" {
				_, _ = fmt.Fprintln(v, t.renderProp("Outcome", "%v", outcome))
			}
			if t.message != "" {
				_, _ = fmt.Fprintln(v, " "+t.message)
			}
		}
		return nil
	})
}

func outcomeDescr(s universe.Status) string {
	switch s.Outcome {
	case universe.Extinguished:
		return aurora.Colorize("life has died", aurora.RedFg).String()
	case universe.Cycled:
		return aurora.Colorize(fmt.Sprintf("repeats every %d generations", s.CycleLength), aurora.YellowFg).String()
	}
	return ""
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.s.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Rule", "%v", t.s.Rule().Name()))
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", c.Width, c.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", c.Interval))
			_, _ = fmt.Fprintln(v, t.renderProp("Iterations", "%v steps", c.MaxSteps))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Cellular automata simulation: "+t.s.Rule().Name()); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Battle Field"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
			b.WriteString(", ")
		}
		b.WriteString("\nPATTERNS: ")
		for i, name := range t.s.TemplateNames() {
			if i > 9 {
				break
			}
			if i != 0 {
				b.WriteString("  ")
			}
			b.WriteString(aurora.Green(fmt.Sprintf("%d", (i+1)%10)).String())
			b.WriteString(": ")
			b.WriteString(name)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) moveCursor(dy int, dx int) error {
	o := t.s.Options()
	t.cursor.Y = (t.cursor.Y + dy + o.Height) % o.Height
	t.cursor.X = (t.cursor.X + dx + o.Width) % o.Width
	t.renderField()
	return nil
}

func (t *ConsoleUI) stampByDigit(digit int) error {
	names := t.s.TemplateNames()
	idx := digit - 1
	if digit == 0 {
		idx = 9
	}
	if idx < 0 || idx >= len(names) {
		return nil
	}
	if err := t.s.StampTemplate(names[idx], t.cursor); err != nil {
		t.message = aurora.Red(err.Error()).String()
		t.renderStatus()
	}
	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdCursorUp(_ *gocui.View) error    { return t.moveCursor(-1, 0) }
func (t *ConsoleUI) cmdCursorDown(_ *gocui.View) error  { return t.moveCursor(1, 0) }
func (t *ConsoleUI) cmdCursorLeft(_ *gocui.View) error  { return t.moveCursor(0, -1) }
func (t *ConsoleUI) cmdCursorRight(_ *gocui.View) error { return t.moveCursor(0, 1) }

func (t *ConsoleUI) cmdToggle(_ *gocui.View) error {
	t.s.ToggleCell(t.cursor.Y, t.cursor.X)
	return nil
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.s.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.message = ""
	t.s.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.s.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.message = ""
	t.s.Clear()
	return nil
}

func (t *ConsoleUI) cmdSettleWithRandom(_ *gocui.View) error {
	t.s.SettleWithRandomData()
	return nil
}

func (t *ConsoleUI) cmdSave(_ *gocui.View) error {
	filename, err := t.s.SaveState()
	if err != nil {
		t.message = aurora.Red(err.Error()).String()
	} else {
		t.message = aurora.Green("saved to " + filename).String()
	}
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.cursor = universe.Coordinate{Y: cy, X: cx}
	t.s.ToggleCell(cy, cx)
	return nil
}
