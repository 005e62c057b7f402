package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/sharplab/pc1500emu/internal/display"
	"github.com/sharplab/pc1500emu/internal/keyboard"
	"github.com/sharplab/pc1500emu/internal/system"
)

// binding pairs one host key with the PC-1500 matrix key it drives.
type binding struct {
	host ebiten.Key
	pc   keyboard.Key
}

// App is the interactive ebiten.Game, grounded on the teacher's
// internal/ui.App but without audio, save states, or cartridge menus: the
// PC-1500 core has none of those concerns.
type App struct {
	cfg      Config
	m        *system.Machine
	tex      *ebiten.Image
	bindings []binding
	paused   bool
}

// NewApp builds the bindings table from cfg.Keys and sizes the window.
func NewApp(cfg Config, m *system.Machine) *App {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(display.Width*cfg.Scale, display.Height*cfg.Scale)

	a := &App{cfg: cfg, m: m}
	for pcName, hostName := range cfg.Keys {
		pcKey, ok := keyByName(pcName)
		if !ok {
			continue
		}
		hostKey, ok := ebitenKeyByName(hostName)
		if !ok {
			continue
		}
		a.bindings = append(a.bindings, binding{host: hostKey, pc: pcKey})
	}
	return a
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyF1) {
		a.paused = !a.paused
	}

	for _, b := range a.bindings {
		if ebiten.IsKeyPressed(b.host) {
			a.m.Press(b.pc)
		} else {
			a.m.Release(b.pc)
		}
	}

	if !a.paused {
		a.m.StepFrame()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(display.Width, display.Height)
	}
	d := a.m.Display()
	a.tex.WritePixels(d.RGBA()[:])
	screen.DrawImage(a.tex, nil)

	y := 2
	for sym, name := range annunciatorNames {
		if d.SymbolOn(sym) {
			ebitenutil.DebugPrintAt(screen, name, 2, y)
			y += 8
		}
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return display.Width, display.Height }

var annunciatorNames = map[display.Symbol]string{
	display.Busy:    "BUSY",
	display.Shift:   "SHIFT",
	display.Run:     "RUN",
	display.Def:     "DEF",
	display.Battery: "",
}

func keyByName(name string) (keyboard.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

func ebitenKeyByName(name string) (ebiten.Key, bool) {
	k, ok := ebitenKeyNames[name]
	return k, ok
}
