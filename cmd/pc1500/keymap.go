package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sharplab/pc1500emu/internal/keyboard"
)

// keyNames maps a config-file key name to the matrix key it presses.
var keyNames = map[string]keyboard.Key{
	"A": keyboard.A, "B": keyboard.B, "C": keyboard.C, "D": keyboard.D,
	"E": keyboard.E, "F": keyboard.F, "G": keyboard.G, "H": keyboard.H,
	"I": keyboard.I, "J": keyboard.J, "K": keyboard.K, "L": keyboard.L,
	"M": keyboard.M, "N": keyboard.N, "O": keyboard.O, "P": keyboard.P,
	"Q": keyboard.Q, "R": keyboard.R, "S": keyboard.S, "T": keyboard.T,
	"U": keyboard.U, "V": keyboard.V, "W": keyboard.W, "X": keyboard.X,
	"Y": keyboard.Y, "Z": keyboard.Z,

	"Zero": keyboard.Zero, "One": keyboard.One, "Two": keyboard.Two,
	"Three": keyboard.Three, "Four": keyboard.Four, "Five": keyboard.Five,
	"Six": keyboard.Six, "Seven": keyboard.Seven, "Eight": keyboard.Eight,
	"Nine": keyboard.Nine,

	"Enter": keyboard.Enter, "Space": keyboard.Space, "Dot": keyboard.Dot,
	"Minus": keyboard.Minus, "Plus": keyboard.Plus, "Equals": keyboard.Equals,
	"Slash": keyboard.Slash, "Asterisk": keyboard.Asterisk,
	"LeftParen": keyboard.LeftParen, "RightParen": keyboard.RightParen,
	"Quote": keyboard.Quote,

	"Up": keyboard.Up, "Down": keyboard.Down, "Left": keyboard.Left, "Right": keyboard.Right,

	"Shift": keyboard.Shift, "Control": keyboard.Control, "Mode": keyboard.Mode,
	"Cl": keyboard.Cl, "Rcl": keyboard.Rcl, "Rsv": keyboard.Rsv, "Sml": keyboard.Sml,
	"On": keyboard.On, "Off": keyboard.Off,

	"F1": keyboard.F1, "F2": keyboard.F2, "F3": keyboard.F3,
	"F4": keyboard.F4, "F5": keyboard.F5, "F6": keyboard.F6,
}

// ebitenKeyNames maps a config-file host key name to an ebiten key code.
// Only the subset the default bindings (and any sane override) need.
var ebitenKeyNames = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,

	"Zero": ebiten.Key0, "One": ebiten.Key1, "Two": ebiten.Key2,
	"Three": ebiten.Key3, "Four": ebiten.Key4, "Five": ebiten.Key5,
	"Six": ebiten.Key6, "Seven": ebiten.Key7, "Eight": ebiten.Key8,
	"Nine": ebiten.Key9,

	"Enter": ebiten.KeyEnter, "Space": ebiten.KeySpace, "Dot": ebiten.KeyPeriod,
	"Minus": ebiten.KeyMinus, "Plus": ebiten.KeyEqual, "Equals": ebiten.KeyEqual,
	"Slash": ebiten.KeySlash, "Asterisk": ebiten.Key8,
	"LeftParen": ebiten.Key9, "RightParen": ebiten.Key0,
	"Quote": ebiten.KeyApostrophe,

	"Up": ebiten.KeyArrowUp, "Down": ebiten.KeyArrowDown,
	"Left": ebiten.KeyArrowLeft, "Right": ebiten.KeyArrowRight,

	"Shift": ebiten.KeyShiftLeft, "Control": ebiten.KeyControlLeft,
	"Mode": ebiten.KeyTab, "Cl": ebiten.KeyDelete, "Rcl": ebiten.KeyBackspace,
	"Rsv": ebiten.KeyCapsLock, "Sml": ebiten.KeyAltLeft,
	"On": ebiten.KeyHome, "Off": ebiten.KeyEnd,

	"F1": ebiten.KeyF1, "F2": ebiten.KeyF2, "F3": ebiten.KeyF3,
	"F4": ebiten.KeyF4, "F5": ebiten.KeyF5, "F6": ebiten.KeyF6,
}

// defaultKeyMap binds each PC-1500 key to the identically-named (or, for
// punctuation/modifiers, the closest) host key.
func defaultKeyMap() map[string]string {
	m := make(map[string]string, len(keyNames))
	for name := range keyNames {
		if _, ok := ebitenKeyNames[name]; ok {
			m[name] = name
		}
	}
	return m
}
