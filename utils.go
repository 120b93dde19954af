package main

import "github.com/AllenDang/giu"

func newWindow(m *giu.MasterWindow, title string) *giu.WindowWidget {
	// get size
	mw, mh := m.GetSize()

	// create window covering the master window
	win := giu.Window(title)
	win.Pos(0, 0)
	win.Size(float32(mw), float32(mh))

	return win
}
