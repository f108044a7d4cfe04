/*
Package gui provides a retained-mode desktop widget toolkit drawn into a
software framebuffer.

# Overview

Applications build a tree of widgets once, wire callbacks, and hand the
tree to an App. Each frame the App drains platform events from the gfx
window, dispatches them through the tree, lays the tree out, and paints
it. Widgets keep their own state between frames; the toolkit never
rebuilds the tree.

Rendering targets the gfx framebuffer, so the same widget code runs
against the GLFW backend, the raw X11 backend, or the mock backend used
in tests.

# Quick Start

	win, err := gfx.New(glfw.New(),
	    gfx.WithTitle("demo"),
	    gfx.WithSize(800, 600))
	if err != nil {
	    log.Fatal(err)
	}

	root := gui.NewVBox()
	root.Spacing = 8

	btn := gui.NewButton("Click me")
	btn.OnClick = func(gui.Widget) { fmt.Println("clicked") }
	root.AddChild(btn)

	app := gui.NewApp(win, root)
	app.Run()

See example/main.go for a fuller application with docking, a toolbar,
a code editor, and keyboard shortcuts.

# Widgets

Containers: VBox, HBox, Flex, Grid, Dock, ScrollView, Dialog.
Controls: Label, Button, Checkbox, RadioButton, Slider, ProgressBar,
TextInput, CodeEditor, ListBox, Dropdown, MenuBar, Toolbar, StatusBar,
TabBar.

Every widget embeds WidgetBase and calls Init in its constructor so the
tree machinery can reach its geometry, layout params, and state bits.

# Layout

Layout runs in two passes. Measure walks bottom-up computing desired
sizes; Arrange walks top-down assigning final rectangles. Per-child
layout parameters (flex weight, margins, grid cell, dock edge) live in
WidgetBase.Layout. LayoutTree runs both passes over a tree.

# Events and Focus

Dispatch routes mouse events to the deepest widget under the cursor and
bubbles them up; keyboard events go to the focused widget and bubble
likewise. Tab and Shift+Tab traverse focusable widgets by tab index.
Popups take input capture (SetInputCapture) to see every event first.

# Text Editing Shortcuts

TextInput and CodeEditor share one editing model:

	Left/Right         Move cursor, Ctrl jumps words
	Home/End           Line bounds, Ctrl+Home/End document bounds (editor)
	Shift+movement     Extend selection
	Ctrl+A             Select all
	Ctrl+C, Ctrl+X     Copy, cut
	Ctrl+V             Paste
	Ctrl+Z             Undo
	Ctrl+Y, Ctrl+Shift+Z  Redo
	Backspace/Delete   Delete char or selection

# Theming

A Theme carries the color scheme, typography, spacing scale, and per
widget style knobs. DarkTheme and LightTheme are built in; themes load
from and save to TOML files with LoadThemeFile and SaveThemeFile.
*/
package gui
