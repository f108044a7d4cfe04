// Example demonstrates a small desktop app built from the widget tree:
// a toolbar, a form with inputs, a code editor, and a status bar.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"

	"github.com/viperdos/gui"
	"github.com/viperdos/gui/gfx"
	"github.com/viperdos/gui/gfx/backend/glfw"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	win, err := gfx.New(glfw.New(),
		gfx.WithTitle("gui example"),
		gfx.WithSize(900, 640),
		gfx.WithResizable(true),
		gfx.WithFPS(60))
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	status := gui.NewStatusBar(2)
	status.SetText(0, "Ready")

	editor := gui.NewCodeEditor()
	editor.SetText("package main\n\nfunc main() {\n\tprintln(\"hello\")\n}\n")
	editor.Layout.Flex = 1

	name := gui.NewTextInput()
	name.Placeholder = "Your name"
	name.OnSubmit = func(gui.Widget) {
		status.SetText(0, "Hello, "+name.Text())
	}

	volume := gui.NewSlider(0, 100)
	volume.SetValue(50)
	volume.OnChange = func(gui.Widget) {
		status.SetText(1, fmt.Sprintf("volume %d", int(volume.Value())))
	}

	wrap := gui.NewCheckbox("Word wrap")

	form := gui.NewVBox()
	form.Spacing = 8
	form.Layout.Padding = gui.UniformInsets(12)
	form.AddChild(gui.NewLabel("Settings"))
	form.AddChild(name)
	form.AddChild(volume)
	form.AddChild(wrap)
	form.Layout.Dock = gui.DockLeft
	form.SetFixedSize(240, 0)

	menubar := gui.NewMenuBar()

	toolbar := gui.NewToolbar()
	toolbar.Layout.Dock = gui.DockTop

	status.Layout.Dock = gui.DockBottom
	editor.Layout.Dock = gui.DockFill

	root := gui.NewDock()
	root.AddChild(menubar)
	root.AddChild(toolbar)
	root.AddChild(status)
	root.AddChild(form)
	root.AddChild(editor)

	app := gui.NewApp(win, root)

	save := func() {
		path, err := gui.SaveFileDialog("Save As", gui.FileFilter{
			Description: "Go source", Extensions: []string{"go"},
		})
		if err != nil {
			return
		}
		if werr := os.WriteFile(path, []byte(editor.Text()), 0o644); werr != nil {
			gui.MessageBox("Save failed", werr.Error())
			return
		}
		status.SetText(0, "Saved "+path)
	}
	toolbar.AddButton("Save", func(gui.Widget) { save() })
	toolbar.AddSeparator()
	toolbar.AddButton("Run", func(gui.Widget) {
		status.SetText(0, "Running...")
	})

	file := menubar.AddMenu("File")
	file.AddItem("Save", "Ctrl+S", save)
	file.AddSeparator()
	file.AddItem("Quit", "Ctrl+Q", app.RequestClose)
	view := menubar.AddMenu("View")
	wrapItem := view.AddItem("Word wrap", "", nil)
	wrapItem.Action = func() {
		wrap.SetChecked(!wrap.Checked)
		wrapItem.SetChecked(wrap.Checked)
	}
	menubar.RegisterAccelerators(app.Shortcuts())

	app.Run()
	return nil
}
