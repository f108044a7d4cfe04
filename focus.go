package gui

// Focus management: a single focused widget per tree, tab traversal with
// explicit tab indices, and input capture for popups.
//
// Traversal order: widgets with TabIndex >= 0 come first in ascending index
// order, then TabIndex == -1 widgets in depth-first tree order. Reverse
// traversal walks the same sequence backwards. Both wrap.

// SetFocus moves focus to the widget, notifying the old and new holders.
// Passing nil clears focus.
func SetFocus(w Widget) {
	var t *treeState
	if w != nil {
		t = w.Base().tree
	}
	if t == nil {
		return
	}
	if t.focused == w {
		return
	}
	if old := t.focused; old != nil {
		old.OnFocus(false)
	}
	t.focused = w
	if w != nil {
		w.OnFocus(true)
		guiLogger.Debug("focus changed", "widget", w.Base().Type, "id", w.Base().ID)
	}
}

// ClearFocus removes focus within the tree rooted at root.
func ClearFocus(root Widget) {
	t := root.Base().tree
	if t == nil || t.focused == nil {
		return
	}
	t.focused.OnFocus(false)
	t.focused = nil
}

// FocusedWidget returns the tree's focused widget, or nil.
func FocusedWidget(root Widget) Widget {
	if t := root.Base().tree; t != nil {
		return t.focused
	}
	return nil
}

// focusOrder collects the focusable widgets of a tree in traversal order.
func focusOrder(root Widget) []Widget {
	var indexed, natural []Widget
	walkFocusables(root, &indexed, &natural)

	// Insertion sort by TabIndex; explicit indices are few.
	for i := 1; i < len(indexed); i++ {
		for j := i; j > 0 && indexed[j].Base().TabIndex < indexed[j-1].Base().TabIndex; j-- {
			indexed[j], indexed[j-1] = indexed[j-1], indexed[j]
		}
	}
	return append(indexed, natural...)
}

func walkFocusables(w Widget, indexed, natural *[]Widget) {
	b := w.Base()
	if !b.Visible {
		return
	}
	if w.CanFocus() && !b.IsDisabled() {
		if b.TabIndex >= 0 {
			*indexed = append(*indexed, w)
		} else {
			*natural = append(*natural, w)
		}
	}
	for c := b.FirstChild; c != nil; c = c.Base().NextSibling {
		walkFocusables(c, indexed, natural)
	}
}

// FocusNext advances focus to the next focusable widget, wrapping at the
// end. With no current focus it lands on the first widget in order.
func FocusNext(root Widget) Widget {
	return focusStep(root, 1)
}

// FocusPrev moves focus to the previous focusable widget, wrapping at the
// start.
func FocusPrev(root Widget) Widget {
	return focusStep(root, -1)
}

func focusStep(root Widget, dir int) Widget {
	order := focusOrder(root)
	if len(order) == 0 {
		return nil
	}
	t := root.Base().tree
	cur := -1
	if t != nil && t.focused != nil {
		for i, w := range order {
			if w == t.focused {
				cur = i
				break
			}
		}
	}
	var next int
	switch {
	case cur < 0 && dir > 0:
		next = 0
	case cur < 0:
		next = len(order) - 1
	default:
		next = (cur + dir + len(order)) % len(order)
	}
	SetFocus(order[next])
	return order[next]
}

// Input capture.

// SetInputCapture routes every subsequent mouse event to the widget until
// released, regardless of hit testing. Used by widgets with open popups.
func SetInputCapture(w Widget) {
	if w == nil {
		return
	}
	if t := w.Base().tree; t != nil {
		t.capture = w
	}
}

// ReleaseInputCapture clears the capture if held by the widget.
func ReleaseInputCapture(w Widget) {
	if w == nil {
		return
	}
	if t := w.Base().tree; t != nil && t.capture == w {
		t.capture = nil
	}
}

// CaptureWidget returns the tree's capture holder, or nil.
func CaptureWidget(root Widget) Widget {
	if t := root.Base().tree; t != nil {
		return t.capture
	}
	return nil
}
