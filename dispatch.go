package gui

// Dispatch routes an event through the widget tree and reports whether any
// widget handled it.
//
// Mouse events: the capture holder, if any, sees the event first. Otherwise
// the event goes to the deepest widget under the cursor and bubbles up
// through its ancestors until handled. A mouse press also moves focus to
// the nearest focusable widget in the hit chain.
//
// Keyboard events go to the focused widget and bubble through its
// ancestors.
func Dispatch(root Widget, ev *Event) bool {
	if root == nil {
		return false
	}

	if ev.IsMouse() {
		if cap := CaptureWidget(root); cap != nil {
			if cap.HandleEvent(ev) {
				return true
			}
		}
		hit := HitTest(root, ev.X, ev.Y)
		if hit == nil {
			return false
		}
		if ev.Type == EventMouseDown {
			focusFromHit(hit)
		}
		return bubble(hit, ev)
	}

	if ev.IsKey() {
		if focused := FocusedWidget(root); focused != nil {
			return bubble(focused, ev)
		}
		return root.HandleEvent(ev)
	}

	// Window-level events go to the root only.
	return root.HandleEvent(ev)
}

// Send delivers an event to exactly one widget without bubbling.
func Send(w Widget, ev *Event) bool {
	if w == nil {
		return false
	}
	return w.HandleEvent(ev)
}

// bubble delivers to the widget then each ancestor until one handles it.
func bubble(w Widget, ev *Event) bool {
	for cur := w; cur != nil; cur = cur.Base().Parent {
		if cur.Base().IsDisabled() {
			continue
		}
		if cur.HandleEvent(ev) {
			return true
		}
	}
	return false
}

// focusFromHit focuses the deepest focusable widget at or above the hit.
func focusFromHit(hit Widget) {
	for cur := hit; cur != nil; cur = cur.Base().Parent {
		if cur.CanFocus() && !cur.Base().IsDisabled() {
			SetFocus(cur)
			return
		}
	}
}
