package toolkit

import (
	"padnav/internal/domain"
	"padnav/internal/input"
)

// Response is a widget laid out in the current frame. It satisfies
// nav.Response.
type Response struct {
	ctx  *Context
	id   domain.NodeID
	kind WidgetKind
	text string
	rect domain.Rect
}

func (r *Response) ID() domain.NodeID { return r.id }
func (r *Response) Rect() domain.Rect { return r.rect }
func (r *Response) Text() string      { return r.text }

// SetText changes the caption drawn for the widget this frame
func (r *Response) SetText(text string) *Response {
	r.text = text
	return r
}

// Clicked reports a primary pointer click or a keyboard activation of the
// focused widget.
func (r *Response) Clicked() bool {
	if r.ctx.clickedWith(input.MouseLeft, r.rect) {
		return true
	}
	return r.ctx.activateFocused && r.HasFocus()
}

func (r *Response) ClickedSecondary() bool {
	return r.ctx.clickedWith(input.MouseRight, r.rect)
}

func (r *Response) ClickedMiddle() bool {
	return r.ctx.clickedWith(input.MouseMiddle, r.rect)
}

func (r *Response) HasFocus() bool {
	return r.ctx.hasFocus && r.ctx.focused == r.id
}

func (r *Response) Hovered() bool {
	f := r.ctx.frame
	return f.HasPointer && r.rect.Contains(f.Pointer)
}

func (r *Response) RequestFocus() {
	r.ctx.RequestFocus(r.id)
}

// LockFocus keeps Tab and Escape from moving focus off the widget during
// the next frame. It has to be renewed every frame.
func (r *Response) LockFocus() {
	r.ctx.lockNext, r.ctx.lockSet = r.id, true
}
