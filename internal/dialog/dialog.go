// Package dialog implements the modal form dialogs used to create and edit
// decks and cards.
//
// A dialog is described declaratively by a Descriptor. The Controller owns at
// most one open dialog: opening a new one replaces the current one. While a
// dialog is open, focus is trapped in its ring of elements (fields, submit
// button, extra action buttons, close button) and Tab/Shift+Tab wrap around.
package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field is one input of a dialog
type Field struct {
	Name        string
	Label       string
	Value       string
	Placeholder string
	Multiline   bool
	Required    bool
}

// Values holds submitted field values by field name, untrimmed
type Values map[string]string

// Action is an extra button next to submit.
// Run returns true when the dialog should close.
type Action struct {
	Label  string
	Danger bool
	Run    func(Values) bool
}

// Descriptor declares a dialog
type Descriptor struct {
	Title       string
	Fields      []Field
	SubmitLabel string
	Actions     []Action

	// OnSubmit is called with the field values once required fields are filled.
	// A non-nil error is shown in the dialog and keeps it open.
	OnSubmit func(Values) error
}

// ElementKind identifies what a focus ring position holds
type ElementKind int

const (
	ElementField ElementKind = iota
	ElementSubmit
	ElementAction
	ElementClose
)

type widget struct {
	field Field
	input textinput.Model
	area  textarea.Model
}

func (w *widget) value() string {
	if w.field.Multiline {
		return w.area.Value()
	}
	return w.input.Value()
}

func (w *widget) focus() tea.Cmd {
	if w.field.Multiline {
		return w.area.Focus()
	}
	return w.input.Focus()
}

func (w *widget) blur() {
	if w.field.Multiline {
		w.area.Blur()
		return
	}
	w.input.Blur()
}

// Controller drives the open/closed state of a single dialog
type Controller struct {
	desc        Descriptor
	open        bool
	widgets     []*widget
	focus       int
	err         string
	returnFocus string
	width       int
	onClose     func(returnFocus string)
}

// New returns a closed controller
func New() *Controller {
	return &Controller{width: 60}
}

// SetOnClose registers a callback run whenever the dialog closes, with the focus target given to Open
func (c *Controller) SetOnClose(fn func(returnFocus string)) {
	c.onClose = fn
}

// IsOpen reports whether a dialog is open
func (c *Controller) IsOpen() bool {
	return c.open
}

// Title returns the open dialog's title
func (c *Controller) Title() string {
	return c.desc.Title
}

// Err returns the inline error message, if any
func (c *Controller) Err() string {
	return c.err
}

// SetWidth sets the width available to input widgets
func (c *Controller) SetWidth(width int) {
	if width < 20 {
		width = 20
	}
	c.width = width
	for _, w := range c.widgets {
		w.input.Width = width
		w.area.SetWidth(width)
	}
}

// Open shows a dialog, replacing any open one, and focuses its first element.
// returnFocus is handed back by Close.
func (c *Controller) Open(desc Descriptor, returnFocus string) tea.Cmd {
	if c.open {
		// No stacking: keep the first dialog's return target
		returnFocus = c.returnFocus
	}

	c.desc = desc
	c.open = true
	c.err = ""
	c.returnFocus = returnFocus
	c.widgets = make([]*widget, len(desc.Fields))

	for i, f := range desc.Fields {
		w := &widget{field: f}
		if f.Multiline {
			w.area = textarea.New()
			w.area.ShowLineNumbers = false
			w.area.CharLimit = 0
			w.area.Placeholder = f.Placeholder
			w.area.SetWidth(c.width)
			w.area.SetHeight(4)
			w.area.SetValue(f.Value)
		} else {
			w.input = textinput.New()
			w.input.Prompt = ""
			w.input.Placeholder = f.Placeholder
			w.input.Width = c.width
			w.input.SetValue(f.Value)
			w.input.CursorEnd()
		}
		c.widgets[i] = w
	}

	c.focus = 0
	return c.focusCurrent()
}

// Close closes the dialog and returns the focus target given to Open
func (c *Controller) Close() string {
	if !c.open {
		return ""
	}
	target := c.returnFocus
	c.open = false
	c.desc = Descriptor{}
	c.widgets = nil
	c.err = ""
	c.returnFocus = ""
	c.focus = 0

	if c.onClose != nil {
		c.onClose(target)
	}
	return target
}

// ringSize is fields + submit + actions + close
func (c *Controller) ringSize() int {
	return len(c.widgets) + 1 + len(c.desc.Actions) + 1
}

// Focused returns the kind of the focused element and its index within that kind
func (c *Controller) Focused() (ElementKind, int) {
	n := len(c.widgets)
	switch {
	case c.focus < n:
		return ElementField, c.focus
	case c.focus == n:
		return ElementSubmit, 0
	case c.focus < n+1+len(c.desc.Actions):
		return ElementAction, c.focus - n - 1
	default:
		return ElementClose, 0
	}
}

// FocusedMultiline reports whether focus is on a multiline field
func (c *Controller) FocusedMultiline() bool {
	kind, i := c.Focused()
	return kind == ElementField && c.widgets[i].field.Multiline
}

// FocusNext moves focus forward, wrapping from the last element to the first
func (c *Controller) FocusNext() tea.Cmd {
	return c.moveFocus(1)
}

// FocusPrev moves focus backward, wrapping from the first element to the last
func (c *Controller) FocusPrev() tea.Cmd {
	return c.moveFocus(-1)
}

func (c *Controller) moveFocus(delta int) tea.Cmd {
	if !c.open {
		return nil
	}
	c.blurCurrent()
	n := c.ringSize()
	c.focus = ((c.focus+delta)%n + n) % n
	return c.focusCurrent()
}

func (c *Controller) blurCurrent() {
	if kind, i := c.Focused(); kind == ElementField {
		c.widgets[i].blur()
	}
}

func (c *Controller) focusCurrent() tea.Cmd {
	if kind, i := c.Focused(); kind == ElementField {
		return c.widgets[i].focus()
	}
	return nil
}

// Values returns the current field values
func (c *Controller) Values() Values {
	values := make(Values, len(c.widgets))
	for _, w := range c.widgets {
		values[w.field.Name] = w.value()
	}
	return values
}

// Submit validates required fields and calls OnSubmit.
// Returns true when the dialog closed.
func (c *Controller) Submit() bool {
	if !c.open {
		return false
	}

	for i, w := range c.widgets {
		if w.field.Required && strings.TrimSpace(w.value()) == "" {
			c.err = fmt.Sprintf("%s is required", w.field.Label)
			c.blurCurrent()
			c.focus = i
			c.focusCurrent()
			return false
		}
	}

	if c.desc.OnSubmit != nil {
		if err := c.desc.OnSubmit(c.Values()); err != nil {
			c.err = err.Error()
			return false
		}
	}

	c.Close()
	return true
}

// Activate presses the focused element.
// Returns false when the key should go to the focused widget instead (Enter in a multiline field).
func (c *Controller) Activate() bool {
	if !c.open {
		return false
	}

	kind, i := c.Focused()
	switch kind {
	case ElementField:
		if c.widgets[i].field.Multiline {
			return false
		}
		c.Submit()
	case ElementSubmit:
		c.Submit()
	case ElementAction:
		action := c.desc.Actions[i]
		if action.Run != nil && action.Run(c.Values()) {
			c.Close()
		}
	case ElementClose:
		c.Close()
	}
	return true
}

// Update forwards a message to the focused input widget
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	if !c.open {
		return nil
	}
	kind, i := c.Focused()
	if kind != ElementField {
		return nil
	}

	var cmd tea.Cmd
	w := c.widgets[i]
	if w.field.Multiline {
		w.area, cmd = w.area.Update(msg)
	} else {
		w.input, cmd = w.input.Update(msg)
	}
	return cmd
}
