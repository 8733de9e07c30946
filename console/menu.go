package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// BackKey is the choice that leaves the current menu.
const BackKey = "0"

// Item is one choice of a menu: either an action or a sub-menu.
type Item struct {
	Key    string
	Label  string
	Action HandlerFunc
	Sub    *Menu
}

// Menu is one screen of the navigator.
type Menu struct {
	Title string
	Items []Item
	// BackLabel names the 0 choice, e.g. "Back", "Logout" or "Exit".
	BackLabel string
}

func (m *Menu) find(choice string) (Item, bool) {
	for _, it := range m.Items {
		if strings.EqualFold(it.Key, choice) {
			return it, true
		}
	}
	return Item{}, false
}

func (m *Menu) render(w io.Writer) {
	fmt.Fprintf(w, "\n===== %s =====\n", m.Title)
	for _, it := range m.Items {
		fmt.Fprintf(w, "%s. %s\n", it.Key, it.Label)
	}
	back := m.BackLabel
	if back == "" {
		back = "Back"
	}
	fmt.Fprintf(w, "%s. %s\n", BackKey, back)
}

var errSessionEnded = errors.New("console session ended")

// Navigator drives a menu tree over one console session.
type Navigator struct {
	in         *Collector
	out        io.Writer
	errOut     io.Writer
	middleware []HandlerFunc
}

// NewNavigator returns a navigator reading choices from in.
func NewNavigator(in io.Reader, out, errOut io.Writer) *Navigator {
	return &Navigator{
		in:     NewCollector(in, out),
		out:    out,
		errOut: errOut,
	}
}

// Use appends middleware run around every action.
func (n *Navigator) Use(middleware ...HandlerFunc) {
	n.middleware = append(n.middleware, middleware...)
}

// Run shows root and dispatches choices until the root menu is left or the
// input is exhausted. Both end the session normally.
func (n *Navigator) Run(root *Menu) error {
	err := n.loop(root, root.Title)
	if errors.Is(err, errSessionEnded) {
		return nil
	}
	if err == nil {
		fmt.Fprintln(n.out, "Exiting...")
	}
	return err
}

func (n *Navigator) loop(m *Menu, path string) error {
	for {
		m.render(n.out)
		choice, err := n.in.Choice("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return errSessionEnded
		}
		if err != nil {
			return err
		}

		if choice == BackKey {
			return nil
		}
		it, ok := m.find(choice)
		if !ok {
			fmt.Fprintln(n.out, "Invalid choice! Please try again.")
			continue
		}

		next := path + " > " + it.Label
		if it.Sub != nil {
			if err := n.loop(it.Sub, next); err != nil {
				return err
			}
			continue
		}
		if it.Action == nil {
			continue
		}
		if n.invoke(it.Action, next) {
			return errSessionEnded
		}
	}
}

// invoke runs one action through the middleware chain and reports whether it ran out of input.
func (n *Navigator) invoke(action HandlerFunc, path string) bool {
	c := NewContext(n.in, n.out, n.errOut)
	c.Path = path
	handlers := make([]HandlerFunc, 0, len(n.middleware)+1)
	handlers = append(handlers, n.middleware...)
	handlers = append(handlers, action)
	c.Run(handlers...)
	return c.InputClosed()
}
