// Package console holds the interactive pieces of the programs: the field
// collector that reads and validates typed values, the per-action context and
// the menu navigator.
package console

import (
	"errors"
	"io"
)

// HandlerFunc is a menu action or a middleware wrapped around one.
type HandlerFunc func(*Context)

// Context carries one menu action invocation: the input collector, the output
// streams, values set by middleware and the errors the action recorded.
type Context struct {
	In     *Collector
	Out    io.Writer
	ErrOut io.Writer
	// Path is the breadcrumb of the menu item being run, e.g. "Patient Management > Add Patient".
	Path   string
	Errors []error

	keys     map[string]interface{}
	handlers []HandlerFunc
	index    int
}

// NewContext returns a context reading from in and writing to out and errOut.
func NewContext(in *Collector, out, errOut io.Writer) *Context {
	return &Context{
		In:     in,
		Out:    out,
		ErrOut: errOut,
		keys:   make(map[string]interface{}),
	}
}

// Set stores a value for the rest of the handler chain.
func (c *Context) Set(key string, value interface{}) {
	if c.keys == nil {
		c.keys = make(map[string]interface{})
	}
	c.keys[key] = value
}

// Get returns the value stored under key.
func (c *Context) Get(key string) (interface{}, bool) {
	v, ok := c.keys[key]
	return v, ok
}

// Error records err against the invocation. Recording io.EOF ends the session.
func (c *Context) Error(err error) {
	if err != nil {
		c.Errors = append(c.Errors, err)
	}
}

// InputClosed reports whether the action ran out of input.
func (c *Context) InputClosed() bool {
	for _, err := range c.Errors {
		if errors.Is(err, io.EOF) {
			return true
		}
	}
	return false
}

// Next runs the remaining handlers of the chain.
func (c *Context) Next() {
	c.index++
	for c.index < len(c.handlers) {
		c.handlers[c.index](c)
		c.index++
	}
}

// Run executes handlers as a chain; middleware call Next to continue it.
func (c *Context) Run(handlers ...HandlerFunc) {
	c.handlers = handlers
	c.index = -1
	c.Next()
}
