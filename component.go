package gotable

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RenderFunc turns a snapshot into presentation output.
type RenderFunc[R any] func(Snapshot) R

// Component is the pull-style adapter: the host asks it to Render whenever it
// needs output, and every mutation made through its Controls re-renders.
//
// Receive swaps the RecordSet only when the new one differs by value from the
// current one.
type Component[R any] struct {
	view     *View
	render   RenderFunc[R]
	children RenderFunc[R]
	logger   zerolog.Logger

	output   R
	rendered bool
}

// ComponentOption configures a Component.
type ComponentOption[R any] func(*Component[R])

// WithRender sets the render function. It takes priority over WithChildren.
func WithRender[R any](fn RenderFunc[R]) ComponentOption[R] {
	return func(c *Component[R]) {
		c.render = fn
	}
}

// WithChildren sets the fallback render function.
func WithChildren[R any](fn RenderFunc[R]) ComponentOption[R] {
	return func(c *Component[R]) {
		c.children = fn
	}
}

// WithLogger sets the logger used for usage warnings. Defaults to the global
// zerolog logger.
func WithLogger[R any](logger zerolog.Logger) ComponentOption[R] {
	return func(c *Component[R]) {
		c.logger = logger
	}
}

// NewComponent wraps view.
func NewComponent[R any](view *View, opts ...ComponentOption[R]) *Component[R] {
	c := &Component[R]{
		view:   view,
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// View returns the wrapped view.
func (c *Component[R]) View() *View {
	return c.view
}

// Snapshot computes a snapshot whose Controls re-render the component.
func (c *Component[R]) Snapshot() Snapshot {
	snap := c.view.Snapshot()
	snap.Controls = c

	return snap
}

// Render computes a fresh snapshot and passes it to the render function, or
// to the children function when no render function is set. With neither, it
// logs a warning and returns the zero value and false.
func (c *Component[R]) Render() (R, bool) {
	fn := c.render
	if fn == nil {
		fn = c.children
	}

	if fn == nil {
		c.logger.Warn().Str("adapter", "component").Msg("please provide a valid render function or children")
		var zero R
		c.output, c.rendered = zero, false
		return zero, false
	}

	c.output, c.rendered = fn(c.Snapshot()), true

	return c.output, true
}

// Output returns the result of the latest Render.
func (c *Component[R]) Output() (R, bool) {
	return c.output, c.rendered
}

// Receive hands the component a possibly new RecordSet. The view is updated
// and re-rendered only when records are not equal to the current ones.
func (c *Component[R]) Receive(records RecordSet) {
	if c.view.Records().Equal(records) {
		return
	}

	c.view.SetRecords(records)
	c.Render()
}

// SetSearchTerm - implements Controls.
func (c *Component[R]) SetSearchTerm(term string) {
	c.view.SetSearchTerm(term)
	c.Render()
}

// ToggleSort - implements Controls.
func (c *Component[R]) ToggleSort(column string) {
	c.view.ToggleSort(column)
	c.Render()
}

// SetCurrentPage - implements Controls.
func (c *Component[R]) SetCurrentPage(page int) {
	c.view.SetCurrentPage(page)
	c.Render()
}

// SetResultSet - implements Controls.
func (c *Component[R]) SetResultSet(resultSet int) error {
	if err := c.view.SetResultSet(resultSet); err != nil {
		return err
	}
	c.Render()

	return nil
}

var _ Controls = (*Component[string])(nil)
