package gotable

// Hook is the push-style adapter. The host calls Use on every render pass
// with the RecordSet it currently holds; every mutation made through the
// Hook's Controls recomputes the snapshot and pushes it to subscribers.
//
// Use swaps the RecordSet when its identity changes (a different backing
// array or length), not when its contents do.
type Hook struct {
	view        *View
	current     Snapshot
	subscribers []func(Snapshot)
}

// NewHook wraps view and computes the initial snapshot.
func NewHook(view *View) *Hook {
	h := &Hook{view: view}
	h.current = h.snapshot()

	return h
}

// View returns the wrapped view.
func (h *Hook) View() *View {
	return h.view
}

// OnChange registers fn to receive every snapshot produced after a mutation.
func (h *Hook) OnChange(fn func(Snapshot)) {
	if fn == nil {
		return
	}

	h.subscribers = append(h.subscribers, fn)
}

// Use returns a fresh snapshot for records, swapping them into the view when
// they are not the collection already in use.
func (h *Hook) Use(records RecordSet) Snapshot {
	if !h.view.Records().sameIdentity(records) {
		h.view.SetRecords(records)
	}
	h.current = h.snapshot()

	return h.current
}

// Current returns the latest snapshot without recomputing it.
func (h *Hook) Current() Snapshot {
	return h.current
}

// SetSearchTerm - implements Controls.
func (h *Hook) SetSearchTerm(term string) {
	h.view.SetSearchTerm(term)
	h.publish()
}

// ToggleSort - implements Controls.
func (h *Hook) ToggleSort(column string) {
	h.view.ToggleSort(column)
	h.publish()
}

// SetCurrentPage - implements Controls.
func (h *Hook) SetCurrentPage(page int) {
	h.view.SetCurrentPage(page)
	h.publish()
}

// SetResultSet - implements Controls.
func (h *Hook) SetResultSet(resultSet int) error {
	if err := h.view.SetResultSet(resultSet); err != nil {
		return err
	}
	h.publish()

	return nil
}

func (h *Hook) snapshot() Snapshot {
	snap := h.view.Snapshot()
	snap.Controls = h

	return snap
}

func (h *Hook) publish() {
	h.current = h.snapshot()
	for _, fn := range h.subscribers {
		fn(h.current)
	}
}

var _ Controls = (*Hook)(nil)
