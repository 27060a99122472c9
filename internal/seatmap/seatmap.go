// Package seatmap serializes a hall's current state to JSON, one object per
// seat in hall order. Prices are the stored reservation prices, rendered as
// two-decimal strings; unreserved seats carry "0.00".
package seatmap

import (
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/xenking/cinema-desk/internal/domain/hall"
)

// Write streams the hall snapshot as a single JSON document.
func Write(w io.Writer, h *hall.Hall) error {
	var e jx.Encoder

	e.Obj(func(e *jx.Encoder) {
		e.Field("rows", func(e *jx.Encoder) {
			e.Int(h.RowCount())
		})
		e.Field("seats_per_row", func(e *jx.Encoder) {
			e.Int(h.SeatsPerRowCount())
		})
		e.Field("seats", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range h.Seats() {
					e.Obj(func(e *jx.Encoder) {
						e.Field("number", func(e *jx.Encoder) {
							e.Int(s.Number())
						})
						e.Field("row", func(e *jx.Encoder) {
							e.Int(s.Row())
						})
						e.Field("reserved", func(e *jx.Encoder) {
							e.Bool(s.Reserved())
						})
						e.Field("price", func(e *jx.Encoder) {
							e.Str(s.Price().StringFixed(2))
						})
					})
				}
			})
		})
	})

	if _, err := w.Write(e.Bytes()); err != nil {
		return errors.Wrap(err, "write seat map")
	}
	return nil
}
