package app

import (
	"context"
	"slices"

	"github.com/jask/smartattend/internal/database/repository"
	"github.com/jask/smartattend/internal/store"
	"github.com/jask/smartattend/internal/views"
)

// Data is the application data shared across views. Lists are kept newest
// first and written through to the store on every change.
type Data struct {
	events   []repository.EventRecord
	feedback []repository.FeedbackRecord
	store    *store.Store
}

// LoadData reads both collections from s. A nil store keeps everything in
// memory.
func LoadData(ctx context.Context, s *store.Store) *Data {
	d := &Data{store: s, events: []repository.EventRecord{}, feedback: []repository.FeedbackRecord{}}
	if s != nil {
		d.events = s.Load(ctx, store.EventsKey)
		d.feedback = s.LoadFeedback(ctx)
	}
	return d
}

func (d *Data) Events() []repository.EventRecord { return slices.Clone(d.events) }

func (d *Data) Feedback() []repository.FeedbackRecord { return slices.Clone(d.feedback) }

// AddEvent prepends e and persists the full list. The in-memory list keeps
// e even when saving fails.
func (d *Data) AddEvent(ctx context.Context, e repository.EventRecord) error {
	d.events = slices.Insert(d.events, 0, e)
	if d.store == nil {
		return nil
	}
	return d.store.Save(ctx, store.EventsKey, d.events)
}

// AddFeedback prepends f and persists the full list.
func (d *Data) AddFeedback(ctx context.Context, f repository.FeedbackRecord) error {
	d.feedback = slices.Insert(d.feedback, 0, f)
	if d.store == nil {
		return nil
	}
	return d.store.SaveFeedback(ctx, d.feedback)
}

// Snapshot is the read-only view handed to the view registry.
func (d *Data) Snapshot() views.Data {
	return views.Data{Events: d.Events(), Feedback: d.Feedback()}
}
