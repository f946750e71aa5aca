package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/m-zajac/gitmatch/internal/app"
)

// RecentViews keeps the recently viewed accounts ledger.
// One entry per username, updated on every record.
type RecentViews struct {
	store ScannableKVStore
}

var _ app.RecentViewsStore = &RecentViews{}

// NewRecentViews creates new RecentViews instance backed by given kv store.
func NewRecentViews(store ScannableKVStore) *RecentViews {
	return &RecentViews{store: store}
}

// Record upserts a view entry for the username carried by given view.
func (r *RecentViews) Record(view app.RecentView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("marshalling view data: %w", err)
	}

	return r.store.UpdateKey([]byte(view.Username), data)
}

// Recent returns up to limit entries sorted by view time descending.
// Ties are broken by store iteration order.
func (r *RecentViews) Recent(limit int) ([]app.RecentView, error) {
	var views []app.RecentView
	if err := r.store.ForEach(func(key, data []byte) error {
		var view app.RecentView
		if err := json.Unmarshal(data, &view); err != nil {
			return fmt.Errorf("unmarshalling view data for %q: %w", key, err)
		}
		views = append(views, view)
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].ViewedAt.After(views[j].ViewedAt)
	})
	if len(views) > limit {
		views = views[:limit]
	}

	return views, nil
}
