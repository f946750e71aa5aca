package store

import (
	"encoding/json"
	"fmt"

	"github.com/m-zajac/gitmatch/internal/app"
)

// Profiles stores normalized profiles keyed by username.
// Entries are overwritten wholesale on every save, there is no eviction.
//go:generate mockgen -destination ../app/mock/stores.go -package mock github.com/m-zajac/gitmatch/internal/app ProfileStore,RecentViewsStore
type Profiles struct {
	store KVStore
}

var _ app.ProfileStore = &Profiles{}

// NewProfiles creates new Profiles instance backed by given kv store.
func NewProfiles(store KVStore) *Profiles {
	return &Profiles{store: store}
}

// Profile returns stored profile for given username.
// Returns nil without error when there's no profile stored.
func (p *Profiles) Profile(username string) (*app.Profile, error) {
	data, err := p.store.ReadKey(p.key(username))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var profile app.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unmarshalling profile data: %w", err)
	}

	return &profile, nil
}

// Save upserts given profile under its username.
func (p *Profiles) Save(profile *app.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshalling profile data: %w", err)
	}

	return p.store.UpdateKey(p.key(profile.Username), data)
}

func (p *Profiles) key(username string) []byte {
	return []byte(username)
}
