// Package registry supplies a concrete, swappable implementation of the
// client_info_lookup_fn collaborator that pkg/dmclock's Queue treats as
// abstract: a sync.RWMutex-guarded map of client QoS profiles, loadable
// from and savable to a YAML file.
package registry

import (
	"sort"
	"sync"

	"dmclockd/pkg/dmclock"
)

// ClientProfile is one client's QoS triple plus its scheduling class, the
// on-disk and in-memory representation this registry stores.
type ClientProfile struct {
	ID          string
	Reservation float64
	Weight      float64
	Limit       float64
	Class       dmclock.ClientClass
}

// Info converts the profile into the ClientInfo the engine consumes.
func (p ClientProfile) Info() dmclock.ClientInfo {
	return dmclock.NewClientInfo(p.Reservation, p.Weight, p.Limit, p.Class)
}

// yamlClientProfile is ClientProfile's on-disk shape: Class round-trips
// through its string name since dmclock.ClientClass has no YAML tags of
// its own (the engine package stays free of a serialization dependency).
type yamlClientProfile struct {
	ID          string  `yaml:"id"`
	Reservation float64 `yaml:"reservation"`
	Weight      float64 `yaml:"weight"`
	Limit       float64 `yaml:"limit"`
	Class       string  `yaml:"class"`
}

// MarshalYAML implements yaml.Marshaler.
func (p ClientProfile) MarshalYAML() (any, error) {
	return yamlClientProfile{
		ID:          p.ID,
		Reservation: p.Reservation,
		Weight:      p.Weight,
		Limit:       p.Limit,
		Class:       p.Class.String(),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *ClientProfile) UnmarshalYAML(unmarshal func(any) error) error {
	var y yamlClientProfile
	if err := unmarshal(&y); err != nil {
		return err
	}
	p.ID = y.ID
	p.Reservation = y.Reservation
	p.Weight = y.Weight
	p.Limit = y.Limit
	p.Class = classFromName(y.Class)
	return nil
}

// Registry stores client profiles keyed by client ID.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]ClientProfile
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{profiles: map[string]ClientProfile{}}
}

// Get returns the profile for id. A deleted or never-registered client
// yields the zero-QoS ClientProfile{}, matching the "pool no longer
// exists" all-zero-triple sentinel the engine's lookup contract defines
// -- callers should not distinguish "unknown" from "gone".
func (r *Registry) Get(id string) ClientProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[id]
}

// Put inserts or replaces a client profile.
func (r *Registry) Put(profile ClientProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = profile
}

// Delete removes a client profile. Subsequent Get calls return the
// all-zero sentinel, which the next window rollover reads as
// "pool gone": it takes the client's weight out of total_wgt and keeps
// the record, which the idle/erase cleaner later removes without
// subtracting the weight a second time.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, id)
}

// List returns every profile sorted by ID.
func (r *Registry) List() []ClientProfile {
	r.mu.RLock()
	snapshot := make([]ClientProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		snapshot = append(snapshot, p)
	}
	r.mu.RUnlock()
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i].ID < snapshot[j].ID })
	return snapshot
}

// LookupFn adapts Get to the dmclock.ClientInfoLookupFn signature.
func (r *Registry) LookupFn() dmclock.ClientInfoLookupFn[string] {
	return func(id string) dmclock.ClientInfo {
		return r.Get(id).Info()
	}
}

func classFromName(name string) dmclock.ClientClass {
	switch name {
	case "reservation":
		return dmclock.ClassReservation
	case "burst":
		return dmclock.ClassBurst
	case "area":
		return dmclock.ClassArea
	default:
		return dmclock.ClassOther
	}
}
