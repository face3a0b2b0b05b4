package dock

import (
	"encoding/json"

	dockerrors "github.com/odvcencio/dockyard/pkg/errors"
	"github.com/odvcencio/dockyard/pkg/logging"
	"github.com/odvcencio/dockyard/pkg/storage"
	"github.com/odvcencio/dockyard/pkg/telemetry"
)

// PartState is the persisted shape of one part. Array order inside
// State is the canonical restore order; matching is purely by PartID.
type PartState struct {
	PartID    string   `json:"partId"`
	Collapsed bool     `json:"collapsed"`
	Hidden    bool     `json:"hidden"`
	// RelativeSize is the part's content size as a fraction of the
	// available content space. Nil when the part was never sized.
	RelativeSize *float64 `json:"relativeSize,omitempty"`
}

// State is a container's persisted layout.
type State struct {
	Parts []PartState `json:"parts"`
}

// Encode serializes the state to its persisted JSON form.
func (s *State) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", dockerrors.Wrap(err, dockerrors.ErrCodeStateDecode, "encode layout state")
	}
	return string(data), nil
}

// DecodeState parses a persisted layout state.
func DecodeState(raw string) (*State, error) {
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, dockerrors.Wrap(err, dockerrors.ErrCodeStateDecode, "decode layout state")
	}
	return &s, nil
}

// StateStore is the persistence surface the container needs. It is
// satisfied by storage.Store.
type StateStore interface {
	SaveState(containerID, state string) error
	LoadState(containerID string) (string, bool, error)
}

// SnapshotStore persists named layout presets. It is satisfied by
// storage.Store.
type SnapshotStore interface {
	SaveSnapshot(containerID, name, state string) (*storage.Snapshot, error)
	GetSnapshot(containerID, name string) (*storage.Snapshot, error)
}

// StoreState captures the container's current layout: per part in
// order, its persistence key, collapse and hidden flags, and its
// retained size as a fraction of available content space.
func (c *Container) StoreState() *State {
	avail := c.layout.availableSize()
	he := c.layout.headerExtent()

	state := &State{Parts: make([]PartState, 0, len(c.layout.parts))}
	for i, p := range c.layout.parts {
		ps := PartState{
			PartID:    p.partID,
			Collapsed: p.collapsed,
			Hidden:    p.hidden,
		}
		raw := c.layout.partExtent(i)
		if (p.collapsed || p.hidden) && p.uncollapsedSize >= 0 {
			raw = p.uncollapsedSize
		}
		retained := raw
		if retained > he {
			retained -= he
		}
		if avail > 0 && retained > 0 {
			rs := float64(retained) / float64(avail)
			ps.RelativeSize = &rs
		}
		state.Parts = append(state.Parts, ps)
	}
	return state
}

// RestoreState applies a stored layout in three strictly sequential
// phases: drop stale entries, reorder live parts to the stored
// sequence, then apply flags and weights. Relative sizes are applied
// after attachment through the gate.
func (c *Container) RestoreState(state *State) {
	if state == nil {
		return
	}

	// Phase 1: only entries matching a live partID survive.
	matched := make([]PartState, 0, len(state.Parts))
	for _, entry := range state.Parts {
		if c.partByPartID(entry.PartID) != nil {
			matched = append(matched, entry)
		}
	}

	// Phase 2: ascending target-index moves toward the stored order.
	for target, entry := range matched {
		current := -1
		for i, p := range c.layout.parts {
			if p.partID == entry.PartID {
				current = i
				break
			}
		}
		if current >= 0 && current != target {
			c.layout.move(current, target)
		}
	}

	// Phase 3: flags and weights; live parts without a stored entry
	// are hidden when allowed.
	stored := make(map[string]PartState, len(matched))
	for _, entry := range matched {
		stored[entry.PartID] = entry
	}
	for _, p := range c.layout.parts {
		entry, ok := stored[p.partID]
		if !ok {
			if p.canHide {
				p.SetHidden(true)
			}
			continue
		}
		p.SetCollapsed(entry.Collapsed || entry.RelativeSize == nil)
		p.SetHidden(entry.Hidden)
		if entry.RelativeSize != nil {
			p.weight = *entry.RelativeSize
			p.hasWeight = true
		}
	}
	c.refreshMenuOrders(0)

	// Phase 4: sizes apply once the first post-attach layout pass has
	// resolved the gate.
	c.layout.gate.Then(func() {
		c.layout.SetPartSizes()
	})

	c.publish(telemetry.EventStateRestored, "", map[string]any{"parts": len(matched)})
	c.logger.Info(logging.CategoryState, "state_restored", "layout state restored", map[string]any{
		"stored":  len(state.Parts),
		"matched": len(matched),
	})
}

func (c *Container) partByPartID(partID string) *Part {
	for _, p := range c.layout.parts {
		if p.partID == partID {
			return p
		}
	}
	return nil
}

// SaveTo encodes the current layout and persists it under the
// container's stable name.
func (c *Container) SaveTo(store StateStore, trigger string) error {
	encoded, err := c.StoreState().Encode()
	if err != nil {
		telemetry.StateSaveErrors.WithLabelValues(c.name).Inc()
		return err
	}
	if err := store.SaveState(c.name, encoded); err != nil {
		telemetry.StateSaveErrors.WithLabelValues(c.name).Inc()
		return err
	}
	telemetry.StateSaves.WithLabelValues(c.name, trigger).Inc()
	c.publish(telemetry.EventStateSaved, "", map[string]any{"trigger": trigger})
	return nil
}

// LoadFrom restores the layout persisted under the container's stable
// name. Reports whether stored state existed.
func (c *Container) LoadFrom(store StateStore) (bool, error) {
	raw, ok, err := store.LoadState(c.name)
	if err != nil || !ok {
		return false, err
	}
	state, err := DecodeState(raw)
	if err != nil {
		return false, err
	}
	c.RestoreState(state)
	return true, nil
}

// SaveSnapshot persists the current layout as a named preset.
func (c *Container) SaveSnapshot(store SnapshotStore, name string) error {
	encoded, err := c.StoreState().Encode()
	if err != nil {
		return err
	}
	if _, err := store.SaveSnapshot(c.name, name, encoded); err != nil {
		return err
	}
	c.publish(telemetry.EventSnapshotSaved, "", map[string]any{"name": name})
	c.logger.Info(logging.CategoryState, "snapshot_saved", "layout snapshot saved", map[string]any{"name": name})
	return nil
}

// RestoreSnapshot applies a previously saved named preset.
func (c *Container) RestoreSnapshot(store SnapshotStore, name string) error {
	snap, err := store.GetSnapshot(c.name, name)
	if err != nil {
		return err
	}
	state, err := DecodeState(snap.State)
	if err != nil {
		return err
	}
	c.RestoreState(state)
	return nil
}
