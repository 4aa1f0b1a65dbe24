package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlaySensors  OverlayID = "sensors"
	OverlayHeadings OverlayID = "headings"
	OverlayNames    OverlayID = "names"
	OverlayHunger   OverlayID = "hunger"
	OverlayArcs     OverlayID = "arcs"
	OverlayGrid     OverlayID = "grid"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // 0 = no key
	KeyLabel    string // e.g. "S"
	Category    string // "visual" or "debug"
	Default     bool
	Exclusive   []OverlayID // disabled when this one is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with the default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlaySensors,
		Name:        "Sensors",
		Description: "Sensor positions sized by reading",
		Key:         rl.KeyS,
		KeyLabel:    "S",
		Category:    "visual",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayHeadings,
		Name:        "Headings",
		Description: "Heading line on mobile entities",
		Key:         rl.KeyH,
		KeyLabel:    "H",
		Category:    "visual",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayNames,
		Name:        "Names",
		Description: "Entity names",
		Key:         rl.KeyT,
		KeyLabel:    "T",
		Category:    "visual",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayHunger,
		Name:        "Hunger Rings",
		Description: "Ring colored by hunger state",
		Key:         rl.KeyG,
		KeyLabel:    "G",
		Category:    "visual",
		Default:     true,
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayArcs,
		Name:        "Collision Arcs",
		Description: "Highlight entities inside a post-collision arc",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Category:    "debug",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayGrid,
		Name:        "Placement Grid",
		Description: "Grid used for random placement",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "debug",
	})
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = desc.Default
}

// Toggle switches an overlay on/off and handles exclusivity.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in registration order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key.
// Returns the overlay ID, its new state and whether a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key int32) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// Keys returns every bound toggle key.
func (r *OverlayRegistry) Keys() []int32 {
	keys := make([]int32, 0, len(r.descriptors))
	for _, desc := range r.descriptors {
		if desc.Key != 0 {
			keys = append(keys, desc.Key)
		}
	}
	return keys
}
