// pkg/core/entity.go
package core

import "fmt"

// Position3D represents a 3D coordinate in the map frame (meters).
type Position3D struct {
	X float64 `json:"x"` // easting
	Y float64 `json:"y"` // northing
	Z float64 `json:"z"` // elevation
}

// EntityKind identifies which entity table a record belongs to.
type EntityKind string

const (
	KindEgoVehicle EntityKind = "EgoVehicle"
	KindVehicle    EntityKind = "Vehicle"
	KindPedestrian EntityKind = "Pedestrian"
	KindStaticProp EntityKind = "StaticProp"
)

// NamePrefix returns the display-name prefix for the entity kind.
// Display names are "{Prefix}_{id}", e.g. "Ego_3".
func (k EntityKind) NamePrefix() string {
	switch k {
	case KindEgoVehicle:
		return "Ego"
	case KindVehicle:
		return "Vehicle"
	case KindPedestrian:
		return "Pedestrian"
	case KindStaticProp:
		return "Prop"
	}
	return string(k)
}

// EgoVehicle is the player-controlled vehicle. A scenario normally has
// exactly one, but the table does not enforce it.
type EgoVehicle struct {
	ID          int        `json:"id"`
	Model       string     `json:"model"` // display name, mapped through the catalog
	Position    Position3D `json:"position"`
	Orientation float64    `json:"orientation"` // radians
	InitSpeed   string     `json:"initSpeed"`   // literal or "$Param" reference
	Agent       string     `json:"agent"`       // controller module name
	AgentCamera bool       `json:"agentCamera"`
}

// Name returns the deterministic display name, e.g. "Ego_1".
func (e EgoVehicle) Name() string {
	return fmt.Sprintf("%s_%d", KindEgoVehicle.NamePrefix(), e.ID)
}

// Vehicle is a non-ego simulated vehicle.
type Vehicle struct {
	ID          int        `json:"id"`
	Model       string     `json:"model"`
	Position    Position3D `json:"position"`
	Orientation float64    `json:"orientation"`
	InitSpeed   string     `json:"initSpeed"`
}

func (v Vehicle) Name() string {
	return fmt.Sprintf("%s_%d", KindVehicle.NamePrefix(), v.ID)
}

// Pedestrian is a simulated walker.
type Pedestrian struct {
	ID          int        `json:"id"`
	Model       string     `json:"model"`
	Position    Position3D `json:"position"`
	Orientation float64    `json:"orientation"`
	InitSpeed   string     `json:"initSpeed"`
}

func (p Pedestrian) Name() string {
	return fmt.Sprintf("%s_%d", KindPedestrian.NamePrefix(), p.ID)
}

// StaticProp is a non-moving placed object.
type StaticProp struct {
	ID          int        `json:"id"`
	Model       string     `json:"model"`
	Position    Position3D `json:"position"`
	Orientation float64    `json:"orientation"`
	Physics     bool       `json:"physics"`
}

func (s StaticProp) Name() string {
	return fmt.Sprintf("%s_%d", KindStaticProp.NamePrefix(), s.ID)
}
