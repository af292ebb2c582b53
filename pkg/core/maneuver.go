// pkg/core/maneuver.go
package core

// ManeuverType separates per-entity maneuvers from scenario-global actions.
type ManeuverType string

const (
	ManeuverEntity ManeuverType = "EntityManeuvers"
	ManeuverGlobal ManeuverType = "GlobalActions"
)

// EntityManeuverType selects the payload table a maneuver joins against.
type EntityManeuverType string

const (
	ManeuverWaypoint     EntityManeuverType = "Waypoint"
	ManeuverLongitudinal EntityManeuverType = "Longitudinal"
	ManeuverLateral      EntityManeuverType = "Lateral"
)

// GlobalActionType names the global action a GlobalActions maneuver emits.
type GlobalActionType string

const (
	GlobalInfrastructure GlobalActionType = "InfrastructureAction"
)

// Maneuver is one scripted behavior. Its payload (waypoints, longitudinal
// or lateral action parameters) lives in a separate table keyed by ID.
// Entity references an entity display name ("Ego_1", "Vehicle_2").
type Maneuver struct {
	ID                 int                `json:"id"`
	Entity             string             `json:"entity"`
	Type               ManeuverType       `json:"maneuverType"`
	EntityManeuverType EntityManeuverType `json:"entityManeuverType"`

	StartTrigger       Trigger  `json:"startTrigger"`
	StopTriggerEnabled bool     `json:"stopTriggerEnabled"`
	StopTrigger        *Trigger `json:"stopTrigger,omitempty"`

	// GlobalActions fields
	GlobalActionType  GlobalActionType `json:"globalActType,omitempty"`
	TrafficLightID    int              `json:"trafficLightId,omitempty"`
	TrafficLightState string           `json:"trafficLightState,omitempty"`
}

// Waypoint is one route point of a Waypoint maneuver. SequenceNo is
// monotonic per entity name (max+1 on insert).
type Waypoint struct {
	ManeuverID    int        `json:"maneuverId"`
	Entity        string     `json:"entity"`
	SequenceNo    int        `json:"sequenceNo"`
	Position      Position3D `json:"position"`
	Orientation   float64    `json:"orientation"`
	RouteStrategy string     `json:"routeStrategy,omitempty"`
}

// LongitudinalActionType selects the longitudinal payload encoding.
type LongitudinalActionType string

const (
	LongitudinalSpeed    LongitudinalActionType = "SpeedAction"
	LongitudinalDistance LongitudinalActionType = "LongitudinalDistanceAction"
)

// SpeedTargetType selects absolute vs relative speed targets.
type SpeedTargetType string

const (
	TargetAbsolute SpeedTargetType = "absolute"
	TargetRelative SpeedTargetType = "relative"
)

// LongitudinalAction is the payload row for a Longitudinal maneuver,
// joined by ManeuverID (at most one row per maneuver).
type LongitudinalAction struct {
	ManeuverID int                    `json:"maneuverId"`
	Type       LongitudinalActionType `json:"type"`

	// SpeedAction
	SpeedTarget       SpeedTargetType `json:"speedTarget,omitempty"`
	TargetSpeedValue  float64         `json:"targetSpeedValue,omitempty"`
	TargetEntity      string          `json:"targetEntity,omitempty"` // relative target / distance reference
	ValueType         string          `json:"valueType,omitempty"`    // delta | factor (relative target)
	Continuous        bool            `json:"continuous,omitempty"`
	DynamicsShape     string          `json:"dynamicsShape,omitempty"`     // step | linear | cubic | sinusoidal
	DynamicsDimension string          `json:"dynamicsDimension,omitempty"` // time | distance | rate
	DynamicsValue     float64         `json:"dynamicsValue,omitempty"`

	// LongitudinalDistanceAction
	Distance        float64 `json:"distance,omitempty"`
	Freespace       bool    `json:"freespace,omitempty"`
	MaxAcceleration float64 `json:"maxAcceleration,omitempty"`
	MaxDeceleration float64 `json:"maxDeceleration,omitempty"`
	MaxSpeed        float64 `json:"maxSpeed,omitempty"`
}

// LateralActionType selects the lateral payload encoding.
type LateralActionType string

const (
	LateralLaneChange LateralActionType = "LaneChangeAction"
	LateralLaneOffset LateralActionType = "LaneOffsetAction"
	LateralDistance   LateralActionType = "LateralDistanceAction"
)

// LateralAction is the payload row for a Lateral maneuver, joined by
// ManeuverID (at most one row per maneuver).
type LateralAction struct {
	ManeuverID int               `json:"maneuverId"`
	Type       LateralActionType `json:"type"`

	// LaneChangeAction / LaneOffsetAction
	LaneTarget        SpeedTargetType `json:"laneTarget,omitempty"` // absolute | relative
	LaneValue         string          `json:"laneValue,omitempty"`  // lane id or delta
	TargetEntity      string          `json:"targetEntity,omitempty"`
	TargetLaneOffset  float64         `json:"targetLaneOffset,omitempty"`
	DynamicsShape     string          `json:"dynamicsShape,omitempty"`
	DynamicsDimension string          `json:"dynamicsDimension,omitempty"`
	DynamicsValue     float64         `json:"dynamicsValue,omitempty"`
	MaxLateralAcc     float64         `json:"maxLateralAcc,omitempty"`

	// LateralDistanceAction
	Distance        float64 `json:"distance,omitempty"`
	Freespace       bool    `json:"freespace,omitempty"`
	Continuous      bool    `json:"continuous,omitempty"`
	MaxAcceleration float64 `json:"maxAcceleration,omitempty"`
	MaxDeceleration float64 `json:"maxDeceleration,omitempty"`
	MaxSpeed        float64 `json:"maxSpeed,omitempty"`
}
