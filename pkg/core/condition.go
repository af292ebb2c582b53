// pkg/core/condition.go
package core

// Rule is the comparison operator used by value-style conditions.
type Rule string

const (
	RuleLessThan    Rule = "lessThan"
	RuleEqualTo     Rule = "equalTo"
	RuleGreaterThan Rule = "greaterThan"
)

// ConditionEdge selects when a condition fires relative to its predicate
// changing truth value.
type ConditionEdge string

const (
	EdgeRising          ConditionEdge = "rising"
	EdgeFalling         ConditionEdge = "falling"
	EdgeRisingOrFalling ConditionEdge = "risingOrFalling"
	EdgeNone            ConditionEdge = "none"
)

// RelativeDistanceType qualifies RelativeDistanceCondition measurements.
type RelativeDistanceType string

const (
	DistanceLongitudinal RelativeDistanceType = "longitudinal"
	DistanceLateral      RelativeDistanceType = "lateral"
	DistanceCartesian    RelativeDistanceType = "cartesianDistance"
)

// StoryboardElementType names the storyboard scope a
// StoryboardElementStateCondition watches.
type StoryboardElementType string

const (
	ElementStory         StoryboardElementType = "story"
	ElementAct           StoryboardElementType = "act"
	ElementManeuver      StoryboardElementType = "maneuver"
	ElementEvent         StoryboardElementType = "event"
	ElementAction        StoryboardElementType = "action"
	ElementManeuverGroup StoryboardElementType = "maneuverGroup"
)

// Condition is the closed set of trigger predicates. Exactly one concrete
// variant sits behind the interface; each variant carries only the fields
// that apply to its kind. The encoder dispatches on the concrete type, so
// adding a kind without teaching the encoder about it is a compile-visible
// hole in the type switch rather than a silent string mismatch.
type Condition interface {
	// Kind returns the OpenSCENARIO element name for the condition.
	Kind() string
	isCondition()
}

// EntityCondition marks conditions evaluated against an entity's state.
// These are wrapped in a TriggeringEntities block on encode.
type EntityCondition interface {
	Condition
	isEntityCondition()
}

// ValueCondition marks conditions evaluated against a scenario value.
type ValueCondition interface {
	Condition
	isValueCondition()
}

// Trigger binds a condition to the entity it observes plus the firing
// delay and edge. TriggeringEntity is meaningful for EntityCondition
// variants only.
type Trigger struct {
	TriggeringEntity string        `json:"triggeringEntity,omitempty"`
	Delay            float64       `json:"delay"`
	Edge             ConditionEdge `json:"edge"`
	Condition        Condition     `json:"condition"`
}

// Entity conditions.

type EndOfRoadCondition struct {
	Duration float64
}

type CollisionCondition struct {
	TargetEntity string
}

type OffroadCondition struct {
	Duration float64
}

type TimeHeadwayCondition struct {
	TargetEntity string
	Value        float64
	Freespace    bool
	AlongRoute   bool
	Rule         Rule
}

type TimeToCollisionCondition struct {
	TargetEntity string
	Value        float64
	Freespace    bool
	AlongRoute   bool
	Rule         Rule
}

type AccelerationCondition struct {
	Value float64
	Rule  Rule
}

type StandStillCondition struct {
	Duration float64
}

type SpeedCondition struct {
	Value float64
	Rule  Rule
}

type RelativeSpeedCondition struct {
	TargetEntity string
	Value        float64
	Rule         Rule
}

type TraveledDistanceCondition struct {
	Value float64
}

type ReachPositionCondition struct {
	TargetEntity string
	Position     Position3D
	Heading      float64
	Tolerance    float64
}

type DistanceCondition struct {
	Position   Position3D
	Value      float64
	Freespace  bool
	AlongRoute bool
	Rule       Rule
}

type RelativeDistanceCondition struct {
	TargetEntity string
	DistanceType RelativeDistanceType
	Value        float64
	Freespace    bool
	Rule         Rule
}

// Value conditions.

type ParameterCondition struct {
	ParameterRef string
	Value        string
	Rule         Rule
}

type TimeOfDayCondition struct {
	DateTime string
	Rule     Rule
}

type SimulationTimeCondition struct {
	Value float64
	Rule  Rule
}

type StoryboardElementStateCondition struct {
	ElementType StoryboardElementType
	ElementRef  string
	State       string
}

type UserDefinedValueCondition struct {
	Name  string
	Value string
	Rule  Rule
}

type TrafficSignalCondition struct {
	Name  string
	State string
}

type TrafficSignalControllerCondition struct {
	ControllerRef string
	Phase         string
}

func (EndOfRoadCondition) Kind() string        { return "EndOfRoadCondition" }
func (CollisionCondition) Kind() string        { return "CollisionCondition" }
func (OffroadCondition) Kind() string          { return "OffroadCondition" }
func (TimeHeadwayCondition) Kind() string      { return "TimeHeadwayCondition" }
func (TimeToCollisionCondition) Kind() string  { return "TimeToCollisionCondition" }
func (AccelerationCondition) Kind() string     { return "AccelerationCondition" }
func (StandStillCondition) Kind() string       { return "StandStillCondition" }
func (SpeedCondition) Kind() string            { return "SpeedCondition" }
func (RelativeSpeedCondition) Kind() string    { return "RelativeSpeedCondition" }
func (TraveledDistanceCondition) Kind() string { return "TraveledDistanceCondition" }
func (ReachPositionCondition) Kind() string    { return "ReachPositionCondition" }
func (DistanceCondition) Kind() string         { return "DistanceCondition" }
func (RelativeDistanceCondition) Kind() string { return "RelativeDistanceCondition" }

func (ParameterCondition) Kind() string               { return "ParameterCondition" }
func (TimeOfDayCondition) Kind() string               { return "TimeOfDayCondition" }
func (SimulationTimeCondition) Kind() string          { return "SimulationTimeCondition" }
func (StoryboardElementStateCondition) Kind() string  { return "StoryboardElementStateCondition" }
func (UserDefinedValueCondition) Kind() string        { return "UserDefinedValueCondition" }
func (TrafficSignalCondition) Kind() string           { return "TrafficSignalCondition" }
func (TrafficSignalControllerCondition) Kind() string { return "TrafficSignalControllerCondition" }

func (EndOfRoadCondition) isCondition()        {}
func (CollisionCondition) isCondition()        {}
func (OffroadCondition) isCondition()          {}
func (TimeHeadwayCondition) isCondition()      {}
func (TimeToCollisionCondition) isCondition()  {}
func (AccelerationCondition) isCondition()     {}
func (StandStillCondition) isCondition()       {}
func (SpeedCondition) isCondition()            {}
func (RelativeSpeedCondition) isCondition()    {}
func (TraveledDistanceCondition) isCondition() {}
func (ReachPositionCondition) isCondition()    {}
func (DistanceCondition) isCondition()         {}
func (RelativeDistanceCondition) isCondition() {}

func (ParameterCondition) isCondition()               {}
func (TimeOfDayCondition) isCondition()               {}
func (SimulationTimeCondition) isCondition()          {}
func (StoryboardElementStateCondition) isCondition()  {}
func (UserDefinedValueCondition) isCondition()        {}
func (TrafficSignalCondition) isCondition()           {}
func (TrafficSignalControllerCondition) isCondition() {}

func (EndOfRoadCondition) isEntityCondition()        {}
func (CollisionCondition) isEntityCondition()        {}
func (OffroadCondition) isEntityCondition()          {}
func (TimeHeadwayCondition) isEntityCondition()      {}
func (TimeToCollisionCondition) isEntityCondition()  {}
func (AccelerationCondition) isEntityCondition()     {}
func (StandStillCondition) isEntityCondition()       {}
func (SpeedCondition) isEntityCondition()            {}
func (RelativeSpeedCondition) isEntityCondition()    {}
func (TraveledDistanceCondition) isEntityCondition() {}
func (ReachPositionCondition) isEntityCondition()    {}
func (DistanceCondition) isEntityCondition()         {}
func (RelativeDistanceCondition) isEntityCondition() {}

func (ParameterCondition) isValueCondition()               {}
func (TimeOfDayCondition) isValueCondition()               {}
func (SimulationTimeCondition) isValueCondition()          {}
func (StoryboardElementStateCondition) isValueCondition()  {}
func (UserDefinedValueCondition) isValueCondition()        {}
func (TrafficSignalCondition) isValueCondition()           {}
func (TrafficSignalControllerCondition) isValueCondition() {}
