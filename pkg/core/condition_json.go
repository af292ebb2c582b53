// pkg/core/condition_json.go
package core

import (
	"encoding/json"
	"fmt"
)

// Triggers carry an interface-typed condition, so they need an envelope
// with a kind tag to survive JSON persistence (the project store holds
// them as JSON columns).

type triggerEnvelope struct {
	TriggeringEntity string          `json:"triggeringEntity,omitempty"`
	Delay            float64         `json:"delay"`
	Edge             ConditionEdge   `json:"edge"`
	Kind             string          `json:"kind"`
	Condition        json.RawMessage `json:"condition"`
}

// MarshalJSON implements json.Marshaler.
func (t Trigger) MarshalJSON() ([]byte, error) {
	env := triggerEnvelope{
		TriggeringEntity: t.TriggeringEntity,
		Delay:            t.Delay,
		Edge:             t.Edge,
	}
	if t.Condition != nil {
		env.Kind = t.Condition.Kind()
		raw, err := json.Marshal(t.Condition)
		if err != nil {
			return nil, fmt.Errorf("marshalling %s: %w", env.Kind, err)
		}
		env.Condition = raw
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Trigger) UnmarshalJSON(data []byte) error {
	var env triggerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	t.TriggeringEntity = env.TriggeringEntity
	t.Delay = env.Delay
	t.Edge = env.Edge
	t.Condition = nil

	if env.Kind == "" {
		return nil
	}
	cond, err := conditionByKind(env.Kind)
	if err != nil {
		return err
	}
	if len(env.Condition) > 0 {
		if err := json.Unmarshal(env.Condition, cond); err != nil {
			return fmt.Errorf("unmarshalling %s: %w", env.Kind, err)
		}
	}
	t.Condition = deref(cond)
	return nil
}

// conditionByKind allocates the concrete variant for a kind tag.
func conditionByKind(kind string) (any, error) {
	switch kind {
	case "EndOfRoadCondition":
		return &EndOfRoadCondition{}, nil
	case "CollisionCondition":
		return &CollisionCondition{}, nil
	case "OffroadCondition":
		return &OffroadCondition{}, nil
	case "TimeHeadwayCondition":
		return &TimeHeadwayCondition{}, nil
	case "TimeToCollisionCondition":
		return &TimeToCollisionCondition{}, nil
	case "AccelerationCondition":
		return &AccelerationCondition{}, nil
	case "StandStillCondition":
		return &StandStillCondition{}, nil
	case "SpeedCondition":
		return &SpeedCondition{}, nil
	case "RelativeSpeedCondition":
		return &RelativeSpeedCondition{}, nil
	case "TraveledDistanceCondition":
		return &TraveledDistanceCondition{}, nil
	case "ReachPositionCondition":
		return &ReachPositionCondition{}, nil
	case "DistanceCondition":
		return &DistanceCondition{}, nil
	case "RelativeDistanceCondition":
		return &RelativeDistanceCondition{}, nil
	case "ParameterCondition":
		return &ParameterCondition{}, nil
	case "TimeOfDayCondition":
		return &TimeOfDayCondition{}, nil
	case "SimulationTimeCondition":
		return &SimulationTimeCondition{}, nil
	case "StoryboardElementStateCondition":
		return &StoryboardElementStateCondition{}, nil
	case "UserDefinedValueCondition":
		return &UserDefinedValueCondition{}, nil
	case "TrafficSignalCondition":
		return &TrafficSignalCondition{}, nil
	case "TrafficSignalControllerCondition":
		return &TrafficSignalControllerCondition{}, nil
	}
	return nil, fmt.Errorf("unknown condition kind %q", kind)
}

func deref(cond any) Condition {
	switch c := cond.(type) {
	case *EndOfRoadCondition:
		return *c
	case *CollisionCondition:
		return *c
	case *OffroadCondition:
		return *c
	case *TimeHeadwayCondition:
		return *c
	case *TimeToCollisionCondition:
		return *c
	case *AccelerationCondition:
		return *c
	case *StandStillCondition:
		return *c
	case *SpeedCondition:
		return *c
	case *RelativeSpeedCondition:
		return *c
	case *TraveledDistanceCondition:
		return *c
	case *ReachPositionCondition:
		return *c
	case *DistanceCondition:
		return *c
	case *RelativeDistanceCondition:
		return *c
	case *ParameterCondition:
		return *c
	case *TimeOfDayCondition:
		return *c
	case *SimulationTimeCondition:
		return *c
	case *StoryboardElementStateCondition:
		return *c
	case *UserDefinedValueCondition:
		return *c
	case *TrafficSignalCondition:
		return *c
	case *TrafficSignalControllerCondition:
		return *c
	}
	return nil
}
