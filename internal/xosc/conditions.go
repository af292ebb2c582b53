// internal/xosc/conditions.go
package xosc

import (
	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// encodeTrigger wraps one condition into a single-group trigger body.
func encodeTrigger(name string, t core.Trigger) TriggerE {
	return TriggerE{
		ConditionGroups: []ConditionGroup{
			{Conditions: []Condition{encodeCondition(name, t)}},
		},
	}
}

// encodeCondition lowers the tagged condition union onto the schema's
// ByEntityCondition/ByValueCondition choice. The type switch is the
// closed enumeration: every condition kind sets exactly its attribute
// set, nothing else.
func encodeCondition(name string, t core.Trigger) Condition {
	cond := Condition{
		Name:          name,
		Delay:         fmtFloat(t.Delay),
		ConditionEdge: string(edgeOrDefault(t.Edge)),
	}

	switch c := t.Condition.(type) {
	case core.EndOfRoadCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			EndOfRoad: &EndOfRoadCondition{Duration: fmtFloat(c.Duration)},
		})
	case core.CollisionCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			Collision: &CollisionCondition{EntityRef: &EntityRef{EntityRef: c.TargetEntity}},
		})
	case core.OffroadCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			Offroad: &OffroadCondition{Duration: fmtFloat(c.Duration)},
		})
	case core.TimeHeadwayCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			TimeHeadway: &TimeHeadwayCondition{
				EntityRef:  c.TargetEntity,
				Value:      fmtFloat(c.Value),
				Freespace:  fmtBool(c.Freespace),
				AlongRoute: fmtBool(c.AlongRoute),
				Rule:       string(c.Rule),
			},
		})
	case core.TimeToCollisionCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			TimeToCollision: &TimeToCollisionCondition{
				Value:      fmtFloat(c.Value),
				Freespace:  fmtBool(c.Freespace),
				AlongRoute: fmtBool(c.AlongRoute),
				Rule:       string(c.Rule),
				Target: TimeToCollisionTarget{
					EntityRef: EntityRef{EntityRef: c.TargetEntity},
				},
			},
		})
	case core.AccelerationCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			Acceleration: &AccelerationCondition{
				Value: fmtFloat(c.Value),
				Rule:  string(c.Rule),
			},
		})
	case core.StandStillCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			StandStill: &StandStillCondition{Duration: fmtFloat(c.Duration)},
		})
	case core.SpeedCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			Speed: &SpeedCondition{
				Value: fmtFloat(c.Value),
				Rule:  string(c.Rule),
			},
		})
	case core.RelativeSpeedCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			RelativeSpeed: &RelativeSpeedCondition{
				EntityRef: c.TargetEntity,
				Value:     fmtFloat(c.Value),
				Rule:      string(c.Rule),
			},
		})
	case core.TraveledDistanceCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			TraveledDistance: &TraveledDistanceCondition{Value: fmtFloat(c.Value)},
		})
	case core.ReachPositionCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			ReachPosition: &ReachPositionCondition{
				EntityRef: c.TargetEntity,
				Tolerance: fmtFloat(c.Tolerance),
				Position:  worldPosition(c.Position, c.Heading),
			},
		})
	case core.DistanceCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			Distance: &DistanceCondition{
				Value:      fmtFloat(c.Value),
				Freespace:  fmtBool(c.Freespace),
				AlongRoute: fmtBool(c.AlongRoute),
				Rule:       string(c.Rule),
				Position:   worldPosition(c.Position, 0),
			},
		})
	case core.RelativeDistanceCondition:
		cond.ByEntity = byEntity(t, EntityCondition{
			RelativeDistance: &RelativeDistanceCondition{
				EntityRef:            c.TargetEntity,
				RelativeDistanceType: string(c.DistanceType),
				Value:                fmtFloat(c.Value),
				Freespace:            fmtBool(c.Freespace),
				Rule:                 string(c.Rule),
			},
		})

	case core.ParameterCondition:
		cond.ByValue = &ByValueCondition{
			Parameter: &ParameterCondition{
				ParameterRef: c.ParameterRef,
				Value:        c.Value,
				Rule:         string(c.Rule),
			},
		}
	case core.TimeOfDayCondition:
		cond.ByValue = &ByValueCondition{
			TimeOfDay: &TimeOfDayCondition{
				DateTime: c.DateTime,
				Rule:     string(c.Rule),
			},
		}
	case core.SimulationTimeCondition:
		cond.ByValue = &ByValueCondition{
			SimulationTime: &SimulationTimeCondition{
				Value: fmtFloat(c.Value),
				Rule:  string(c.Rule),
			},
		}
	case core.StoryboardElementStateCondition:
		cond.ByValue = &ByValueCondition{
			StoryboardElementState: &StoryboardElementStateCondition{
				StoryboardElementType: string(c.ElementType),
				StoryboardElementRef:  c.ElementRef,
				State:                 c.State,
			},
		}
	case core.UserDefinedValueCondition:
		cond.ByValue = &ByValueCondition{
			UserDefinedValue: &UserDefinedValueCondition{
				Name:  c.Name,
				Value: c.Value,
				Rule:  string(c.Rule),
			},
		}
	case core.TrafficSignalCondition:
		cond.ByValue = &ByValueCondition{
			TrafficSignal: &TrafficSignalCondition{
				Name:  c.Name,
				State: c.State,
			},
		}
	case core.TrafficSignalControllerCondition:
		cond.ByValue = &ByValueCondition{
			TrafficSignalController: &TrafficSignalControllerCondition{
				TrafficSignalControllerRef: c.ControllerRef,
				Phase:                      c.Phase,
			},
		}
	}

	return cond
}

// byEntity wraps an entity condition with its TriggeringEntities block.
func byEntity(t core.Trigger, ec EntityCondition) *ByEntityCondition {
	return &ByEntityCondition{
		TriggeringEntities: TriggeringEntities{
			Rule:       "any",
			EntityRefs: []EntityRef{{EntityRef: t.TriggeringEntity}},
		},
		EntityCondition: ec,
	}
}

func edgeOrDefault(e core.ConditionEdge) core.ConditionEdge {
	if e == "" {
		return core.EdgeRising
	}
	return e
}

// simulationTimeCondition builds the fixed act-level trigger bodies.
func simulationTimeCondition(name string, value float64) TriggerE {
	return encodeTrigger(name, core.Trigger{
		Edge: core.EdgeRising,
		Condition: core.SimulationTimeCondition{
			Value: value,
			Rule:  core.RuleGreaterThan,
		},
	})
}
