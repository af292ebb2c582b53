package sqlite

import (
	"encoding/json"
	"fmt"

	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

func toRows(s *core.Scenario) (*scenarioRows, error) {
	rows := &scenarioRows{
		project: projectRow{ID: 1, RoadNetworkPath: s.RoadNetworkPath},
	}

	for _, e := range s.EgoVehicles {
		rows.egos = append(rows.egos, egoVehicleRow{
			EntityID: e.ID, Model: e.Model,
			X: e.Position.X, Y: e.Position.Y, Z: e.Position.Z,
			Orientation: e.Orientation, InitSpeed: e.InitSpeed,
			Agent: e.Agent, AgentCamera: e.AgentCamera,
		})
	}
	for _, v := range s.Vehicles {
		rows.vehicles = append(rows.vehicles, vehicleRow{
			EntityID: v.ID, Model: v.Model,
			X: v.Position.X, Y: v.Position.Y, Z: v.Position.Z,
			Orientation: v.Orientation, InitSpeed: v.InitSpeed,
		})
	}
	for _, p := range s.Pedestrians {
		rows.pedestrians = append(rows.pedestrians, pedestrianRow{
			EntityID: p.ID, Model: p.Model,
			X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
			Orientation: p.Orientation, InitSpeed: p.InitSpeed,
		})
	}
	for _, p := range s.Props {
		rows.props = append(rows.props, propRow{
			EntityID: p.ID, Model: p.Model,
			X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z,
			Orientation: p.Orientation, Physics: p.Physics,
		})
	}

	for _, m := range s.Maneuvers {
		start, err := json.Marshal(m.StartTrigger)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal start trigger of maneuver %d: %w", m.ID, err)
		}
		row := maneuverRow{
			ManeuverID:         m.ID,
			Entity:             m.Entity,
			Type:               string(m.Type),
			EntityManeuverType: string(m.EntityManeuverType),
			StartTrigger:       string(start),
			StopTriggerEnabled: m.StopTriggerEnabled,
			GlobalActionType:   string(m.GlobalActionType),
			TrafficLightID:     m.TrafficLightID,
			TrafficLightState:  m.TrafficLightState,
		}
		if m.StopTrigger != nil {
			stop, err := json.Marshal(*m.StopTrigger)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal stop trigger of maneuver %d: %w", m.ID, err)
			}
			row.StopTrigger = string(stop)
		}
		rows.maneuvers = append(rows.maneuvers, row)
	}

	for _, w := range s.Waypoints {
		rows.waypoints = append(rows.waypoints, waypointRow{
			ManeuverID: w.ManeuverID, Entity: w.Entity, SequenceNo: w.SequenceNo,
			X: w.Position.X, Y: w.Position.Y, Z: w.Position.Z,
			Orientation: w.Orientation, RouteStrategy: w.RouteStrategy,
		})
	}

	for _, a := range s.LongitudinalActions {
		payload, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal longitudinal action of maneuver %d: %w", a.ManeuverID, err)
		}
		rows.longitudinals = append(rows.longitudinals, longitudinalRow{
			ManeuverID: a.ManeuverID, Payload: string(payload),
		})
	}
	for _, a := range s.LateralActions {
		payload, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal lateral action of maneuver %d: %w", a.ManeuverID, err)
		}
		rows.laterals = append(rows.laterals, lateralRow{
			ManeuverID: a.ManeuverID, Payload: string(payload),
		})
	}

	for _, env := range s.Environments {
		rows.environments = append(rows.environments, environmentRow{
			DateTime: env.DateTime, DateTimeAnimated: env.DateTimeAnimated,
			CloudState: env.CloudState, FogRange: env.FogRange,
			SunIntensity: env.SunIntensity, SunAzimuth: env.SunAzimuth,
			SunElevation: env.SunElevation,
			PrecipType:   env.PrecipType, PrecipIntensity: env.PrecipIntensity,
		})
	}
	for _, c := range s.Criteria {
		rows.criteria = append(rows.criteria, criterionRow{
			ConditionName: c.ConditionName, Delay: c.Delay,
			ConditionEdge: string(c.ConditionEdge), ParameterRef: c.ParameterRef,
			Value: c.Value, Rule: string(c.Rule),
		})
	}
	for _, p := range s.Parameters {
		rows.parameters = append(rows.parameters, parameterRow{
			Name: p.Name, Type: p.Type, Value: p.Value,
		})
	}

	return rows, nil
}

func fromRows(rows *scenarioRows) (*core.Scenario, error) {
	s := core.NewScenario(rows.project.RoadNetworkPath)

	for _, r := range rows.egos {
		s.EgoVehicles = append(s.EgoVehicles, core.EgoVehicle{
			ID: r.EntityID, Model: r.Model,
			Position:    core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Orientation: r.Orientation, InitSpeed: r.InitSpeed,
			Agent: r.Agent, AgentCamera: r.AgentCamera,
		})
	}
	for _, r := range rows.vehicles {
		s.Vehicles = append(s.Vehicles, core.Vehicle{
			ID: r.EntityID, Model: r.Model,
			Position:    core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Orientation: r.Orientation, InitSpeed: r.InitSpeed,
		})
	}
	for _, r := range rows.pedestrians {
		s.Pedestrians = append(s.Pedestrians, core.Pedestrian{
			ID: r.EntityID, Model: r.Model,
			Position:    core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Orientation: r.Orientation, InitSpeed: r.InitSpeed,
		})
	}
	for _, r := range rows.props {
		s.Props = append(s.Props, core.StaticProp{
			ID: r.EntityID, Model: r.Model,
			Position:    core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Orientation: r.Orientation, Physics: r.Physics,
		})
	}

	for _, r := range rows.maneuvers {
		m := core.Maneuver{
			ID:                 r.ManeuverID,
			Entity:             r.Entity,
			Type:               core.ManeuverType(r.Type),
			EntityManeuverType: core.EntityManeuverType(r.EntityManeuverType),
			StopTriggerEnabled: r.StopTriggerEnabled,
			GlobalActionType:   core.GlobalActionType(r.GlobalActionType),
			TrafficLightID:     r.TrafficLightID,
			TrafficLightState:  r.TrafficLightState,
		}
		if err := json.Unmarshal([]byte(r.StartTrigger), &m.StartTrigger); err != nil {
			return nil, fmt.Errorf("failed to unmarshal start trigger of maneuver %d: %w", r.ManeuverID, err)
		}
		if r.StopTrigger != "" {
			var stop core.Trigger
			if err := json.Unmarshal([]byte(r.StopTrigger), &stop); err != nil {
				return nil, fmt.Errorf("failed to unmarshal stop trigger of maneuver %d: %w", r.ManeuverID, err)
			}
			m.StopTrigger = &stop
		}
		s.Maneuvers = append(s.Maneuvers, m)
	}

	for _, r := range rows.waypoints {
		s.Waypoints = append(s.Waypoints, core.Waypoint{
			ManeuverID: r.ManeuverID, Entity: r.Entity, SequenceNo: r.SequenceNo,
			Position:    core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Orientation: r.Orientation, RouteStrategy: r.RouteStrategy,
		})
	}

	for _, r := range rows.longitudinals {
		var a core.LongitudinalAction
		if err := json.Unmarshal([]byte(r.Payload), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal longitudinal action of maneuver %d: %w", r.ManeuverID, err)
		}
		s.LongitudinalActions = append(s.LongitudinalActions, a)
	}
	for _, r := range rows.laterals {
		var a core.LateralAction
		if err := json.Unmarshal([]byte(r.Payload), &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal lateral action of maneuver %d: %w", r.ManeuverID, err)
		}
		s.LateralActions = append(s.LateralActions, a)
	}

	for _, r := range rows.environments {
		s.Environments = append(s.Environments, core.Environment{
			DateTime: r.DateTime, DateTimeAnimated: r.DateTimeAnimated,
			CloudState: r.CloudState, FogRange: r.FogRange,
			SunIntensity: r.SunIntensity, SunAzimuth: r.SunAzimuth,
			SunElevation: r.SunElevation,
			PrecipType:   r.PrecipType, PrecipIntensity: r.PrecipIntensity,
		})
	}
	for _, r := range rows.criteria {
		s.Criteria = append(s.Criteria, core.EndEvaluationCriterion{
			ConditionName: r.ConditionName, Delay: r.Delay,
			ConditionEdge: core.ConditionEdge(r.ConditionEdge),
			ParameterRef:  r.ParameterRef, Value: r.Value,
			Rule: core.Rule(r.Rule),
		})
	}
	for _, r := range rows.parameters {
		s.Parameters = append(s.Parameters, core.Parameter{
			Name: r.Name, Type: r.Type, Value: r.Value,
		})
	}

	return s, nil
}
