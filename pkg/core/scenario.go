// pkg/core/scenario.go
package core

import "strings"

// Scenario holds all record tables for one editing session. It is the
// model the codec reads from and the importer appends to. The model does
// not enforce cross-references; callers supply valid entity names.
type Scenario struct {
	RoadNetworkPath string `json:"roadNetwork"` // e.g. "Town01"

	EgoVehicles []EgoVehicle `json:"egoVehicles"`
	Vehicles    []Vehicle    `json:"vehicles"`
	Pedestrians []Pedestrian `json:"pedestrians"`
	Props       []StaticProp `json:"props"`

	Maneuvers           []Maneuver           `json:"maneuvers"`
	Waypoints           []Waypoint           `json:"waypoints"`
	LongitudinalActions []LongitudinalAction `json:"longitudinalActions"`
	LateralActions      []LateralAction      `json:"lateralActions"`

	Environments []Environment            `json:"environments"` // singleton by convention
	Criteria     []EndEvaluationCriterion `json:"criteria"`
	Parameters   []Parameter              `json:"parameters"`
}

// NewScenario returns an empty scenario for the given road network.
func NewScenario(roadNetwork string) *Scenario {
	return &Scenario{RoadNetworkPath: roadNetwork}
}

// nextID returns 1 for an empty id list, else max+1. Computed fresh from
// the current rows each call, so out-of-band deletes never make the
// sequence go backwards onto a still-used id.
func nextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}

// NextEgoVehicleID returns the id the next ego vehicle row will get.
func (s *Scenario) NextEgoVehicleID() int {
	ids := make([]int, 0, len(s.EgoVehicles))
	for _, e := range s.EgoVehicles {
		ids = append(ids, e.ID)
	}
	return nextID(ids)
}

// NextVehicleID returns the id the next vehicle row will get.
func (s *Scenario) NextVehicleID() int {
	ids := make([]int, 0, len(s.Vehicles))
	for _, v := range s.Vehicles {
		ids = append(ids, v.ID)
	}
	return nextID(ids)
}

// NextPedestrianID returns the id the next pedestrian row will get.
func (s *Scenario) NextPedestrianID() int {
	ids := make([]int, 0, len(s.Pedestrians))
	for _, p := range s.Pedestrians {
		ids = append(ids, p.ID)
	}
	return nextID(ids)
}

// NextPropID returns the id the next static prop row will get.
func (s *Scenario) NextPropID() int {
	ids := make([]int, 0, len(s.Props))
	for _, p := range s.Props {
		ids = append(ids, p.ID)
	}
	return nextID(ids)
}

// NextManeuverID returns the id the next maneuver row will get. All
// maneuver kinds share one sequence.
func (s *Scenario) NextManeuverID() int {
	ids := make([]int, 0, len(s.Maneuvers))
	for _, m := range s.Maneuvers {
		ids = append(ids, m.ID)
	}
	return nextID(ids)
}

// NextWaypointSeq returns 1 if no waypoint row references entityName,
// else max(sequenceNo over matching rows)+1.
func (s *Scenario) NextWaypointSeq(entityName string) int {
	next := 1
	for _, w := range s.Waypoints {
		if w.Entity == entityName && w.SequenceNo >= next {
			next = w.SequenceNo + 1
		}
	}
	return next
}

// AddEgoVehicle assigns the next id and appends the row. Returns the
// assigned id.
func (s *Scenario) AddEgoVehicle(e EgoVehicle) int {
	e.ID = s.NextEgoVehicleID()
	s.EgoVehicles = append(s.EgoVehicles, e)
	return e.ID
}

// AddVehicle assigns the next id and appends the row.
func (s *Scenario) AddVehicle(v Vehicle) int {
	v.ID = s.NextVehicleID()
	s.Vehicles = append(s.Vehicles, v)
	return v.ID
}

// AddPedestrian assigns the next id and appends the row.
func (s *Scenario) AddPedestrian(p Pedestrian) int {
	p.ID = s.NextPedestrianID()
	s.Pedestrians = append(s.Pedestrians, p)
	return p.ID
}

// AddProp assigns the next id and appends the row.
func (s *Scenario) AddProp(p StaticProp) int {
	p.ID = s.NextPropID()
	s.Props = append(s.Props, p)
	return p.ID
}

// AddManeuver assigns the next id and appends the row.
func (s *Scenario) AddManeuver(m Maneuver) int {
	m.ID = s.NextManeuverID()
	s.Maneuvers = append(s.Maneuvers, m)
	return m.ID
}

// AddWaypoint assigns the next per-entity sequence number and appends
// the row. Returns the assigned sequence number.
func (s *Scenario) AddWaypoint(w Waypoint) int {
	w.SequenceNo = s.NextWaypointSeq(w.Entity)
	s.Waypoints = append(s.Waypoints, w)
	return w.SequenceNo
}

// removeByID drops the rows whose id matches. Returns true when a row
// was removed. Freed ids are not reused unless the removed row held the
// table maximum.
func removeByID[R any](rows []R, match func(R) bool) ([]R, bool) {
	out := rows[:0]
	removed := false
	for _, r := range rows {
		if match(r) {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return out, removed
}

// RemoveEgoVehicle deletes the ego vehicle row with the given id.
func (s *Scenario) RemoveEgoVehicle(id int) bool {
	var ok bool
	s.EgoVehicles, ok = removeByID(s.EgoVehicles, func(e EgoVehicle) bool { return e.ID == id })
	return ok
}

// RemoveVehicle deletes the vehicle row with the given id.
func (s *Scenario) RemoveVehicle(id int) bool {
	var ok bool
	s.Vehicles, ok = removeByID(s.Vehicles, func(v Vehicle) bool { return v.ID == id })
	return ok
}

// RemovePedestrian deletes the pedestrian row with the given id.
func (s *Scenario) RemovePedestrian(id int) bool {
	var ok bool
	s.Pedestrians, ok = removeByID(s.Pedestrians, func(p Pedestrian) bool { return p.ID == id })
	return ok
}

// RemoveProp deletes the prop row with the given id.
func (s *Scenario) RemoveProp(id int) bool {
	var ok bool
	s.Props, ok = removeByID(s.Props, func(p StaticProp) bool { return p.ID == id })
	return ok
}

// RemoveManeuver deletes the maneuver row with the given id together
// with its joined waypoint and payload rows.
func (s *Scenario) RemoveManeuver(id int) bool {
	var ok bool
	s.Maneuvers, ok = removeByID(s.Maneuvers, func(m Maneuver) bool { return m.ID == id })
	if !ok {
		return false
	}
	s.Waypoints, _ = removeByID(s.Waypoints, func(w Waypoint) bool { return w.ManeuverID == id })
	s.LongitudinalActions, _ = removeByID(s.LongitudinalActions, func(a LongitudinalAction) bool { return a.ManeuverID == id })
	s.LateralActions, _ = removeByID(s.LateralActions, func(a LateralAction) bool { return a.ManeuverID == id })
	return true
}

// SetEnvironment replaces any existing environment row (clear-then-insert,
// keeping the table a singleton).
func (s *Scenario) SetEnvironment(env Environment) {
	s.Environments = s.Environments[:0]
	s.Environments = append(s.Environments, env)
}

// ManeuverWaypoints returns the waypoint rows joined to the maneuver id,
// ordered by sequence number.
func (s *Scenario) ManeuverWaypoints(maneuverID int) []Waypoint {
	var out []Waypoint
	for _, w := range s.Waypoints {
		if w.ManeuverID == maneuverID {
			out = append(out, w)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].SequenceNo < out[j-1].SequenceNo; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// LongitudinalFor returns the longitudinal payload row for the maneuver,
// or nil if none exists.
func (s *Scenario) LongitudinalFor(maneuverID int) *LongitudinalAction {
	for i := range s.LongitudinalActions {
		if s.LongitudinalActions[i].ManeuverID == maneuverID {
			return &s.LongitudinalActions[i]
		}
	}
	return nil
}

// LateralFor returns the lateral payload row for the maneuver, or nil.
func (s *Scenario) LateralFor(maneuverID int) *LateralAction {
	for i := range s.LateralActions {
		if s.LateralActions[i].ManeuverID == maneuverID {
			return &s.LateralActions[i]
		}
	}
	return nil
}

// EntityNames returns the display names of all entities in export order:
// ego vehicles, vehicles, pedestrians, props.
func (s *Scenario) EntityNames() []string {
	names := make([]string, 0, len(s.EgoVehicles)+len(s.Vehicles)+len(s.Pedestrians)+len(s.Props))
	for _, e := range s.EgoVehicles {
		names = append(names, e.Name())
	}
	for _, v := range s.Vehicles {
		names = append(names, v.Name())
	}
	for _, p := range s.Pedestrians {
		names = append(names, p.Name())
	}
	for _, p := range s.Props {
		names = append(names, p.Name())
	}
	return names
}

// HasEntity reports whether name matches any entity display name.
func (s *Scenario) HasEntity(name string) bool {
	for _, n := range s.EntityNames() {
		if n == name {
			return true
		}
	}
	return false
}

// IsParameterRef reports whether a value field is a "$Name" parameter
// reference rather than a literal.
func IsParameterRef(value string) bool {
	return strings.HasPrefix(value, "$")
}
