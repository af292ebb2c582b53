package sqlite

// Row structs mirror the scenario tables. They stay private to this
// package; conversion to and from pkg/core happens in convert.go.
// Trigger payloads are stored as JSON text because their condition is an
// interface-typed union.

type projectRow struct {
	ID              uint `gorm:"primaryKey"`
	RoadNetworkPath string
}

func (projectRow) TableName() string { return "project" }

type egoVehicleRow struct {
	RowID       uint `gorm:"primaryKey;autoIncrement"`
	EntityID    int  `gorm:"index"`
	Model       string
	X, Y, Z     float64
	Orientation float64
	InitSpeed   string
	Agent       string
	AgentCamera bool
}

func (egoVehicleRow) TableName() string { return "ego_vehicles" }

type vehicleRow struct {
	RowID       uint `gorm:"primaryKey;autoIncrement"`
	EntityID    int  `gorm:"index"`
	Model       string
	X, Y, Z     float64
	Orientation float64
	InitSpeed   string
}

func (vehicleRow) TableName() string { return "vehicles" }

type pedestrianRow struct {
	RowID       uint `gorm:"primaryKey;autoIncrement"`
	EntityID    int  `gorm:"index"`
	Model       string
	X, Y, Z     float64
	Orientation float64
	InitSpeed   string
}

func (pedestrianRow) TableName() string { return "pedestrians" }

type propRow struct {
	RowID       uint `gorm:"primaryKey;autoIncrement"`
	EntityID    int  `gorm:"index"`
	Model       string
	X, Y, Z     float64
	Orientation float64
	Physics     bool
}

func (propRow) TableName() string { return "props" }

type maneuverRow struct {
	RowID              uint `gorm:"primaryKey;autoIncrement"`
	ManeuverID         int  `gorm:"index"`
	Entity             string
	Type               string
	EntityManeuverType string
	StartTrigger       string // JSON
	StopTriggerEnabled bool
	StopTrigger        string // JSON, empty when disabled
	GlobalActionType   string
	TrafficLightID     int
	TrafficLightState  string
}

func (maneuverRow) TableName() string { return "maneuvers" }

type waypointRow struct {
	RowID         uint `gorm:"primaryKey;autoIncrement"`
	ManeuverID    int  `gorm:"index"`
	Entity        string
	SequenceNo    int
	X, Y, Z       float64
	Orientation   float64
	RouteStrategy string
}

func (waypointRow) TableName() string { return "waypoints" }

type longitudinalRow struct {
	RowID      uint   `gorm:"primaryKey;autoIncrement"`
	ManeuverID int    `gorm:"index"`
	Payload    string // JSON of core.LongitudinalAction
}

func (longitudinalRow) TableName() string { return "longitudinal_actions" }

type lateralRow struct {
	RowID      uint   `gorm:"primaryKey;autoIncrement"`
	ManeuverID int    `gorm:"index"`
	Payload    string // JSON of core.LateralAction
}

func (lateralRow) TableName() string { return "lateral_actions" }

type environmentRow struct {
	RowID            uint `gorm:"primaryKey;autoIncrement"`
	DateTime         string
	DateTimeAnimated bool
	CloudState       string
	FogRange         float64
	SunIntensity     float64
	SunAzimuth       float64
	SunElevation     float64
	PrecipType       string
	PrecipIntensity  float64
}

func (environmentRow) TableName() string { return "environments" }

type criterionRow struct {
	RowID         uint `gorm:"primaryKey;autoIncrement"`
	ConditionName string
	Delay         float64
	ConditionEdge string
	ParameterRef  string
	Value         float64
	Rule          string
}

func (criterionRow) TableName() string { return "criteria" }

type parameterRow struct {
	RowID uint   `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"uniqueIndex"`
	Type  string
	Value string
}

func (parameterRow) TableName() string { return "parameters" }

// scenarioRows bundles one full project for conversion.
type scenarioRows struct {
	project       projectRow
	egos          []egoVehicleRow
	vehicles      []vehicleRow
	pedestrians   []pedestrianRow
	props         []propRow
	maneuvers     []maneuverRow
	waypoints     []waypointRow
	longitudinals []longitudinalRow
	laterals      []lateralRow
	environments  []environmentRow
	criteria      []criterionRow
	parameters    []parameterRow
}
