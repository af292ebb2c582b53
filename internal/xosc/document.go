// internal/xosc/document.go
//
// XML document model for ASAM OpenSCENARIO 1.0. Element structs mirror
// the schema names one to one; numeric attributes are kept as strings so
// the codec controls formatting and round-trips values exactly.
// Polymorphic schema choices (the one-of condition and action groups)
// are pointer fields — encoding/xml skips nil pointers, so exactly the
// set fields appear in the output.
package xosc

import "encoding/xml"

// Document is the OpenSCENARIO root element.
type Document struct {
	XMLName               xml.Name              `xml:"OpenSCENARIO"`
	FileHeader            FileHeader            `xml:"FileHeader"`
	ParameterDeclarations ParameterDeclarations `xml:"ParameterDeclarations"`
	CatalogLocations      struct{}              `xml:"CatalogLocations"`
	RoadNetwork           RoadNetwork           `xml:"RoadNetwork"`
	Entities              Entities              `xml:"Entities"`
	Storyboard            Storyboard            `xml:"Storyboard"`
}

type FileHeader struct {
	RevMajor    string `xml:"revMajor,attr"`
	RevMinor    string `xml:"revMinor,attr"`
	Date        string `xml:"date,attr"`
	Description string `xml:"description,attr"`
	Author      string `xml:"author,attr"`
}

type ParameterDeclarations struct {
	Declarations []ParameterDeclaration `xml:"ParameterDeclaration"`
}

type ParameterDeclaration struct {
	Name          string `xml:"name,attr"`
	ParameterType string `xml:"parameterType,attr"`
	Value         string `xml:"value,attr"`
}

type RoadNetwork struct {
	LogicFile      FileRef `xml:"LogicFile"`
	SceneGraphFile FileRef `xml:"SceneGraphFile"`
}

type FileRef struct {
	Filepath string `xml:"filepath,attr"`
}

// Entities

type Entities struct {
	Objects []ScenarioObject `xml:"ScenarioObject"`
}

type ScenarioObject struct {
	Name       string      `xml:"name,attr"`
	Vehicle    *Vehicle    `xml:"Vehicle"`
	Pedestrian *Pedestrian `xml:"Pedestrian"`
	MiscObject *MiscObject `xml:"MiscObject"`
}

type Vehicle struct {
	Name                  string      `xml:"name,attr"`
	VehicleCategory       string      `xml:"vehicleCategory,attr"`
	ParameterDeclarations struct{}    `xml:"ParameterDeclarations"`
	Performance           Performance `xml:"Performance"`
	BoundingBox           BoundingBox `xml:"BoundingBox"`
	Axles                 Axles       `xml:"Axles"`
	Properties            Properties  `xml:"Properties"`
}

type Pedestrian struct {
	Model                 string      `xml:"model,attr"`
	Mass                  string      `xml:"mass,attr"`
	Name                  string      `xml:"name,attr"`
	PedestrianCategory    string      `xml:"pedestrianCategory,attr"`
	ParameterDeclarations struct{}    `xml:"ParameterDeclarations"`
	BoundingBox           BoundingBox `xml:"BoundingBox"`
	Properties            Properties  `xml:"Properties"`
}

type MiscObject struct {
	MiscObjectCategory    string      `xml:"miscObjectCategory,attr"`
	Mass                  string      `xml:"mass,attr"`
	Name                  string      `xml:"name,attr"`
	ParameterDeclarations struct{}    `xml:"ParameterDeclarations"`
	BoundingBox           BoundingBox `xml:"BoundingBox"`
	Properties            Properties  `xml:"Properties"`
}

type Performance struct {
	MaxSpeed        string `xml:"maxSpeed,attr"`
	MaxAcceleration string `xml:"maxAcceleration,attr"`
	MaxDeceleration string `xml:"maxDeceleration,attr"`
}

type BoundingBox struct {
	Center     Center     `xml:"Center"`
	Dimensions Dimensions `xml:"Dimensions"`
}

type Center struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
	Z string `xml:"z,attr"`
}

type Dimensions struct {
	Width  string `xml:"width,attr"`
	Length string `xml:"length,attr"`
	Height string `xml:"height,attr"`
}

type Axles struct {
	FrontAxle Axle `xml:"FrontAxle"`
	RearAxle  Axle `xml:"RearAxle"`
}

type Axle struct {
	MaxSteering   string `xml:"maxSteering,attr"`
	WheelDiameter string `xml:"wheelDiameter,attr"`
	TrackWidth    string `xml:"trackWidth,attr"`
	PositionX     string `xml:"positionX,attr"`
	PositionZ     string `xml:"positionZ,attr"`
}

type Properties struct {
	Properties []Property `xml:"Property"`
}

type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Storyboard

type Storyboard struct {
	Init        Init     `xml:"Init"`
	Story       Story    `xml:"Story"`
	StopTrigger TriggerE `xml:"StopTrigger"`
}

type Init struct {
	Actions InitActions `xml:"Actions"`
}

type InitActions struct {
	GlobalActions []GlobalAction `xml:"GlobalAction"`
	Privates      []Private      `xml:"Private"`
}

type GlobalAction struct {
	Environment    *EnvironmentAction    `xml:"EnvironmentAction"`
	Infrastructure *InfrastructureAction `xml:"InfrastructureAction"`
}

type EnvironmentAction struct {
	Environment Environment `xml:"Environment"`
}

type Environment struct {
	Name          string        `xml:"name,attr"`
	TimeOfDay     TimeOfDay     `xml:"TimeOfDay"`
	Weather       Weather       `xml:"Weather"`
	RoadCondition RoadCondition `xml:"RoadCondition"`
}

type TimeOfDay struct {
	Animation string `xml:"animation,attr"`
	DateTime  string `xml:"dateTime,attr"`
}

type Weather struct {
	CloudState    string        `xml:"cloudState,attr"`
	Sun           Sun           `xml:"Sun"`
	Fog           Fog           `xml:"Fog"`
	Precipitation Precipitation `xml:"Precipitation"`
}

type Sun struct {
	Intensity string `xml:"intensity,attr"`
	Azimuth   string `xml:"azimuth,attr"`
	Elevation string `xml:"elevation,attr"`
}

type Fog struct {
	VisualRange string `xml:"visualRange,attr"`
}

type Precipitation struct {
	PrecipitationType string `xml:"precipitationType,attr"`
	Intensity         string `xml:"intensity,attr"`
}

type RoadCondition struct {
	FrictionScaleFactor string `xml:"frictionScaleFactor,attr"`
}

type InfrastructureAction struct {
	TrafficSignal TrafficSignalAction `xml:"TrafficSignalAction"`
}

type TrafficSignalAction struct {
	State *TrafficSignalStateAction `xml:"TrafficSignalStateAction"`
}

type TrafficSignalStateAction struct {
	Name  string `xml:"name,attr"`
	State string `xml:"state,attr"`
}

type Private struct {
	EntityRef string          `xml:"entityRef,attr"`
	Actions   []PrivateAction `xml:"PrivateAction"`
}

// PrivateAction is the one-of action group; exactly one field is set.
type PrivateAction struct {
	Teleport     *TeleportAction         `xml:"TeleportAction"`
	Controller   *ControllerAction       `xml:"ControllerAction"`
	Longitudinal *LongitudinalActionNode `xml:"LongitudinalAction"`
	Lateral      *LateralActionNode      `xml:"LateralAction"`
	Routing      *RoutingAction          `xml:"RoutingAction"`
}

type TeleportAction struct {
	Position Position `xml:"Position"`
}

type Position struct {
	World *WorldPosition `xml:"WorldPosition"`
}

type WorldPosition struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
	Z string `xml:"z,attr"`
	H string `xml:"h,attr"`
}

type ControllerAction struct {
	Assign   *AssignControllerAction        `xml:"AssignControllerAction"`
	Override *OverrideControllerValueAction `xml:"OverrideControllerValueAction"`
}

type AssignControllerAction struct {
	Controller Controller `xml:"Controller"`
}

type Controller struct {
	Name       string     `xml:"name,attr"`
	Properties Properties `xml:"Properties"`
}

type OverrideControllerValueAction struct {
	Throttle      OverrideValue `xml:"Throttle"`
	Brake         OverrideValue `xml:"Brake"`
	Clutch        OverrideValue `xml:"Clutch"`
	ParkingBrake  OverrideValue `xml:"ParkingBrake"`
	SteeringWheel OverrideValue `xml:"SteeringWheel"`
	Gear          OverrideValue `xml:"Gear"`
}

type OverrideValue struct {
	Active string `xml:"active,attr"`
	Value  string `xml:"value,attr"`
}

type LongitudinalActionNode struct {
	Speed    *SpeedAction                `xml:"SpeedAction"`
	Distance *LongitudinalDistanceAction `xml:"LongitudinalDistanceAction"`
}

type SpeedAction struct {
	Dynamics TransitionDynamics `xml:"SpeedActionDynamics"`
	Target   SpeedActionTarget  `xml:"SpeedActionTarget"`
}

type TransitionDynamics struct {
	DynamicsShape     string `xml:"dynamicsShape,attr"`
	Value             string `xml:"value,attr"`
	DynamicsDimension string `xml:"dynamicsDimension,attr"`
}

type SpeedActionTarget struct {
	Relative *RelativeTargetSpeed `xml:"RelativeTargetSpeed"`
	Absolute *AbsoluteTargetSpeed `xml:"AbsoluteTargetSpeed"`
}

type RelativeTargetSpeed struct {
	EntityRef            string `xml:"entityRef,attr"`
	Value                string `xml:"value,attr"`
	SpeedTargetValueType string `xml:"speedTargetValueType,attr"`
	Continuous           string `xml:"continuous,attr"`
}

type AbsoluteTargetSpeed struct {
	Value string `xml:"value,attr"`
}

type LongitudinalDistanceAction struct {
	EntityRef          string              `xml:"entityRef,attr"`
	Distance           string              `xml:"distance,attr"`
	Freespace          string              `xml:"freespace,attr"`
	Continuous         string              `xml:"continuous,attr"`
	DynamicConstraints *DynamicConstraints `xml:"DynamicConstraints"`
}

type DynamicConstraints struct {
	MaxAcceleration string `xml:"maxAcceleration,attr"`
	MaxDeceleration string `xml:"maxDeceleration,attr"`
	MaxSpeed        string `xml:"maxSpeed,attr"`
}

type LateralActionNode struct {
	LaneChange *LaneChangeAction      `xml:"LaneChangeAction"`
	LaneOffset *LaneOffsetAction      `xml:"LaneOffsetAction"`
	Distance   *LateralDistanceAction `xml:"LateralDistanceAction"`
}

type LaneChangeAction struct {
	TargetLaneOffset string             `xml:"targetLaneOffset,attr,omitempty"`
	Dynamics         TransitionDynamics `xml:"LaneChangeActionDynamics"`
	Target           LaneChangeTarget   `xml:"LaneChangeTarget"`
}

type LaneChangeTarget struct {
	Relative *RelativeTargetLane `xml:"RelativeTargetLane"`
	Absolute *AbsoluteTargetLane `xml:"AbsoluteTargetLane"`
}

type RelativeTargetLane struct {
	EntityRef string `xml:"entityRef,attr"`
	Value     string `xml:"value,attr"`
}

type AbsoluteTargetLane struct {
	Value string `xml:"value,attr"`
}

type LaneOffsetAction struct {
	Continuous string                   `xml:"continuous,attr"`
	Dynamics   LaneOffsetActionDynamics `xml:"LaneOffsetActionDynamics"`
	Target     LaneOffsetTarget         `xml:"LaneOffsetTarget"`
}

type LaneOffsetActionDynamics struct {
	MaxLateralAcc string `xml:"maxLateralAcc,attr"`
	DynamicsShape string `xml:"dynamicsShape,attr"`
}

type LaneOffsetTarget struct {
	Relative *RelativeTargetLaneOffset `xml:"RelativeTargetLaneOffset"`
	Absolute *AbsoluteTargetLaneOffset `xml:"AbsoluteTargetLaneOffset"`
}

type RelativeTargetLaneOffset struct {
	EntityRef string `xml:"entityRef,attr"`
	Value     string `xml:"value,attr"`
}

type AbsoluteTargetLaneOffset struct {
	Value string `xml:"value,attr"`
}

type LateralDistanceAction struct {
	EntityRef          string              `xml:"entityRef,attr"`
	Distance           string              `xml:"distance,attr"`
	Freespace          string              `xml:"freespace,attr"`
	Continuous         string              `xml:"continuous,attr"`
	DynamicConstraints *DynamicConstraints `xml:"DynamicConstraints"`
}

type RoutingAction struct {
	AssignRoute     *AssignRouteAction     `xml:"AssignRouteAction"`
	AcquirePosition *AcquirePositionAction `xml:"AcquirePositionAction"`
}

type AssignRouteAction struct {
	Route Route `xml:"Route"`
}

type Route struct {
	Name      string          `xml:"name,attr"`
	Closed    string          `xml:"closed,attr"`
	Waypoints []RouteWaypoint `xml:"Waypoint"`
}

type RouteWaypoint struct {
	RouteStrategy string   `xml:"routeStrategy,attr"`
	Position      Position `xml:"Position"`
}

type AcquirePositionAction struct {
	Position Position `xml:"Position"`
}

// Story

type Story struct {
	Name string `xml:"name,attr"`
	Act  Act    `xml:"Act"`
}

type Act struct {
	Name           string          `xml:"name,attr"`
	ManeuverGroups []ManeuverGroup `xml:"ManeuverGroup"`
	StartTrigger   TriggerE        `xml:"StartTrigger"`
	StopTrigger    TriggerE        `xml:"StopTrigger"`
}

type ManeuverGroup struct {
	MaximumExecutionCount string     `xml:"maximumExecutionCount,attr"`
	Name                  string     `xml:"name,attr"`
	Actors                Actors     `xml:"Actors"`
	Maneuvers             []Maneuver `xml:"Maneuver"`
}

type Actors struct {
	SelectTriggeringEntities string      `xml:"selectTriggeringEntities,attr"`
	EntityRefs               []EntityRef `xml:"EntityRef"`
}

type EntityRef struct {
	EntityRef string `xml:"entityRef,attr"`
}

type Maneuver struct {
	Name   string  `xml:"name,attr"`
	Events []Event `xml:"Event"`
}

type Event struct {
	Name         string    `xml:"name,attr"`
	Priority     string    `xml:"priority,attr"`
	Action       Action    `xml:"Action"`
	StartTrigger TriggerE  `xml:"StartTrigger"`
	StopTrigger  *TriggerE `xml:"StopTrigger"`
}

type Action struct {
	Name    string         `xml:"name,attr"`
	Global  *GlobalAction  `xml:"GlobalAction"`
	Private *PrivateAction `xml:"PrivateAction"`
}

// Triggers and conditions

// TriggerE is a StartTrigger/StopTrigger body. The E suffix keeps the
// element struct apart from core.Trigger.
type TriggerE struct {
	ConditionGroups []ConditionGroup `xml:"ConditionGroup"`
}

type ConditionGroup struct {
	Conditions []Condition `xml:"Condition"`
}

type Condition struct {
	Name          string             `xml:"name,attr"`
	Delay         string             `xml:"delay,attr"`
	ConditionEdge string             `xml:"conditionEdge,attr"`
	ByEntity      *ByEntityCondition `xml:"ByEntityCondition"`
	ByValue       *ByValueCondition  `xml:"ByValueCondition"`
}

type ByEntityCondition struct {
	TriggeringEntities TriggeringEntities `xml:"TriggeringEntities"`
	EntityCondition    EntityCondition    `xml:"EntityCondition"`
}

type TriggeringEntities struct {
	Rule       string      `xml:"triggeringEntitiesRule,attr"`
	EntityRefs []EntityRef `xml:"EntityRef"`
}

// EntityCondition is the one-of group of entity-state predicates.
type EntityCondition struct {
	EndOfRoad        *EndOfRoadCondition        `xml:"EndOfRoadCondition"`
	Collision        *CollisionCondition        `xml:"CollisionCondition"`
	Offroad          *OffroadCondition          `xml:"OffroadCondition"`
	TimeHeadway      *TimeHeadwayCondition      `xml:"TimeHeadwayCondition"`
	TimeToCollision  *TimeToCollisionCondition  `xml:"TimeToCollisionCondition"`
	Acceleration     *AccelerationCondition     `xml:"AccelerationCondition"`
	StandStill       *StandStillCondition       `xml:"StandStillCondition"`
	Speed            *SpeedCondition            `xml:"SpeedCondition"`
	RelativeSpeed    *RelativeSpeedCondition    `xml:"RelativeSpeedCondition"`
	TraveledDistance *TraveledDistanceCondition `xml:"TraveledDistanceCondition"`
	ReachPosition    *ReachPositionCondition    `xml:"ReachPositionCondition"`
	Distance         *DistanceCondition         `xml:"DistanceCondition"`
	RelativeDistance *RelativeDistanceCondition `xml:"RelativeDistanceCondition"`
}

type EndOfRoadCondition struct {
	Duration string `xml:"duration,attr"`
}

type CollisionCondition struct {
	EntityRef *EntityRef `xml:"EntityRef"`
}

type OffroadCondition struct {
	Duration string `xml:"duration,attr"`
}

type TimeHeadwayCondition struct {
	EntityRef  string `xml:"entityRef,attr"`
	Value      string `xml:"value,attr"`
	Freespace  string `xml:"freespace,attr"`
	AlongRoute string `xml:"alongRoute,attr"`
	Rule       string `xml:"rule,attr"`
}

type TimeToCollisionCondition struct {
	Value      string                `xml:"value,attr"`
	Freespace  string                `xml:"freespace,attr"`
	AlongRoute string                `xml:"alongRoute,attr"`
	Rule       string                `xml:"rule,attr"`
	Target     TimeToCollisionTarget `xml:"TimeToCollisionConditionTarget"`
}

type TimeToCollisionTarget struct {
	EntityRef EntityRef `xml:"EntityRef"`
}

type AccelerationCondition struct {
	Value string `xml:"value,attr"`
	Rule  string `xml:"rule,attr"`
}

type StandStillCondition struct {
	Duration string `xml:"duration,attr"`
}

type SpeedCondition struct {
	Value string `xml:"value,attr"`
	Rule  string `xml:"rule,attr"`
}

type RelativeSpeedCondition struct {
	EntityRef string `xml:"entityRef,attr"`
	Value     string `xml:"value,attr"`
	Rule      string `xml:"rule,attr"`
}

type TraveledDistanceCondition struct {
	Value string `xml:"value,attr"`
}

type ReachPositionCondition struct {
	EntityRef string   `xml:"entityRef,attr,omitempty"`
	Tolerance string   `xml:"tolerance,attr"`
	Position  Position `xml:"Position"`
}

type DistanceCondition struct {
	Value      string   `xml:"value,attr"`
	Freespace  string   `xml:"freespace,attr"`
	AlongRoute string   `xml:"alongRoute,attr"`
	Rule       string   `xml:"rule,attr"`
	Position   Position `xml:"Position"`
}

type RelativeDistanceCondition struct {
	EntityRef            string `xml:"entityRef,attr"`
	RelativeDistanceType string `xml:"relativeDistanceType,attr"`
	Value                string `xml:"value,attr"`
	Freespace            string `xml:"freespace,attr"`
	Rule                 string `xml:"rule,attr"`
}

// ByValueCondition is the one-of group of value predicates.
type ByValueCondition struct {
	Parameter               *ParameterCondition               `xml:"ParameterCondition"`
	TimeOfDay               *TimeOfDayCondition               `xml:"TimeOfDayCondition"`
	SimulationTime          *SimulationTimeCondition          `xml:"SimulationTimeCondition"`
	StoryboardElementState  *StoryboardElementStateCondition  `xml:"StoryboardElementStateCondition"`
	UserDefinedValue        *UserDefinedValueCondition        `xml:"UserDefinedValueCondition"`
	TrafficSignal           *TrafficSignalCondition           `xml:"TrafficSignalCondition"`
	TrafficSignalController *TrafficSignalControllerCondition `xml:"TrafficSignalControllerCondition"`
}

type ParameterCondition struct {
	ParameterRef string `xml:"parameterRef,attr"`
	Value        string `xml:"value,attr"`
	Rule         string `xml:"rule,attr"`
}

type TimeOfDayCondition struct {
	DateTime string `xml:"dateTime,attr"`
	Rule     string `xml:"rule,attr"`
}

type SimulationTimeCondition struct {
	Value string `xml:"value,attr"`
	Rule  string `xml:"rule,attr"`
}

type StoryboardElementStateCondition struct {
	StoryboardElementType string `xml:"storyboardElementType,attr"`
	StoryboardElementRef  string `xml:"storyboardElementRef,attr"`
	State                 string `xml:"state,attr"`
}

type UserDefinedValueCondition struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Rule  string `xml:"rule,attr"`
}

type TrafficSignalCondition struct {
	Name  string `xml:"name,attr"`
	State string `xml:"state,attr"`
}

type TrafficSignalControllerCondition struct {
	TrafficSignalControllerRef string `xml:"trafficSignalControllerRef,attr"`
	Phase                      string `xml:"phase,attr"`
}
