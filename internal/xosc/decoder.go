// internal/xosc/decoder.go
package xosc

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/carla-simulator/traffic-generation-editor-sub000/internal/geo"
	"github.com/carla-simulator/traffic-generation-editor-sub000/pkg/core"
)

// ImportResult holds everything a decode recovered from a document.
// Entity IDs are zero until Apply assigns them from the scenario's
// counters.
type ImportResult struct {
	Environment *core.Environment
	EgoVehicles []core.EgoVehicle
	Vehicles    []core.Vehicle
	Pedestrians []core.Pedestrian
	Props       []core.StaticProp

	// Footprints maps the document's entity name to its placement
	// polygon in the map frame.
	Footprints map[string]geom.Polygon

	Report *Report
}

// Decoder extracts entities and the environment from an OpenSCENARIO
// document. Decoding is best-effort: only malformed XML is a hard
// error, everything else degrades to report messages.
type Decoder struct {
	logger *slog.Logger
}

func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{logger: logger}
}

// DecodeFile reads and decodes path.
func (d *Decoder) DecodeFile(path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return d.Decode(data)
}

// Decode parses the document and recovers entities and the environment.
func (d *Decoder) Decode(data []byte) (*ImportResult, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenSCENARIO document: %w", err)
	}

	result := &ImportResult{
		Footprints: make(map[string]geom.Polygon),
		Report:     &Report{},
	}

	result.Environment = d.decodeEnvironment(&doc, result.Report)

	// init actions joined back to their entity by entityRef; the last
	// Private block for a name wins
	privates := make(map[string]Private)
	for _, p := range doc.Storyboard.Init.Actions.Privates {
		privates[p.EntityRef] = p
	}

	for _, obj := range doc.Entities.Objects {
		init := initState(privates[obj.Name], result.Report, obj.Name)

		switch {
		case obj.Vehicle != nil:
			if vehicleType(obj.Vehicle) == "ego_vehicle" {
				result.EgoVehicles = append(result.EgoVehicles, core.EgoVehicle{
					Model:       core.DisplayName(core.KindEgoVehicle, obj.Vehicle.Name),
					Position:    init.position,
					Orientation: init.heading,
					InitSpeed:   init.speed,
					Agent:       init.agent,
					AgentCamera: init.agentCamera,
				})
				result.Footprints[obj.Name] = geo.Footprint(core.KindEgoVehicle, init.position, init.heading)
			} else {
				result.Vehicles = append(result.Vehicles, core.Vehicle{
					Model:       core.DisplayName(core.KindVehicle, obj.Vehicle.Name),
					Position:    init.position,
					Orientation: init.heading,
					InitSpeed:   init.speed,
				})
				result.Footprints[obj.Name] = geo.Footprint(core.KindVehicle, init.position, init.heading)
			}

		case obj.Pedestrian != nil:
			result.Pedestrians = append(result.Pedestrians, core.Pedestrian{
				Model:       core.DisplayName(core.KindPedestrian, obj.Pedestrian.Model),
				Position:    init.position,
				Orientation: init.heading,
				InitSpeed:   init.speed,
			})
			result.Footprints[obj.Name] = geo.Footprint(core.KindPedestrian, init.position, init.heading)

		case obj.MiscObject != nil:
			result.Props = append(result.Props, core.StaticProp{
				Model:       core.DisplayName(core.KindStaticProp, obj.MiscObject.Name),
				Position:    init.position,
				Orientation: init.heading,
				Physics:     propertyValue(obj.MiscObject.Properties, "physics") == "on",
			})
			result.Footprints[obj.Name] = geo.Footprint(core.KindStaticProp, init.position, init.heading)

		default:
			result.Report.Warnf("entity %q has no Vehicle, Pedestrian or MiscObject element, skipped", obj.Name)
		}
	}

	documentsDecoded().Add(context.Background(), 1)
	d.logger.Info("Scenario decoded",
		"egos", len(result.EgoVehicles),
		"vehicles", len(result.Vehicles),
		"pedestrians", len(result.Pedestrians),
		"props", len(result.Props),
		"warnings", len(result.Report.Messages))
	return result, nil
}

// Apply inserts the decoded records into the scenario. Entities get
// fresh IDs from the scenario counters; the environment replaces any
// existing row.
func (d *Decoder) Apply(s *core.Scenario, result *ImportResult) {
	if result.Environment != nil {
		s.SetEnvironment(*result.Environment)
	}
	for _, e := range result.EgoVehicles {
		s.AddEgoVehicle(e)
	}
	for _, v := range result.Vehicles {
		s.AddVehicle(v)
	}
	for _, p := range result.Pedestrians {
		s.AddPedestrian(p)
	}
	for _, p := range result.Props {
		s.AddProp(p)
	}
}

func (d *Decoder) decodeEnvironment(doc *Document, report *Report) *core.Environment {
	// like the Private rejoin, the last matching action wins
	var result *core.Environment
	for _, g := range doc.Storyboard.Init.Actions.GlobalActions {
		if g.Environment == nil {
			continue
		}
		env := g.Environment.Environment
		result = &core.Environment{
			DateTime:         env.TimeOfDay.DateTime,
			DateTimeAnimated: env.TimeOfDay.Animation == "true",
			CloudState:       env.Weather.CloudState,
			FogRange:         parseFloat(env.Weather.Fog.VisualRange, "fog visualRange", report),
			SunIntensity:     parseFloat(env.Weather.Sun.Intensity, "sun intensity", report),
			SunAzimuth:       parseFloat(env.Weather.Sun.Azimuth, "sun azimuth", report),
			SunElevation:     parseFloat(env.Weather.Sun.Elevation, "sun elevation", report),
			PrecipType:       env.Weather.Precipitation.PrecipitationType,
			PrecipIntensity:  parseFloat(env.Weather.Precipitation.Intensity, "precipitation intensity", report),
		}
	}
	if result == nil {
		report.Warnf("document has no EnvironmentAction, environment left unchanged")
	}
	return result
}

// entityInit is the initial state recovered from an entity's Private
// actions.
type entityInit struct {
	position    core.Position3D
	heading     float64
	speed       string
	agent       string
	agentCamera bool
}

func initState(p Private, report *Report, name string) entityInit {
	var state entityInit
	teleportSeen := false

	for _, action := range p.Actions {
		switch {
		case action.Teleport != nil:
			if w := action.Teleport.Position.World; w != nil {
				state.position = core.Position3D{
					X: parseFloat(w.X, "teleport x", report),
					Y: parseFloat(w.Y, "teleport y", report),
					Z: parseFloat(w.Z, "teleport z", report),
				}
				state.heading = parseFloat(w.H, "teleport h", report)
				teleportSeen = true
			}

		case action.Longitudinal != nil:
			if speed := action.Longitudinal.Speed; speed != nil && speed.Target.Absolute != nil {
				// keep the raw string so "$Param" references survive
				state.speed = speed.Target.Absolute.Value
			}

		case action.Controller != nil:
			if assign := action.Controller.Assign; assign != nil {
				state.agent = propertyValue(assign.Controller.Properties, "module")
				state.agentCamera = propertyValue(assign.Controller.Properties, "attach_camera") == "true"
			}
		}
	}

	if !teleportSeen {
		report.Warnf("entity %q has no TeleportAction, placed at origin", name)
	}
	return state
}

func propertyValue(props Properties, name string) string {
	for _, p := range props.Properties {
		if p.Name == name {
			return p.Value
		}
	}
	return ""
}

func parseFloat(raw, field string, report *Report) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		report.Warnf("invalid %s value %q, using 0", field, raw)
		return 0
	}
	return v
}

func vehicleType(v *Vehicle) string {
	return propertyValue(v.Properties, "type")
}
