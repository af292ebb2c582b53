// pkg/core/catalog.go
package core

// The vehicle/pedestrian/prop catalogs map the display names offered in the
// editor to CARLA blueprint IDs. The simulator only understands the
// blueprint ID; scenario records store the display name.

var vehicleCatalog = map[string]string{
	"Audi A2":          "vehicle.audi.a2",
	"Audi eTron":       "vehicle.audi.etron",
	"Audi TT":          "vehicle.audi.tt",
	"BMW Grandtourer":  "vehicle.bmw.grandtourer",
	"Chevrolet Impala": "vehicle.chevrolet.impala",
	"Citroen C3":       "vehicle.citroen.c3",
	"Dodge Charger":    "vehicle.dodge.charger_police",
	"Ford Mustang":     "vehicle.ford.mustang",
	"Jeep Wrangler":    "vehicle.jeep.wrangler_rubicon",
	"Lincoln MKZ":      "vehicle.lincoln.mkz_2017",
	"Mercedes Coupe":   "vehicle.mercedes.coupe",
	"Mini Cooper ST":   "vehicle.mini.cooper_s",
	"Nissan Micra":     "vehicle.nissan.micra",
	"Nissan Patrol":    "vehicle.nissan.patrol",
	"Seat Leon":        "vehicle.seat.leon",
	"Tesla Model 3":    "vehicle.tesla.model3",
	"Toyota Prius":     "vehicle.toyota.prius",
	"Volkswagen T2":    "vehicle.volkswagen.t2",
	"Kawasaki Ninja":   "vehicle.kawasaki.ninja",
	"Harley Davidson":  "vehicle.harley-davidson.low_rider",
	"Gazelle Omafiets": "vehicle.gazelle.omafiets",
}

var pedestrianCatalog = map[string]string{
	"Walker 0001": "walker.pedestrian.0001",
	"Walker 0002": "walker.pedestrian.0002",
	"Walker 0003": "walker.pedestrian.0003",
	"Walker 0004": "walker.pedestrian.0004",
	"Walker 0005": "walker.pedestrian.0005",
	"Walker 0006": "walker.pedestrian.0006",
	"Walker 0007": "walker.pedestrian.0007",
	"Walker 0008": "walker.pedestrian.0008",
	"Walker 0009": "walker.pedestrian.0009",
	"Walker 0010": "walker.pedestrian.0010",
}

var propCatalog = map[string]string{
	"Barrel":          "static.prop.barrel",
	"Street Barrier":  "static.prop.streetbarrier",
	"Traffic Cone":    "static.prop.trafficcone01",
	"Traffic Warning": "static.prop.trafficwarning",
	"Garden Chair":    "static.prop.plasticchair",
	"Container":       "static.prop.container",
	"Box":             "static.prop.box01",
	"Bench":           "static.prop.bench01",
	"Vending Machine": "static.prop.vendingmachine",
}

// BlueprintID maps a display name to the simulator blueprint ID for the
// given entity kind. Unknown names pass through unchanged so that
// hand-edited records (or blueprint IDs entered directly) still export.
func BlueprintID(kind EntityKind, displayName string) string {
	var catalog map[string]string
	switch kind {
	case KindEgoVehicle, KindVehicle:
		catalog = vehicleCatalog
	case KindPedestrian:
		catalog = pedestrianCatalog
	case KindStaticProp:
		catalog = propCatalog
	default:
		return displayName
	}
	if id, ok := catalog[displayName]; ok {
		return id
	}
	return displayName
}

// DisplayName performs the reverse catalog lookup, used on import.
// Unknown blueprint IDs pass through unchanged.
func DisplayName(kind EntityKind, blueprintID string) string {
	var catalog map[string]string
	switch kind {
	case KindEgoVehicle, KindVehicle:
		catalog = vehicleCatalog
	case KindPedestrian:
		catalog = pedestrianCatalog
	case KindStaticProp:
		catalog = propCatalog
	default:
		return blueprintID
	}
	for name, id := range catalog {
		if id == blueprintID {
			return name
		}
	}
	return blueprintID
}
