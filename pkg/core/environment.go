// pkg/core/environment.go
package core

// Environment holds the scenario's weather and time of day. The table is a
// singleton: Scenario.SetEnvironment clears before inserting.
type Environment struct {
	DateTime         string  `json:"datetime"` // ISO-8601
	DateTimeAnimated bool    `json:"datetimeAnimated"`
	CloudState       string  `json:"cloudState"`
	FogRange         float64 `json:"fogRange"` // visual range, meters
	SunIntensity     float64 `json:"sunIntensity"`
	SunAzimuth       float64 `json:"sunAzimuth"`
	SunElevation     float64 `json:"sunElevation"`
	PrecipType       string  `json:"precipType"`
	PrecipIntensity  float64 `json:"precipIntensity"`
}

// EndEvaluationCriterion is one post-run pass/fail check, encoded as a
// ParameterCondition in the storyboard stop trigger.
type EndEvaluationCriterion struct {
	ConditionName string        `json:"conditionName"`
	Delay         float64       `json:"delay"`
	ConditionEdge ConditionEdge `json:"conditionEdge"`
	ParameterRef  string        `json:"paramRef"`
	Value         float64       `json:"value"`
	Rule          Rule          `json:"rule"`
}

// Parameter is a named scenario parameter, referenced from trigger
// conditions and init speeds as "$Name".
type Parameter struct {
	Name  string `json:"name"` // unique
	Type  string `json:"type"` // string | integer | double | boolean | dateTime
	Value string `json:"value"`
}
