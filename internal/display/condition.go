package display

import "strings"

// Condition is the icon category shown next to a forecast period.
type Condition string

const (
	ConditionSunny        Condition = "sunny"
	ConditionPartlyCloudy Condition = "partly-cloudy"
	ConditionCloudy       Condition = "cloudy"
	ConditionSnow         Condition = "snow"
	ConditionRain         Condition = "rain"
	ConditionNone         Condition = "none"
)

// ConditionRule maps a set of case-sensitive substrings to a Condition.
type ConditionRule struct {
	Substrings []string
	Condition  Condition
}

// Matches reports whether shortForecast contains any of the rule's substrings.
func (r ConditionRule) Matches(shortForecast string) bool {
	for _, sub := range r.Substrings {
		if strings.Contains(shortForecast, sub) {
			return true
		}
	}
	return false
}

// ConditionRules is evaluated top to bottom and the first match wins.
//
// "Sunny" sits above "Mostly Sunny", so "Mostly Sunny" classifies as sunny and
// the partly-cloudy rule only catches it through "Partly Cloudy". Snow is
// checked before rain so "Snow Showers" stays snow. Reordering this table
// changes classification.
var ConditionRules = []ConditionRule{
	{Substrings: []string{"Sunny"}, Condition: ConditionSunny},
	{Substrings: []string{"Partly Cloudy", "Mostly Sunny"}, Condition: ConditionPartlyCloudy},
	{Substrings: []string{"Cloudy", "Overcast"}, Condition: ConditionCloudy},
	{Substrings: []string{"Snow"}, Condition: ConditionSnow},
	{Substrings: []string{"Rain", "Showers"}, Condition: ConditionRain},
}

// SelectCondition returns the icon category for a short forecast description.
func SelectCondition(shortForecast string) Condition {
	for _, rule := range ConditionRules {
		if rule.Matches(shortForecast) {
			return rule.Condition
		}
	}
	return ConditionNone
}
