package tools

import "encoding/json"

type weatherReport struct {
	City        json.RawMessage `json:"city,omitempty"`
	Temperature int             `json:"temperature"`
	Unit        string          `json:"unit"`
	Condition   string          `json:"condition"`
}

type timeReport struct {
	City     json.RawMessage `json:"city,omitempty"`
	Time     string          `json:"time"`
	Timezone string          `json:"timezone"`
}

// GetWeather returns a canned forecast for args["city"]. A missing city is
// left out of the payload.
func GetWeather(args map[string]any) string {
	return encode(weatherReport{
		City:        cityField(args),
		Temperature: 22,
		Unit:        "celsius",
		Condition:   "sunny",
	})
}

// GetTime returns a canned local time for args["city"]
func GetTime(args map[string]any) string {
	return encode(timeReport{
		City:     cityField(args),
		Time:     "14:30",
		Timezone: "CET",
	})
}

// cityField encodes args["city"] as given, including an explicit null. It
// returns nil only when the key is absent.
func cityField(args map[string]any) json.RawMessage {
	city, ok := args["city"]
	if !ok {
		return nil
	}
	data, err := json.Marshal(city)
	if err != nil {
		return json.RawMessage("null")
	}
	return data
}

func encode(v any) string {
	data, _ := json.Marshal(v)
	return string(data)
}
