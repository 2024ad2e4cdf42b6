package trip_models

type WeatherCondition string

const (
	WeatherSunny   WeatherCondition = "sunny"
	WeatherCloudy  WeatherCondition = "cloudy"
	WeatherRainy   WeatherCondition = "rainy"
	WeatherUnknown WeatherCondition = "unknown"
)

// WeatherData is one day card: a skeleton carries the dates and an
// unknown condition until the forecast lookup fills in the rest.
type WeatherData struct {
	ID        string           `json:"id"`
	Day       string           `json:"day"`
	Date      string           `json:"date"`
	FullDate  string           `json:"fullDate"`
	TempHigh  *float64         `json:"tempHigh,omitempty"`
	TempLow   *float64         `json:"tempLow,omitempty"`
	Condition WeatherCondition `json:"condition"`
}
