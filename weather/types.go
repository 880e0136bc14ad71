package main

// Input types for the weather tools
type WeatherLiveInput struct {
	City string `json:"city" jsonschema:"the adcode of the city to query, e.g. 110000 for Beijing"`
}

type WeatherForecastInput struct {
	City string `json:"city" jsonschema:"the adcode of the city to query, e.g. 110000 for Beijing"`
}

// WeatherLiveOutput is the current-conditions snapshot for a city. Values are
// passed through from the provider verbatim, no unit conversion.
type WeatherLiveOutput struct {
	Province      string `json:"province" jsonschema:"province name"`
	City          string `json:"city" jsonschema:"city name"`
	Adcode        string `json:"adcode" jsonschema:"administrative region code"`
	Weather       string `json:"weather" jsonschema:"weather condition text"`
	Temperature   string `json:"temperature" jsonschema:"temperature in degrees Celsius"`
	WindDirection string `json:"wind_direction" jsonschema:"wind direction"`
	WindPower     string `json:"wind_power" jsonschema:"wind power level"`
	Humidity      string `json:"humidity" jsonschema:"relative humidity percentage"`
	ReportTime    string `json:"report_time" jsonschema:"time the data was published"`
}

// ForecastEntry is one day of the multi-day forecast.
type ForecastEntry struct {
	Date         string `json:"date" jsonschema:"forecast date"`
	Week         string `json:"week" jsonschema:"day of week"`
	DayWeather   string `json:"day_weather" jsonschema:"daytime weather condition"`
	NightWeather string `json:"night_weather" jsonschema:"nighttime weather condition"`
	DayTemp      string `json:"day_temp" jsonschema:"daytime temperature in degrees Celsius"`
	NightTemp    string `json:"night_temp" jsonschema:"nighttime temperature in degrees Celsius"`
	DayWind      string `json:"day_wind" jsonschema:"daytime wind direction"`
	NightWind    string `json:"night_wind" jsonschema:"nighttime wind direction"`
	DayPower     string `json:"day_power" jsonschema:"daytime wind power level"`
	NightPower   string `json:"night_power" jsonschema:"nighttime wind power level"`
}

// WeatherForecastOutput carries the forecast entries in the provider's order,
// which is chronological by date.
type WeatherForecastOutput struct {
	Province   string          `json:"province" jsonschema:"province name"`
	City       string          `json:"city" jsonschema:"city name"`
	Adcode     string          `json:"adcode" jsonschema:"administrative region code"`
	ReportTime string          `json:"report_time" jsonschema:"time the forecast was published"`
	Casts      []ForecastEntry `json:"casts" jsonschema:"daily forecast entries in chronological order"`
}
