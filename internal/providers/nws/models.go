package nws

import "time"

// PointAPIResponse is the subset of the /points/{lat},{lon} payload the
// forecast pipeline needs.
type PointAPIResponse struct {
	Id         string `json:"id"`
	Type       string `json:"type"`
	Properties struct {
		Id                  string `json:"@id"`
		Cwa                 string `json:"cwa"`
		ForecastOffice      string `json:"forecastOffice"`
		GridId              string `json:"gridId"`
		GridX               int    `json:"gridX"`
		GridY               int    `json:"gridY"`
		Forecast            string `json:"forecast"`
		ForecastHourly      string `json:"forecastHourly"`
		ForecastGridData    string `json:"forecastGridData"`
		ObservationStations string `json:"observationStations"`
		TimeZone            string `json:"timeZone"`
		RelativeLocation    struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// ForecastAPIResponse is the forecast document returned by the URL found in
// PointAPIResponse.Properties.Forecast.
type ForecastAPIResponse struct {
	Type       string `json:"type"`
	Properties struct {
		Units             string           `json:"units"`
		ForecastGenerator string           `json:"forecastGenerator"`
		GeneratedAt       time.Time        `json:"generatedAt"`
		UpdateTime        time.Time        `json:"updateTime"`
		Periods           []ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

type ForecastPeriod struct {
	Number           int       `json:"number"`
	Name             string    `json:"name"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	IsDaytime        bool      `json:"isDaytime"`
	Temperature      float64   `json:"temperature"`
	TemperatureUnit  string    `json:"temperatureUnit"`
	WindSpeed        string    `json:"windSpeed"`
	WindDirection    string    `json:"windDirection"`
	Icon             string    `json:"icon"`
	ShortForecast    string    `json:"shortForecast"`
	DetailedForecast string    `json:"detailedForecast"`
}
