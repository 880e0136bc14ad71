package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const (
	extensionsLive     = "base"
	extensionsForecast = "all"

	// Cap on how much of a malformed provider body gets logged.
	maxLoggedBody = 512
)

// Provider wire types. The Gaode API returns every value as a string,
// including temperatures and counts.
type weatherResponse struct {
	Status    string          `json:"status"`
	Count     string          `json:"count"`
	Info      string          `json:"info"`
	Infocode  string          `json:"infocode"`
	Lives     []liveEntry     `json:"lives"`
	Forecasts []forecastBlock `json:"forecasts"`
}

type liveEntry struct {
	Province      string `json:"province"`
	City          string `json:"city"`
	Adcode        string `json:"adcode"`
	Weather       string `json:"weather"`
	Temperature   string `json:"temperature"`
	WindDirection string `json:"winddirection"`
	WindPower     string `json:"windpower"`
	Humidity      string `json:"humidity"`
	ReportTime    string `json:"reporttime"`
}

type forecastBlock struct {
	Province   string      `json:"province"`
	City       string      `json:"city"`
	Adcode     string      `json:"adcode"`
	ReportTime string      `json:"reporttime"`
	Casts      []castEntry `json:"casts"`
}

type castEntry struct {
	Date         string `json:"date"`
	Week         string `json:"week"`
	DayWeather   string `json:"dayweather"`
	NightWeather string `json:"nightweather"`
	DayTemp      string `json:"daytemp"`
	NightTemp    string `json:"nighttemp"`
	DayWind      string `json:"daywind"`
	NightWind    string `json:"nightwind"`
	DayPower     string `json:"daypower"`
	NightPower   string `json:"nightpower"`
}

// GaodeClient queries the Gaode (Amap) weather API. It holds no mutable state
// beyond the underlying http.Client, so it is safe for concurrent use.
type GaodeClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewGaodeClient builds a client from the loaded configuration.
func NewGaodeClient(cfg *Config, logger *zap.Logger) *GaodeClient {
	return &GaodeClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// fetch issues one GET to the weatherInfo endpoint and validates the envelope.
// Both tools share it; only the extensions parameter and the payload shape
// differ between live and forecast lookups.
func (c *GaodeClient) fetch(ctx context.Context, city, extensions string) (*weatherResponse, error) {
	u, err := url.Parse(c.baseURL + "/weatherInfo")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrTransport, c.baseURL, err)
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("city", city)
	q.Set("extensions", extensions)
	q.Set("output", "JSON")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status code %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	var wr weatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		c.logger.Error("failed to parse provider response",
			zap.String("body", truncateBody(body, maxLoggedBody)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrProtocol, err)
	}

	if wr.Status != "1" {
		return nil, fmt.Errorf("%w: provider reported %q (infocode %s)", ErrUpstream, wr.Info, wr.Infocode)
	}

	return &wr, nil
}

// GetWeatherLive returns the current conditions for a city adcode.
func (c *GaodeClient) GetWeatherLive(ctx context.Context, city string) (*WeatherLiveOutput, error) {
	wr, err := c.fetch(ctx, city, extensionsLive)
	if err != nil {
		return nil, err
	}

	if len(wr.Lives) == 0 {
		return nil, fmt.Errorf("%w: no live weather data for city %s (infocode %s)", ErrUpstream, city, wr.Infocode)
	}

	live := wr.Lives[0]
	return &WeatherLiveOutput{
		Province:      live.Province,
		City:          live.City,
		Adcode:        live.Adcode,
		Weather:       live.Weather,
		Temperature:   live.Temperature,
		WindDirection: live.WindDirection,
		WindPower:     live.WindPower,
		Humidity:      live.Humidity,
		ReportTime:    live.ReportTime,
	}, nil
}

// GetWeatherForecast returns the multi-day forecast for a city adcode,
// preserving the provider's chronological cast order.
func (c *GaodeClient) GetWeatherForecast(ctx context.Context, city string) (*WeatherForecastOutput, error) {
	wr, err := c.fetch(ctx, city, extensionsForecast)
	if err != nil {
		return nil, err
	}

	if len(wr.Forecasts) == 0 || len(wr.Forecasts[0].Casts) == 0 {
		return nil, fmt.Errorf("%w: no forecast data for city %s (infocode %s)", ErrUpstream, city, wr.Infocode)
	}

	fc := wr.Forecasts[0]
	casts := make([]ForecastEntry, 0, len(fc.Casts))
	for _, cast := range fc.Casts {
		casts = append(casts, ForecastEntry{
			Date:         cast.Date,
			Week:         cast.Week,
			DayWeather:   cast.DayWeather,
			NightWeather: cast.NightWeather,
			DayTemp:      cast.DayTemp,
			NightTemp:    cast.NightTemp,
			DayWind:      cast.DayWind,
			NightWind:    cast.NightWind,
			DayPower:     cast.DayPower,
			NightPower:   cast.NightPower,
		})
	}

	return &WeatherForecastOutput{
		Province:   fc.Province,
		City:       fc.City,
		Adcode:     fc.Adcode,
		ReportTime: fc.ReportTime,
		Casts:      casts,
	}, nil
}

func truncateBody(body []byte, limit int) string {
	if len(body) > limit {
		return string(body[:limit]) + "...(truncated)"
	}
	return string(body)
}
