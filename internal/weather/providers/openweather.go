package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/smartweather/weather-advisor/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface against the
// OpenWeatherMap current-conditions and 5-day/3-hour forecast endpoints.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) CurrentConditions(ctx context.Context, city string) (weather.CurrentConditions, error) {
	if p.apiKey == "" {
		return weather.CurrentConditions{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, p.buildRequest(p.currentURL, city))
	if err != nil {
		return weather.CurrentConditions{}, classifyError(err)
	}
	defer resp.Body.Close()

	var payload struct {
		Name string `json:"name"`
		Sys  struct {
			Country string `json:"country"`
			Sunrise int64  `json:"sunrise"`
			Sunset  int64  `json:"sunset"`
		} `json:"sys"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			ID int `json:"id"`
		} `json:"weather"`
		Timezone int `json:"timezone"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentConditions{}, fmt.Errorf("%w: decode current conditions: %v", weather.ErrUnavailable, err)
	}

	label := payload.Name
	if payload.Sys.Country != "" {
		label = fmt.Sprintf("%s, %s", payload.Name, payload.Sys.Country)
	}

	code := 800
	if len(payload.Weather) > 0 {
		code = payload.Weather[0].ID
	}

	return weather.CurrentConditions{
		LocationLabel: label,
		TemperatureC:  payload.Main.Temp,
		FeelsLikeC:    payload.Main.FeelsLike,
		HumidityPct:   payload.Main.Humidity,
		WindSpeedMS:   payload.Wind.Speed,
		SunriseEpoch:  payload.Sys.Sunrise,
		SunsetEpoch:   payload.Sys.Sunset,
		TimezoneSec:   payload.Timezone,
		ConditionCode: code,
	}, nil
}

func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string) ([]weather.ForecastSample, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, p.buildRequest(p.forecastURL, city))
	if err != nil {
		return nil, classifyError(err)
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				TempMin  float64 `json:"temp_min"`
				TempMax  float64 `json:"temp_max"`
				Humidity float64 `json:"humidity"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Pop     float64 `json:"pop"`
			Weather []struct {
				ID int `json:"id"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode forecast: %v", weather.ErrUnavailable, err)
	}

	samples := make([]weather.ForecastSample, 0, len(payload.List))
	for _, item := range payload.List {
		code := 800
		if len(item.Weather) > 0 {
			code = item.Weather[0].ID
		}
		samples = append(samples, weather.ForecastSample{
			TimestampEpoch: item.Dt,
			TempMinC:       item.Main.TempMin,
			TempMaxC:       item.Main.TempMax,
			HumidityPct:    item.Main.Humidity,
			WindSpeedMS:    item.Wind.Speed,
			POP:            item.Pop,
			ConditionCode:  code,
		})
	}

	return samples, nil
}

func (p *OpenWeatherProvider) buildRequest(baseURL, city string) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("q", city)

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}
}
