package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// NewGetWeatherLiveHandler returns the get_weather_live tool handler bound to
// the given client.
func NewGetWeatherLiveHandler(client *GaodeClient, logger *zap.Logger) func(context.Context, *mcp.CallToolRequest, WeatherLiveInput) (*mcp.CallToolResult, WeatherLiveOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WeatherLiveInput) (*mcp.CallToolResult, WeatherLiveOutput, error) {
		log := logger.With(
			zap.String("request_id", uuid.NewString()),
			zap.String("tool", "get_weather_live"),
			zap.String("city", input.City))

		if input.City == "" {
			return nil, WeatherLiveOutput{}, fmt.Errorf("%w: city is required (use the adcode, e.g. 110000 for Beijing)", ErrInvalidArgument)
		}

		out, err := client.GetWeatherLive(ctx, input.City)
		if err != nil {
			log.Error("live weather lookup failed", zap.Error(err))
			return nil, WeatherLiveOutput{}, err
		}

		log.Info("live weather fetched", zap.String("adcode", out.Adcode), zap.String("weather", out.Weather))
		return nil, *out, nil
	}
}

// NewGetWeatherForecastHandler returns the get_weather_forecast tool handler
// bound to the given client.
func NewGetWeatherForecastHandler(client *GaodeClient, logger *zap.Logger) func(context.Context, *mcp.CallToolRequest, WeatherForecastInput) (*mcp.CallToolResult, WeatherForecastOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WeatherForecastInput) (*mcp.CallToolResult, WeatherForecastOutput, error) {
		log := logger.With(
			zap.String("request_id", uuid.NewString()),
			zap.String("tool", "get_weather_forecast"),
			zap.String("city", input.City))

		if input.City == "" {
			return nil, WeatherForecastOutput{}, fmt.Errorf("%w: city is required (use the adcode, e.g. 110000 for Beijing)", ErrInvalidArgument)
		}

		out, err := client.GetWeatherForecast(ctx, input.City)
		if err != nil {
			log.Error("forecast lookup failed", zap.Error(err))
			return nil, WeatherForecastOutput{}, err
		}

		log.Info("forecast fetched", zap.String("adcode", out.Adcode), zap.Int("days", len(out.Casts)))
		return nil, *out, nil
	}
}
