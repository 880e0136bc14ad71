package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const serverVersion = "v1.0.0"

// NewWeatherServer assembles the MCP server with the weather tools and the
// city-codes resource.
func NewWeatherServer(client *GaodeClient, logger *zap.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "weather", Version: serverVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_weather_live",
		Description: "Get live weather for a city by its adcode (e.g. 110000 for Beijing): condition, temperature, wind, humidity",
	}, NewGetWeatherLiveHandler(client, logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_weather_forecast",
		Description: "Get the multi-day weather forecast for a city by its adcode, usually covering the next 3 days",
	}, NewGetWeatherForecastHandler(client, logger))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		Name:        "city_codes",
		URITemplate: "city_codes://{province}",
		Description: "Adcodes for the main cities of a province",
		MIMEType:    "text/plain",
	}, HandleCityCodes)

	return server
}

// RunServer runs the server on the selected transport until ctx is cancelled
// or the transport fails.
func RunServer(ctx context.Context, server *mcp.Server, cfg *Config, transport string, logger *zap.Logger) error {
	switch transport {
	case "stdio":
		return server.Run(ctx, &mcp.StdioTransport{})
	case "sse":
		handler := mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return server }, nil)
		return serveHTTP(ctx, handler, cfg, logger)
	case "http":
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil)
		return serveHTTP(ctx, handler, cfg, logger)
	default:
		return fmt.Errorf("unknown transport %q (expected stdio, sse, or http)", transport)
	}
}

func serveHTTP(ctx context.Context, handler http.Handler, cfg *Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
