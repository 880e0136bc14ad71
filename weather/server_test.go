package main

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Server assembly", func() {
	It("builds a server with the weather tools registered", func() {
		client := newTestClient("http://localhost:0")
		server := NewWeatherServer(client, zap.NewNop())
		Expect(server).NotTo(BeNil())
	})

	It("rejects an unknown transport", func() {
		client := newTestClient("http://localhost:0")
		server := NewWeatherServer(client, zap.NewNop())
		cfg := &Config{Host: "127.0.0.1", Port: 0, Timeout: time.Second}

		err := RunServer(context.Background(), server, cfg, "grpc", zap.NewNop())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("unknown transport"))
	})

	It("shuts the sse transport down on context cancellation", func() {
		client := newTestClient("http://localhost:0")
		server := NewWeatherServer(client, zap.NewNop())
		cfg := &Config{Host: "127.0.0.1", Port: 0, Timeout: time.Second}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			done <- RunServer(ctx, server, cfg, "sse", zap.NewNop())
		}()

		time.Sleep(100 * time.Millisecond)
		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
