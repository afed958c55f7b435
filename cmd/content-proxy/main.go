package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/joho/godotenv"
)

const (
	DefaultPort     = "8792"
	DefaultUpstream = "https://gallery.microcms.io/api/v1/works"

	APIKeyEnv   = "MICROCMS_API_KEY"
	APIKeyHdr   = "X-MICROCMS-API-KEY"
	UpstreamEnv = "CONTENT_UPSTREAM"
	PortEnv     = "PROXY_PORT"

	UpstreamTimeout = 10 * time.Second
)

// content-proxy keeps the content API key server-side: browsers and desktop
// builds talk to this process, which forwards the works listing upstream with
// the key injected and streams the response back verbatim.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	upstream := getEnv(UpstreamEnv, DefaultUpstream)
	apiKey := os.Getenv(APIKeyEnv)
	if apiKey == "" {
		log.Printf("warning: %s is not set, requests will be rejected", APIKeyEnv)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  UpstreamTimeout,
		WriteTimeout: UpstreamTimeout,
		AppName:      "Gallery Content Proxy",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
		AllowMethods: []string{fiber.MethodGet},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Get("/api/works", forwardWorks(upstream, apiKey))

	addr := fmt.Sprintf(":%s", getEnv(PortEnv, DefaultPort))
	log.Printf("Starting content proxy on %s, upstream %s", addr, upstream)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// forwardWorks proxies the paged works listing. Only limit and offset travel
// upstream; the key never reaches the client.
func forwardWorks(upstream, apiKey string) fiber.Handler {
	client := &http.Client{Timeout: UpstreamTimeout}

	return func(c fiber.Ctx) error {
		if apiKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "content API key is not configured"})
		}

		query := url.Values{}
		if limit := c.Query("limit"); limit != "" {
			query.Set("limit", limit)
		}
		if offset := c.Query("offset"); offset != "" {
			query.Set("offset", offset)
		}

		target := upstream
		if encoded := query.Encode(); encoded != "" {
			target += "?" + encoded
		}

		req, err := http.NewRequest(http.MethodGet, target, nil)
		if err != nil {
			log.Printf("build upstream request error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "proxy failed"})
		}
		req.Header.Set(APIKeyHdr, apiKey)

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("upstream error: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to reach content API"})
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			log.Printf("read upstream response error: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "invalid upstream response"})
		}

		if contentType := resp.Header.Get("Content-Type"); contentType != "" {
			c.Set("Content-Type", contentType)
		}
		c.Status(resp.StatusCode)
		return c.Send(data)
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
