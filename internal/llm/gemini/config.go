package gemini

import (
	"context"
	"log/slog"
	"os"
	"time"

	"google.golang.org/genai"
)

// Config for the Gemini vision client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY
	Model       string        // e.g., "gemini-2.0-flash"
	Temperature float32       // 0..2; extraction wants 0
	Timeout     time.Duration // per-call deadline
	// StrictSchema fails extraction on the first schema violation instead of
	// running the lenient optional-field pass.
	StrictSchema bool
}

type Client struct {
	cfg    Config
	genai  *genai.Client
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, genai: gc, logger: logger}, nil
}
