package audio

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"codeberg.org/snonux/wordsearch/internal"
)

const (
	// DefaultMaxClipBytes is the largest clip the cache downloads
	DefaultMaxClipBytes = 5 << 20

	downloadTimeout = 30 * time.Second
)

// Cache downloads pronunciation clips into a local directory
type Cache struct {
	dir        string
	httpClient *http.Client
	maxBytes   int64
	logger     *zap.Logger
}

// DefaultCacheDir returns the directory used when none is configured
func DefaultCacheDir() string {
	return filepath.Join(os.TempDir(), "wordsearch-audio")
}

// NewCache creates a clip cache in dir
func NewCache(dir string, logger *zap.Logger) *Cache {
	if dir == "" {
		dir = DefaultCacheDir()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{
		dir:        dir,
		httpClient: &http.Client{Timeout: downloadTimeout},
		maxBytes:   DefaultMaxClipBytes,
		logger:     logger,
	}
}

// Dir returns the cache directory
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns the local file a clip URL is stored in
func (c *Cache) Path(clipURL string) string {
	hash := md5.Sum([]byte(clipURL))
	hashStr := hex.EncodeToString(hash[:])[:8]
	return filepath.Join(c.dir, hashStr+"_"+internal.ClipFilename(clipURL))
}

// Fetch returns the local path of a clip, downloading it on first use
func (c *Cache) Fetch(ctx context.Context, clipURL string) (string, error) {
	if clipURL == "" {
		return "", fmt.Errorf("no audio source")
	}

	outputPath := c.Path(clipURL)
	if _, err := os.Stat(outputPath); err == nil {
		return outputPath, nil
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create audio cache: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolveClipURL(clipURL), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download audio: status %d", resp.StatusCode)
	}

	tmp, err := os.CreateTemp(c.dir, ".clip-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.CopyN(tmp, resp.Body, c.maxBytes+1)
	closeErr := tmp.Close()
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to write file: %w", closeErr)
	}
	if written > c.maxBytes {
		return "", fmt.Errorf("audio exceeds maximum size of %d bytes", c.maxBytes)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return "", fmt.Errorf("failed to store audio: %w", err)
	}

	c.logger.Debug("cached pronunciation", zap.String("url", clipURL), zap.Int64("bytes", written))
	return outputPath, nil
}

// resolveClipURL gives protocol-relative clip URLs ("//host/clip.mp3") an
// https scheme
func resolveClipURL(clipURL string) string {
	if strings.HasPrefix(clipURL, "//") {
		return "https:" + clipURL
	}
	return clipURL
}
