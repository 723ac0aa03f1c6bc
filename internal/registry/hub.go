package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vramfit/pkg/types"
)

// DefaultEndpoint is the public Hugging Face hub.
const DefaultEndpoint = "https://huggingface.co"

// weightFileNames are the single-file weight formats recognized when a repo
// carries no safetensors shards, in lookup order.
var weightFileNames = []string{
	"pytorch_model.bin",
	"tf_model.h5",
	"flax_model.msgpack",
	"rust_model.ot",
	"model.ckpt",
	"model.onnx",
	"coreml_model.mlmodel",
}

// HubClient fetches model metadata from a Hugging Face compatible hub over
// HTTP. It performs no retries; failures propagate to the caller unmodified.
type HubClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewHubClient builds a client for the given hub endpoint. Empty endpoint
// means DefaultEndpoint; token, when set, is sent as a bearer credential for
// gated or private repos.
func NewHubClient(endpoint, token string, timeout time.Duration) *HubClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HubClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		http:     &http.Client{Timeout: timeout},
	}
}

// modelInfo mirrors the subset of the hub model-info API response we read.
// blobs=true makes the hub include per-file sizes in siblings.
type modelInfo struct {
	Siblings []struct {
		Rfilename string `json:"rfilename"`
		Size      int64  `json:"size"`
	} `json:"siblings"`
}

// FileSizeBytes returns the total serialized weight size of a model.
// Safetensors shards win when present (their summed blob sizes equal the
// index total_size); otherwise the first recognized single-file weight
// format is used. Neither present means ErrSizeUnavailable.
func (c *HubClient) FileSizeBytes(ctx context.Context, model string) (int64, error) {
	var info modelInfo
	url := fmt.Sprintf("%s/api/models/%s?blobs=true", c.endpoint, model)
	if err := c.getJSON(ctx, url, &info); err != nil {
		return 0, err
	}
	var safetensorsTotal int64
	var seenSafetensors bool
	for _, s := range info.Siblings {
		if strings.HasSuffix(s.Rfilename, ".safetensors") {
			seenSafetensors = true
			safetensorsTotal += s.Size
		}
	}
	if seenSafetensors {
		return safetensorsTotal, nil
	}
	for _, name := range weightFileNames {
		for _, s := range info.Siblings {
			if s.Rfilename == name {
				return s.Size, nil
			}
		}
	}
	return 0, ErrSizeUnavailable(model)
}

// Config fetches the model's config.json. A 404 maps to ErrConfigUnavailable.
func (c *HubClient) Config(ctx context.Context, model string) (types.ModelConfig, error) {
	url := fmt.Sprintf("%s/%s/resolve/main/config.json", c.endpoint, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch config: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrConfigUnavailable(model)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch config: unexpected status %d", resp.StatusCode)
	}
	var cfg types.ModelConfig
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (c *HubClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.authorize(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch model info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch model info: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode model info: %w", err)
	}
	return nil
}

func (c *HubClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
