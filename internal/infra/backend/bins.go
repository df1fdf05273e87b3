package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/errs"
)

type binPayload struct {
	ID            string   `json:"id"`
	MongoID       string   `json:"_id"`
	BinName       string   `json:"binName"`
	CurrentWeight *float64 `json:"currentWeight"`
	LatestWeight  *float64 `json:"latestWeight"`
	BinCapacity   float64  `json:"binCapacity"`
	IsActive      bool     `json:"isActive"`
}

func (p binPayload) toDomain() bin.Bin {
	b := bin.Bin{
		ID:       p.ID,
		Name:     p.BinName,
		Capacity: p.BinCapacity,
		IsActive: p.IsActive,
	}
	if b.ID == "" {
		b.ID = p.MongoID
	}
	switch {
	case p.CurrentWeight != nil:
		b.CurrentWeight = *p.CurrentWeight
	case p.LatestWeight != nil:
		b.CurrentWeight = *p.LatestWeight
	}
	return b
}

func (c *Client) ListBinsByBranch(ctx context.Context, branchID string) (bin.Collection, error) {
	var raw json.RawMessage
	path := "/api/v1/bins/status/branch/" + url.PathEscape(branchID)
	if err := c.do(ctx, "list_bins", http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	var payload []binPayload
	if err := decodeList(raw, "bins", &payload); err != nil {
		return nil, errs.Wrap(err, "upstream list_bins: decode bins")
	}

	out := make(bin.Collection, 0, len(payload))
	for _, p := range payload {
		out = append(out, p.toDomain())
	}
	return out, nil
}

// LatestWeight accepts a bare number or an object carrying the weight.
func (c *Client) LatestWeight(ctx context.Context, binID string) (float64, error) {
	var raw json.RawMessage
	path := "/api/v1/bins/" + url.PathEscape(binID) + "/latest-weight"
	if err := c.do(ctx, "latest_weight", http.MethodGet, path, nil, &raw); err != nil {
		return 0, err
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}

	var obj struct {
		LatestWeight  *float64 `json:"latestWeight"`
		CurrentWeight *float64 `json:"currentWeight"`
		Weight        *float64 `json:"weight"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0, errs.Wrap(err, "upstream latest_weight: decode weight")
	}
	switch {
	case obj.LatestWeight != nil:
		return *obj.LatestWeight, nil
	case obj.CurrentWeight != nil:
		return *obj.CurrentWeight, nil
	case obj.Weight != nil:
		return *obj.Weight, nil
	}
	return 0, errs.New("upstream latest_weight: no weight in response")
}

// decodeList reads a JSON array or an object wrapping the array under key.
func decodeList(raw json.RawMessage, key string, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	inner, ok := wrapped[key]
	if !ok {
		inner, ok = wrapped["data"]
	}
	if !ok {
		return errs.Newf("missing %q list", key)
	}
	return json.Unmarshal(inner, out)
}
