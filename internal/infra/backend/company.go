package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/readmodel"
)

type companyPayload struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Name        string `json:"name"`
	CompanyName string `json:"CompanyName"`
}

func (c *Client) ListCompanies(ctx context.Context) ([]readmodel.CompanyRM, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "list_companies", http.MethodGet, "/api/v1/company", nil, &raw); err != nil {
		return nil, err
	}

	var payload []companyPayload
	if err := decodeList(raw, "companies", &payload); err != nil {
		return nil, errs.Wrap(err, "upstream list_companies: decode companies")
	}

	out := make([]readmodel.CompanyRM, 0, len(payload))
	for _, p := range payload {
		rm := readmodel.CompanyRM{ID: p.ID, Name: p.Name}
		if rm.ID == "" {
			rm.ID = p.MongoID
		}
		if rm.Name == "" {
			rm.Name = p.CompanyName
		}
		out = append(out, rm)
	}
	return out, nil
}

type summaryPayload struct {
	TotalWeight float64 `json:"totalWeight"`
	Categories  []struct {
		BinName string  `json:"binName"`
		Weight  float64 `json:"weight"`
	} `json:"categories"`
}

// WasteSummary folds the per-bin-name totals into display categories.
func (c *Client) WasteSummary(ctx context.Context, branchID string) (*readmodel.WasteSummaryRM, error) {
	var payload summaryPayload
	path := "/api/v1/analytics/branch/" + url.PathEscape(branchID) + "/waste-summary"
	if err := c.do(ctx, "waste_summary", http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	rm := &readmodel.WasteSummaryRM{BranchID: branchID, TotalWeight: payload.TotalWeight}
	index := map[string]int{}
	for _, entry := range payload.Categories {
		cat := bin.CategoryOf(entry.BinName)
		i, ok := index[cat.Name]
		if !ok {
			i = len(rm.Categories)
			index[cat.Name] = i
			rm.Categories = append(rm.Categories, readmodel.CategoryTotalRM{Category: cat.Name, Color: cat.Color})
		}
		rm.Categories[i].Weight += entry.Weight
	}
	if rm.TotalWeight == 0 {
		for _, ct := range rm.Categories {
			rm.TotalWeight += ct.Weight
		}
	}
	return rm, nil
}
