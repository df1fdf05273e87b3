package pushchannel

import (
	"encoding/json"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/errs"
)

const (
	EventBinWeightUpdated = "binWeightUpdated"
	EventWasteUpdate      = "wasteUpdate"
)

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type weightPayload struct {
	AssociateBin  string   `json:"associateBin"`
	CurrentWeight *float64 `json:"currentWeight"`
	Weight        *float64 `json:"weight"`
}

// DecodeFrame turns one push frame into a weight update. ok is false for
// events that do not carry bin weights.
func DecodeFrame(data []byte) (update bin.WeightUpdate, ok bool, err error) {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return bin.WeightUpdate{}, false, errs.Wrap(err, "decode push frame")
	}
	if f.Event != EventBinWeightUpdated && f.Event != EventWasteUpdate {
		return bin.WeightUpdate{}, false, nil
	}

	var p weightPayload
	if err := json.Unmarshal(f.Data, &p); err != nil {
		return bin.WeightUpdate{}, false, errs.Wrapf(err, "decode %s payload", f.Event)
	}
	weight := p.CurrentWeight
	if weight == nil {
		weight = p.Weight
	}
	if weight == nil {
		return bin.WeightUpdate{}, false, errs.Newf("%s payload has no weight", f.Event)
	}

	update, err = bin.NewWeightUpdate(p.AssociateBin, *weight)
	if err != nil {
		return bin.WeightUpdate{}, false, errs.Wrapf(err, "%s payload", f.Event)
	}
	return update, true, nil
}
