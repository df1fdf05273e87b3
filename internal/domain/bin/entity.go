package bin

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidBinID  = errors.New("bin id must not be empty")
	ErrInvalidWeight = errors.New("weight must be a non-negative number")
)

// Bin is one receptacle of a branch. ID is the only identity; Name is a
// category label shared by many bins.
type Bin struct {
	ID            string
	Name          string
	CurrentWeight float64 // kg
	Capacity      float64 // litres
	IsActive      bool
}

func (b Bin) Category() Category {
	return CategoryOf(b.Name)
}

type WeightUpdate struct {
	BinID  string
	Weight float64
}

func NewWeightUpdate(binID string, weight float64) (WeightUpdate, error) {
	binID = strings.TrimSpace(binID)
	if binID == "" {
		return WeightUpdate{}, ErrInvalidBinID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return WeightUpdate{}, ErrInvalidWeight
	}
	return WeightUpdate{BinID: binID, Weight: weight}, nil
}

type Collection []Bin

func (c Collection) IndexOf(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Apply overwrites the weight of the record whose ID matches. Unknown ids
// leave the collection untouched; order never changes.
func (c Collection) Apply(u WeightUpdate) (Collection, bool) {
	idx := c.IndexOf(u.BinID)
	if idx < 0 {
		return c, false
	}
	out := c.Clone()
	out[idx].CurrentWeight = u.Weight
	return out, true
}

func (c Collection) TotalWeight() float64 {
	var total float64
	for _, b := range c {
		total += b.CurrentWeight
	}
	return total
}
