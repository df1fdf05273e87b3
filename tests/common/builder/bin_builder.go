//go:build unit || e2e

package builder

import (
	"fmt"

	"waste-dashboard/internal/domain/bin"
)

type BinBuilder struct {
	ID            string
	Name          string
	CurrentWeight float64
	Capacity      float64
	IsActive      bool
}

func NewBinBuilder() *BinBuilder {
	return &BinBuilder{
		ID:            "bin-1",
		Name:          "General Waste",
		CurrentWeight: 10,
		Capacity:      100,
		IsActive:      true,
	}
}

func (b *BinBuilder) WithID(id string) *BinBuilder {
	b.ID = id
	return b
}

func (b *BinBuilder) WithName(name string) *BinBuilder {
	b.Name = name
	return b
}

func (b *BinBuilder) WithWeight(w float64) *BinBuilder {
	b.CurrentWeight = w
	return b
}

func (b *BinBuilder) AsInactive() *BinBuilder {
	b.IsActive = false
	return b
}

func (b *BinBuilder) Build() bin.Bin {
	return bin.Bin{
		ID:            b.ID,
		Name:          b.Name,
		CurrentWeight: b.CurrentWeight,
		Capacity:      b.Capacity,
		IsActive:      b.IsActive,
	}
}

// BuildCollection returns n bins bin-1..bin-n with the builder's other fields.
func (b *BinBuilder) BuildCollection(n int) bin.Collection {
	out := make(bin.Collection, 0, n)
	for i := 1; i <= n; i++ {
		item := b.Build()
		item.ID = fmt.Sprintf("bin-%d", i)
		item.CurrentWeight = float64(i) * b.CurrentWeight
		out = append(out, item)
	}
	return out
}
