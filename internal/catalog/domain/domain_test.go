package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme", "acme"},
		{"Café Olé!", "cafe-ole"},
		{"  Hello   World  ", "hello-world"},
		{"Niño_Pequeño 2024", "nino-pequeno-2024"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestOptional_DistinguishesAbsentZeroAndNull(t *testing.T) {
	var req struct {
		Stock   Optional[int]    `json:"stock"`
		Flag    Optional[int]    `json:"flag"`
		BrandID Optional[*uint]  `json:"brandId"`
		Name    Optional[string] `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"flag":0,"brandId":null,"name":"x"}`), &req))

	_, set := req.Stock.Get()
	assert.False(t, set)

	flag, set := req.Flag.Get()
	assert.True(t, set)
	assert.Zero(t, flag)

	brandID, set := req.BrandID.Get()
	assert.True(t, set)
	assert.Nil(t, brandID)

	name := "old"
	req.Name.Apply(&name)
	assert.Equal(t, "x", name)

	stock := 5
	req.Stock.Apply(&stock)
	assert.Equal(t, 5, stock)
}

func TestProductJSON_PricesAreNumbers(t *testing.T) {
	p := Product{ID: 1, SalePrice: decimal.NewNullDecimal(decimal.RequireFromString("12.50"))}
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"salePrice":12.5`)
	assert.Contains(t, string(data), `"images":null`)
	assert.Equal(t, []string{}, p.Gallery())
}

func TestStatus(t *testing.T) {
	assert.True(t, StatusActive.IsActive())
	assert.False(t, StatusInactive.IsActive())
}
