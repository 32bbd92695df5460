package domain

// Column names a filterable product column
type Column string

const (
	ColumnName           Column = "name"
	ColumnBarcode        Column = "barcode"
	ColumnBrandID        Column = "brand_id"
	ColumnEnMercadolibre Column = "en_mercadolibre"
)

// Predicate is a composable filter over the products table. A nil Predicate
// matches every row.
type Predicate interface {
	predicate()
}

// Contains matches rows whose column holds Term as a literal substring
type Contains struct {
	Column Column
	Term   string
}

// Equals matches rows whose column equals Value
type Equals struct {
	Column Column
	Value  any
}

// AnyOf is the disjunction of its members
type AnyOf []Predicate

// AllOf is the conjunction of its members
type AllOf []Predicate

func (Contains) predicate() {}
func (Equals) predicate()   {}
func (AnyOf) predicate()    {}
func (AllOf) predicate()    {}

// Window is a limit/offset pagination window
type Window struct {
	Limit  int
	Offset int
}
