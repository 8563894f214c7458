package model

// StockStatus is the closed set of stock states a Product can advertise.
type StockStatus string

const (
	StockInStock     StockStatus = "IS"
	StockOutOfStock  StockStatus = "OSS"
	StockBackordered StockStatus = "BO"
)

// DefaultStockStatus is applied to products created without an explicit status.
const DefaultStockStatus = StockOutOfStock

var stockStatusLabels = map[StockStatus]string{
	StockInStock:     "In Stock",
	StockOutOfStock:  "Out Of Stock",
	StockBackordered: "Back Ordered",
}

// StockStatuses lists every valid status in display order.
func StockStatuses() []StockStatus {
	return []StockStatus{StockInStock, StockOutOfStock, StockBackordered}
}

func (s StockStatus) Valid() bool {
	_, ok := stockStatusLabels[s]
	return ok
}

// Label returns the human readable name, or the raw code for unknown values.
func (s StockStatus) Label() string {
	if l, ok := stockStatusLabels[s]; ok {
		return l
	}
	return string(s)
}
