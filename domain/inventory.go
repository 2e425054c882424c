package domain

type InventoryItem struct {
	ID           int64   `db:"id" json:"id"`
	PartCode     string  `db:"part_code" json:"part_code"`
	Name         string  `db:"name" json:"name"`
	CategoryID   *int64  `db:"category_id" json:"category_id,omitempty"`
	BrandID      *int64  `db:"brand_id" json:"brand_id,omitempty"`
	SupplierID   *int64  `db:"supplier_id" json:"supplier_id,omitempty"`
	CostPrice    float64 `db:"cost_price" json:"cost_price"`
	SellingPrice float64 `db:"selling_price" json:"selling_price"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	ReorderLevel int64   `db:"reorder_level" json:"reorder_level"`
	Location     string  `db:"location" json:"location,omitempty"`
	Description  string  `db:"description" json:"description,omitempty"`
	Barcode      string  `db:"barcode" json:"barcode,omitempty"`
	CreatedAt    string  `db:"created_at" json:"created_at"`
	UpdatedAt    string  `db:"updated_at" json:"updated_at"`
}

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Brand struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
