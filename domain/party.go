package domain

type Customer struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Phone       string `db:"phone" json:"phone,omitempty"`
	Email       string `db:"email" json:"email,omitempty"`
	Address     string `db:"address" json:"address,omitempty"`
	VehicleInfo string `db:"vehicle_info" json:"vehicle_info,omitempty"`
	CreatedAt   string `db:"created_at" json:"created_at"`
}

type Supplier struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Phone     string `db:"phone" json:"phone,omitempty"`
	Email     string `db:"email" json:"email,omitempty"`
	Address   string `db:"address" json:"address,omitempty"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
