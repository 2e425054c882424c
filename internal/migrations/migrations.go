package migrations

import (
	"log"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema required for the POS backend.
func Run(db *sqlx.DB) {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			full_name TEXT DEFAULT '',
			email TEXT DEFAULT '',
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'staff',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS brands (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT DEFAULT '',
			email TEXT DEFAULT '',
			address TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT DEFAULT '',
			email TEXT DEFAULT '',
			address TEXT DEFAULT '',
			vehicle_info TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			part_code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			category_id INTEGER REFERENCES categories(id),
			brand_id INTEGER REFERENCES brands(id),
			supplier_id INTEGER REFERENCES suppliers(id),
			cost_price REAL NOT NULL DEFAULT 0,
			selling_price REAL NOT NULL DEFAULT 0,
			quantity INTEGER NOT NULL DEFAULT 0,
			reorder_level INTEGER NOT NULL DEFAULT 5,
			location TEXT DEFAULT '',
			description TEXT DEFAULT '',
			barcode TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			invoice_number TEXT NOT NULL UNIQUE,
			customer_id INTEGER REFERENCES customers(id),
			sale_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			subtotal REAL NOT NULL DEFAULT 0,
			discount REAL NOT NULL DEFAULT 0,
			tax REAL NOT NULL DEFAULT 0,
			total_amount REAL NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL DEFAULT 'cash',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			paid_amount REAL NOT NULL DEFAULT 0,
			balance REAL NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sale_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sale_id INTEGER NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
			inventory_id INTEGER NOT NULL REFERENCES inventory(id),
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL,
			total_price REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			invoice_number TEXT NOT NULL UNIQUE,
			supplier_id INTEGER REFERENCES suppliers(id),
			purchase_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			subtotal REAL NOT NULL DEFAULT 0,
			discount REAL NOT NULL DEFAULT 0,
			tax REAL NOT NULL DEFAULT 0,
			total_amount REAL NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL DEFAULT 'cash',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			paid_amount REAL NOT NULL DEFAULT 0,
			balance REAL NOT NULL DEFAULT 0,
			notes TEXT DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS purchase_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			purchase_id INTEGER NOT NULL REFERENCES purchases(id) ON DELETE CASCADE,
			inventory_id INTEGER NOT NULL REFERENCES inventory(id),
			quantity INTEGER NOT NULL,
			unit_price REAL NOT NULL,
			total_price REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sale_id INTEGER REFERENCES sales(id) ON DELETE CASCADE,
			purchase_id INTEGER REFERENCES purchases(id) ON DELETE CASCADE,
			amount REAL NOT NULL,
			payment_method TEXT NOT NULL DEFAULT 'cash',
			payment_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			notes TEXT DEFAULT ''
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id);`,
		`CREATE INDEX IF NOT EXISTS idx_purchase_items_purchase ON purchase_items(purchase_id);`,
		`CREATE INDEX IF NOT EXISTS idx_payments_sale ON payments(sale_id);`,
		`CREATE INDEX IF NOT EXISTS idx_payments_purchase ON payments(purchase_id);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}
}
