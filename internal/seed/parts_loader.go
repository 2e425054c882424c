package seed

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// LoadParts ingests the parts catalog CSV into the inventory table, ignoring
// duplicates. Expected columns: part_code, name, category, brand, cost_price,
// selling_price, quantity, reorder_level. Categories and brands are created on
// the fly.
func LoadParts(db *sqlx.DB, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load parts catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read parts header: %v", err)
		return
	}

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start parts transaction: %v", err)
		return
	}
	stmt, err := tx.Preparex(`INSERT OR IGNORE INTO inventory (part_code, name, category_id, brand_id, cost_price, selling_price, quantity, reorder_level) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		log.Printf("unable to prepare parts insert: %v", err)
		_ = tx.Rollback()
		return
	}
	defer stmt.Close()

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read parts row: %v", err)
			continue
		}
		if len(record) < 8 {
			continue
		}
		partCode := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if partCode == "" || name == "" {
			continue
		}

		categoryID := lookupOrCreate(tx, "categories", strings.TrimSpace(record[2]))
		brandID := lookupOrCreate(tx, "brands", strings.TrimSpace(record[3]))
		costPrice, _ := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		sellingPrice, _ := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		quantity, _ := strconv.ParseInt(strings.TrimSpace(record[6]), 10, 64)
		reorderLevel, _ := strconv.ParseInt(strings.TrimSpace(record[7]), 10, 64)

		if _, err := stmt.Exec(partCode, name, categoryID, brandID, costPrice, sellingPrice, quantity, reorderLevel); err != nil {
			log.Printf("unable to insert part %s: %v", partCode, err)
		} else {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit parts seed: %v", err)
	} else if rows > 0 {
		log.Printf("seeded parts catalog with %d rows", rows)
	}
}

func lookupOrCreate(tx *sqlx.Tx, table, name string) *int64 {
	if name == "" {
		return nil
	}
	var id int64
	query := `SELECT id FROM ` + table + ` WHERE name = ?`
	if err := tx.Get(&id, query, name); err == nil {
		return &id
	}
	res, err := tx.Exec(`INSERT INTO `+table+` (name) VALUES (?)`, name)
	if err != nil {
		log.Printf("unable to insert %s %q: %v", table, name, err)
		return nil
	}
	id, err = res.LastInsertId()
	if err != nil {
		return nil
	}
	return &id
}
