package seeder

import (
	"database/sql"
	"log"

	"hrms-backend/models"
)

// Company holiday calendar for the current year. Seeded once; existing
// rows are left untouched.
var holidays = []models.Holiday{
	{Date: "2025-01-26", Name: "Republic Day"},
	{Date: "2025-03-14", Name: "Holi"},
	{Date: "2025-03-31", Name: "Id-ul-Fitr"},
	{Date: "2025-04-18", Name: "Good Friday"},
	{Date: "2025-08-15", Name: "Independence Day"},
	{Date: "2025-10-02", Name: "Mahatma Gandhi's Birthday / Dussehra"},
	{Date: "2025-10-20", Name: "Diwali"},
	{Date: "2025-12-25", Name: "Christmas Day"},
}

func SeedHolidays(db *sql.DB) error {
	for _, h := range holidays {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO holidays (date, name) VALUES (?, ?)", h.Date, h.Name); err != nil {
			return err
		}
	}
	log.Println("Holiday seed complete.")
	return nil
}
