package models

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}
