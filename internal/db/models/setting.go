package models

// Setting represents one site-wide configuration key/value pair,
// read as a full map by every public page.
type Setting struct {
	ID    uint   `gorm:"primaryKey"`
	Key   string `gorm:"column:key;unique;size:100;not null"`
	Value string `gorm:"type:text"`
}
