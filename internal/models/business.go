package models

// Business is a listed local business. Rating is advisory (1.0-5.0 by
// convention, not enforced). The image is served raw by the image endpoint
// and never inlined in JSON.
type Business struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255" json:"name"`
	Description   string    `gorm:"size:1000" json:"description"`
	ContactNumber string    `gorm:"size:50" json:"contactNumber"`
	Address       string    `gorm:"size:255" json:"address"`
	City          string    `gorm:"size:100" json:"city"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Verified      bool      `json:"verified"`
	CategoryID    uint      `gorm:"not null" json:"-"`
	Category      *Category `json:"category"`
	Image         []byte    `gorm:"type:bytea" json:"-"`
	OwnerID       *uint     `json:"-"`
	Owner         *User     `json:"-"`
}
