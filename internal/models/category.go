package models

// Category groups businesses. ParentID allows one level of hierarchy
// ("Restaurants" -> "Italian"); stored but not otherwise exercised.
type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	IconURL  string `gorm:"size:255" json:"iconUrl"`
	ParentID *uint  `json:"parentId"`
}
