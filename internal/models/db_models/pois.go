package db_models

// PointOfInterest always belongs to exactly one City. Deleting it does not
// touch the owning city.
type PointOfInterest struct {
	BaseModel
	Name        string  `gorm:"size:50;not null"`
	Description *string `gorm:"size:200"`

	CityID int   `gorm:"not null;index"`
	City   *City `gorm:"foreignKey:CityID"`
}

func (PointOfInterest) TableName() string {
	return "points_of_interest"
}
