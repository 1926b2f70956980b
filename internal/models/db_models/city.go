package db_models

type City struct {
	BaseModel
	Name        string  `gorm:"size:50;not null"`
	Description *string `gorm:"size:200"`

	PointsOfInterest []PointOfInterest `gorm:"foreignKey:CityID"`
}

func (City) TableName() string {
	return "cities"
}
