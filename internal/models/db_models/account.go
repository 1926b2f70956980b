package db_models

type Account struct {
	BaseModel
	UserName     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"size:50"`
	LastName     string `gorm:"size:50"`
	City         string `gorm:"size:50;not null"`
}
