package model

// User holds the credential record. HashedPassword never leaves the
// repository/service boundary; the json tag keeps it out of any accidental
// direct serialization as well.
type User struct {
	BaseModel
	Username       string         `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email          string         `gorm:"size:100" json:"email"`
	FullName       string         `gorm:"size:100" json:"fullName"`
	Disabled       bool           `gorm:"default:false" json:"disabled"`
	HashedPassword string         `gorm:"size:100;not null" json:"-"`
	QuizzSessions  []QuizzSession `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
