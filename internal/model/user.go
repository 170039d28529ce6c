package model

type UserRole string

const (
	Student    UserRole = "STUDENT"
	Instructor UserRole = "INSTRUCTOR"
)

// swagger:model User
type User struct {
	BaseModel
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;unique;not null" json:"email"`
	// Stored and compared verbatim. Known limitation carried over from the
	// original system; see README.
	Password    string   `gorm:"size:100;not null" json:"-"`
	Role        UserRole `gorm:"size:20;default:'STUDENT'" json:"role"`
	AvatarIndex int      `gorm:"default:0" json:"avatarIndex"`
}

func (User) TableName() string {
	return "users"
}
