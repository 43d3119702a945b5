package model

import (
	"time"
)

// User 免密码账户，仅凭邮箱登录
// swagger:model User
type User struct {
	BaseModel
	Email     string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username  string     `gorm:"size:100;uniqueIndex;not null" json:"username"`
	LastLogin *time.Time `json:"lastLogin"` // 注册后首次签发令牌前为 null
}

func (User) TableName() string {
	return "users"
}
