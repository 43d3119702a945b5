package service

import (
	"errors"
	"time"

	"quiz_hub_backend/internal/config"
	"quiz_hub_backend/internal/model"
	"quiz_hub_backend/internal/repository"
	"quiz_hub_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthService 免密码认证：注册和登录都只认邮箱。
// 令牌的签发/校验集中在 util.GenerateJWT / util.ParseJWT
type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register 邮箱和用户名任一已存在即冲突，一次查询覆盖两个字段
func (s *AuthService) Register(email, username string) (*model.User, string, error) {
	exists, err := s.UserRepo.ExistsByEmailOrUsername(email, username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", util.ErrUserExists
	}

	user := &model.User{
		Email:    email,
		Username: username,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 只凭邮箱登录，不校验任何口令
func (s *AuthService) Login(email string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", err
	}

	now := time.Now()
	if err := s.UserRepo.UpdateLastLogin(user.ID, now); err != nil {
		return "", err
	}

	return util.GenerateJWT(user.Email, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

// GetCurrentUser 令牌主体（邮箱）必须仍能解析到用户行，否则视为未认证
func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByEmail(claims.Email)
	if err != nil {
		return nil
	}
	return user
}

// DeleteAccount 注销账户并连带删除本人全部测验结果
func (s *AuthService) DeleteAccount(userID uint) error {
	return s.UserRepo.DeleteWithResults(userID)
}
