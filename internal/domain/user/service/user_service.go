package service

import (
	"errors"
	"fmt"

	"rexsphere/internal/domain/user/model"
	"rexsphere/internal/domain/user/repository"
	"rexsphere/internal/pkg/apperrors"
	"rexsphere/internal/pkg/enums"
	"rexsphere/pkg/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService 用户服务接口
type UserService interface {
	Register(user *model.User) (*model.User, error)
	Login(username, password string) (string, error)
	GetByID(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	GetAll() ([]model.User, error)
	Update(id uint, updated *model.User) (*model.User, error)
	UpdatePassword(id uint, currentPassword, newPassword string) error
	Delete(id uint) error
	GetPreferredCategories(id uint) ([]enums.Category, error)
	UpdateProfilePictureURL(id uint, url string) error
}

// userService 实现
type userService struct {
	repo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register 注册用户，密码入库前做 bcrypt 哈希
func (s *userService) Register(user *model.User) (*model.User, error) {
	// 偏好分类按封闭枚举校验后再落库
	if _, err := user.GetPreferredCategories(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already taken", apperrors.ErrConflict)
		}
		return nil, err
	}
	return user, nil
}

// Login 校验用户名密码并签发 Token
func (s *userService) Login(username, password string) (string, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: bad credentials", apperrors.ErrUnauthorized)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: bad credentials", apperrors.ErrUnauthorized)
	}

	token, _, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetByID 获取单个用户
func (s *userService) GetByID(id uint) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// GetByUsername 按用户名获取用户
func (s *userService) GetByUsername(username string) (*model.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
		}
		return nil, err
	}
	return user, nil
}

// GetAll 获取全部用户
func (s *userService) GetAll() ([]model.User, error) {
	return s.repo.GetAll()
}

// Update 部分更新资料字段。目标不存在时返回明确的 NotFound。
func (s *userService) Update(id uint, updated *model.User) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}

	if updated.FirstName != "" {
		user.FirstName = updated.FirstName
	}
	if updated.LastName != "" {
		user.LastName = updated.LastName
	}
	if updated.Username != "" {
		user.Username = updated.Username
	}
	if updated.Email != "" {
		user.Email = updated.Email
	}
	if updated.MobileNumber != "" {
		user.MobileNumber = updated.MobileNumber
	}
	if updated.Address != "" {
		user.Address = updated.Address
	}
	if updated.DateOfBirth != nil {
		user.DateOfBirth = updated.DateOfBirth
	}
	if updated.PreferredCategories != "" {
		if _, err := updated.GetPreferredCategories(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		user.PreferredCategories = updated.PreferredCategories
	}

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword 校验旧密码后更新
func (s *userService) UpdatePassword(id uint, currentPassword, newPassword string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, id)
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return fmt.Errorf("%w: current password mismatch", apperrors.ErrUnauthorized)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.repo.Update(user)
}

// Delete 删除用户
func (s *userService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, id)
		}
		return err
	}
	return s.repo.Delete(id)
}

// GetPreferredCategories 解析用户偏好分类
func (s *userService) GetPreferredCategories(id uint) ([]enums.Category, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user.GetPreferredCategories()
}

// UpdateProfilePictureURL 更新头像地址
func (s *userService) UpdateProfilePictureURL(id uint, url string) error {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", apperrors.ErrNotFound, id)
		}
		return err
	}
	user.ProfilePictureURL = url
	return s.repo.Update(user)
}
