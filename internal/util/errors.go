package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserExists         = errors.New("邮箱或用户名已被注册")
	ErrInvalidCredentials = errors.New("邮箱未注册")
	ErrQuizNotFound       = errors.New("测验不存在")
	ErrResultExists       = errors.New("该测验的结果已记录")
)
