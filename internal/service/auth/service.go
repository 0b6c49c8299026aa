package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/guardhq/timesheet-backend-go/internal/domain/auth"
	"github.com/guardhq/timesheet-backend-go/internal/domain/employee"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/jwt"
	"github.com/guardhq/timesheet-backend-go/internal/pkg/validator"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	var validationErrs validator.ValidationErrors
	if validator.IsEmpty(req.Code) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(req.Password) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	if len(validationErrs) > 0 {
		return auth.TokenResponse{}, validationErrs
	}

	emp, err := a.employeeRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if emp.PasswordHash == "" {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(emp)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	employeeID, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	// rotate: the presented token is no longer valid after a refresh
	a.jwtService.RevokeToken(refreshToken)
	return a.issueTokens(emp)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		a.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (a *AuthServiceImpl) issueTokens(emp employee.Employee) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Code, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		EmployeeID:   emp.ID,
		Code:         emp.Code,
		Name:         emp.Name,
		Role:         string(emp.Role),
	}, nil
}
