package jwt

import (
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-engine/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidClaims = errors.New("token claims are missing or invalid")

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":       u.ID,
		"email":         u.Email,
		"employee_id":   returnValueOrNil(u.EmployeeID),
		"department_id": returnValueOrNil(u.DepartmentID),
		"role":          string(u.Role),
		"type":          "access",
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// CallerFromClaims builds the caller identity carried by an access token.
func CallerFromClaims(claims map[string]interface{}) (user.Caller, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Caller{}, ErrInvalidClaims
	}

	roleStr, ok := claims["role"].(string)
	role := user.Role(roleStr)
	if !ok || !role.IsValid() {
		return user.Caller{}, ErrInvalidClaims
	}

	caller := user.Caller{
		UserID: userID,
		Role:   role,
	}
	if employeeID, ok := claims["employee_id"].(string); ok {
		caller.EmployeeID = employeeID
	}
	if departmentID, ok := claims["department_id"].(string); ok {
		caller.DepartmentID = departmentID
	}

	return caller, nil
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
