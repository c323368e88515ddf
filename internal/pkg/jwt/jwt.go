package jwt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	claimAccountID    = "account_id"
	claimEmail        = "email"
	claimEmployeeCode = "employee_code"
	claimRole         = "role"
	claimType         = "type"

	tokenTypeAccess = "access"
)

type Service interface {
	IssueToken(claims auth.Claims) (token string, expiresAt int64, err error)
	VerifyToken(token string) (auth.Claims, error)
	ClaimsFromToken(token jwt.Token) (auth.Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	ttl       time.Duration
	tokenAuth *jwtauth.JWTAuth
	now       func() time.Time
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	return &JWTService{
		ttl:       ttl,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:       time.Now,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// IssueToken signs claims with an absolute expiry of now+ttl.
func (j *JWTService) IssueToken(claims auth.Claims) (string, int64, error) {
	now := j.now()
	expiresAt := now.Add(j.ttl)

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		claimAccountID:    claims.AccountID,
		claimEmail:        claims.Email,
		claimEmployeeCode: claims.EmployeeCode,
		claimRole:         string(claims.Role),
		claimType:         tokenTypeAccess,
		jwt.JwtIDKey:      uuid.NewString(),
		jwt.IssuedAtKey:   now,
		jwt.ExpirationKey: expiresAt,
	})
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiresAt.Unix(), nil
}

// VerifyToken checks signature and expiry. Every failure is reported as
// auth.ErrInvalidToken.
func (j *JWTService) VerifyToken(tokenString string) (auth.Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil || token == nil {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return j.ClaimsFromToken(token)
}

// ClaimsFromToken converts an already verified token into typed claims.
func (j *JWTService) ClaimsFromToken(token jwt.Token) (auth.Claims, error) {
	if token == nil {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	m, err := token.AsMap(context.Background())
	if err != nil {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	if tokenType, _ := m[claimType].(string); tokenType != tokenTypeAccess {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	accountID, ok := toInt64(m[claimAccountID])
	if !ok || accountID <= 0 {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	email, _ := m[claimEmail].(string)
	code, _ := m[claimEmployeeCode].(string)
	role, _ := m[claimRole].(string)
	if !user.Role(role).IsValid() {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	return auth.Claims{
		AccountID:    accountID,
		Email:        email,
		EmployeeCode: code,
		Role:         user.Role(role),
		ExpiresAt:    token.Expiration(),
	}, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), float64(int64(n)) == n
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
