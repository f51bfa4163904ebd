package jwt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/jwtauth/v5"
)

const (
	RoleAdmin     = "admin"
	RolePublisher = "publisher"

	roleClaim = "role"
)

type Config struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}

// New returns the HS256 signer/verifier for cfg.
func New(c *Config) (*jwtauth.JWTAuth, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return jwtauth.New("HS256", []byte(c.JWTSecret), nil), nil
}

// Claims is the caller identity carried by a token.
type Claims struct {
	Subject string
	Role    string
}

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// PublisherID parses the subject as a publisher id. ok is false unless the subject is a positive integer.
func (c Claims) PublisherID() (id int64, ok bool) {
	if !govalidator.IsInt(c.Subject) {
		return 0, false
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return Claims{}, err
	}
	role, _ := t.PrivateClaims()[roleClaim].(string)
	return Claims{Subject: t.Subject(), Role: role}, nil
}

// FromContext returns the claims of a token already verified by jwtauth.Verifier.
func FromContext(ctx context.Context) (Claims, error) {
	t, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}
	if t == nil {
		return Claims{}, fmt.Errorf("no token in context")
	}
	role, _ := claims[roleClaim].(string)
	return Claims{Subject: t.Subject(), Role: role}, nil
}

// NewToken creates a JWT for the given identity that expires after ttl.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, c Claims) (string, error) {
	claims := map[string]any{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if c.Subject != "" {
		claims["sub"] = c.Subject
	}
	if c.Role != "" {
		claims[roleClaim] = c.Role
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return ts, err
	}
	return ts, nil
}

// NewPublisherToken creates a publisher token whose subject is the publisher id.
func NewPublisherToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, publisherID int64) (string, error) {
	return NewToken(jwtAuth, ttl, Claims{Subject: strconv.FormatInt(publisherID, 10), Role: RolePublisher})
}
