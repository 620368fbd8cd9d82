package helpers

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and validates the bearer tokens handed out at
// registration and login. A single symmetric secret signs every token;
// the secret and issuer are fixed at construction and never re-read
// from the environment.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carried by every issued token. UserID is kept as a string claim
// and parsed back to an integer on extraction.
type Claims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// IntUserID parses the string userId claim back to an integer.
func (c *Claims) IntUserID() (int, bool) {
	id, err := strconv.Atoi(c.UserID)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Generate signs a token carrying the applicant's identity claims,
// expiring ttl from now.
func (m *JWTManager) Generate(userID int, email, firstName, lastName string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    strconv.Itoa(userID),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Parse verifies signature, issuer, and expiry (no leeway, audience not
// checked) and returns the claims.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Validate reports whether the token verifies against the configured
// secret and issuer and has not expired.
func (m *JWTManager) Validate(tokenStr string) bool {
	_, err := m.Parse(tokenStr)
	return err == nil
}

// ExtractUserID validates the token and parses its userId claim.
// It returns false on any validation or parse failure.
func (m *JWTManager) ExtractUserID(tokenStr string) (int, bool) {
	claims, err := m.Parse(tokenStr)
	if err != nil {
		return 0, false
	}
	return claims.IntUserID()
}
