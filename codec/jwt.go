package codec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/erraggy/xutil/xuerrors"
)

// MinSecretLength is the shortest HMAC secret accepted.
const MinSecretLength = 8

// JWTAlgorithm names a supported signing algorithm.
type JWTAlgorithm string

const (
	HS256 JWTAlgorithm = "HS256"
	HS384 JWTAlgorithm = "HS384"
	HS512 JWTAlgorithm = "HS512"
	RS256 JWTAlgorithm = "RS256"
	RS384 JWTAlgorithm = "RS384"
	RS512 JWTAlgorithm = "RS512"
)

// JWTAlgorithms lists the supported algorithms.
func JWTAlgorithms() []JWTAlgorithm {
	return []JWTAlgorithm{HS256, HS384, HS512, RS256, RS384, RS512}
}

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// JWTEncodeRequest describes a token to sign.
type JWTEncodeRequest struct {
	Payload map[string]any `json:"payload"`
	// Secret is the HMAC secret, or a PEM encoded RSA private key for RS*.
	Secret    string         `json:"secret"`
	Algorithm JWTAlgorithm   `json:"algorithm"`
	Headers   map[string]any `json:"headers,omitempty"`
	// ExpiryMinutes sets exp relative to now when positive.
	ExpiryMinutes int `json:"expiry_minutes,omitempty"`
	// Now overrides the clock; zero means time.Now.
	Now time.Time `json:"-"`
}

// JWTEncodeResult is a signed token.
type JWTEncodeResult struct {
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// JWTDecodeRequest describes a token to verify.
type JWTDecodeRequest struct {
	Token string `json:"token"`
	// Secret is the HMAC secret, or a PEM encoded RSA public key for RS*.
	Secret       string       `json:"secret"`
	Algorithm    JWTAlgorithm `json:"algorithm"`
	VerifyExpiry bool         `json:"verify_expiry"`
	// Now overrides the clock; zero means time.Now.
	Now time.Time `json:"-"`
}

// JWTDecodeResult is a verified token.
type JWTDecodeResult struct {
	Payload   map[string]any `json:"payload"`
	Headers   map[string]any `json:"headers"`
	IssuedAt  *time.Time     `json:"issued_at"`
	ExpiresAt *time.Time     `json:"expires_at"`
}

func signingMethod(alg JWTAlgorithm) (jwt.SigningMethod, error) {
	if alg == "" {
		alg = HS256
	}
	switch JWTAlgorithm(strings.ToUpper(string(alg))) {
	case HS256:
		return jwt.SigningMethodHS256, nil
	case HS384:
		return jwt.SigningMethodHS384, nil
	case HS512:
		return jwt.SigningMethodHS512, nil
	case RS256:
		return jwt.SigningMethodRS256, nil
	case RS384:
		return jwt.SigningMethodRS384, nil
	case RS512:
		return jwt.SigningMethodRS512, nil
	}
	return nil, xuerrors.Input("algorithm", "algorithm must be one of %v", JWTAlgorithms())
}

func isRSA(m jwt.SigningMethod) bool {
	_, ok := m.(*jwt.SigningMethodRSA)
	return ok
}

// MaxExpiryMinutes is the largest expiry representable as a time.Duration.
const MaxExpiryMinutes = math.MaxInt64 / int64(time.Minute)

func hmacSecret(secret string) ([]byte, error) {
	if len(secret) < MinSecretLength {
		return nil, xuerrors.Input("secret", "secret must be at least %d characters", MinSecretLength)
	}
	return []byte(secret), nil
}

// EncodeJWT signs req.Payload. An iat claim is always set and exp is set
// when ExpiryMinutes is positive.
func EncodeJWT(req JWTEncodeRequest) (JWTEncodeResult, error) {
	method, err := signingMethod(req.Algorithm)
	if err != nil {
		return JWTEncodeResult{}, err
	}
	if req.ExpiryMinutes < 0 {
		return JWTEncodeResult{}, xuerrors.Input("expiry_minutes", "expiry must be at least 1 minute")
	}
	if int64(req.ExpiryMinutes) > MaxExpiryMinutes {
		return JWTEncodeResult{}, xuerrors.Input("expiry_minutes", "expiry must be at most %d minutes", MaxExpiryMinutes)
	}

	var key any
	if isRSA(method) {
		key, err = jwt.ParseRSAPrivateKeyFromPEM([]byte(req.Secret))
		if err != nil {
			return JWTEncodeResult{}, &xuerrors.InputError{Field: "secret", Message: "expected a PEM encoded RSA private key", Cause: err}
		}
	} else if key, err = hmacSecret(req.Secret); err != nil {
		return JWTEncodeResult{}, err
	}

	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	claims := make(jwt.MapClaims, len(req.Payload)+2)
	for k, v := range req.Payload {
		claims[k] = v
	}
	var res JWTEncodeResult
	if req.ExpiryMinutes > 0 {
		exp := now.Add(time.Duration(req.ExpiryMinutes) * time.Minute).Truncate(time.Second)
		claims["exp"] = exp.Unix()
		res.ExpiresAt = &exp
	}
	claims["iat"] = now.Unix()

	token := jwt.NewWithClaims(method, claims)
	for k, v := range req.Headers {
		if k == "alg" {
			continue
		}
		token.Header[k] = v
	}

	res.Token, err = token.SignedString(key)
	if err != nil {
		return JWTEncodeResult{}, fmt.Errorf("failed to encode JWT: %w", err)
	}
	return res, nil
}

// DecodeJWT verifies the token signature and, when VerifyExpiry is set, its
// exp claim. Expired tokens and bad signatures yield a *xuerrors.TokenError.
func DecodeJWT(req JWTDecodeRequest) (JWTDecodeResult, error) {
	if !tokenPattern.MatchString(req.Token) {
		return JWTDecodeResult{}, xuerrors.Input("token", "invalid JWT token format")
	}
	method, err := signingMethod(req.Algorithm)
	if err != nil {
		return JWTDecodeResult{}, err
	}

	var key any
	if isRSA(method) {
		key, err = jwt.ParseRSAPublicKeyFromPEM([]byte(req.Secret))
		if err != nil {
			return JWTDecodeResult{}, &xuerrors.InputError{Field: "secret", Message: "expected a PEM encoded RSA public key", Cause: err}
		}
	} else if key, err = hmacSecret(req.Secret); err != nil {
		return JWTDecodeResult{}, err
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{method.Alg()})}
	if !req.VerifyExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	if !req.Now.IsZero() {
		now := req.Now
		opts = append(opts, jwt.WithTimeFunc(func() time.Time { return now }))
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(req.Token, claims, func(*jwt.Token) (any, error) { return key, nil }, opts...)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return JWTDecodeResult{}, &xuerrors.TokenError{Expired: true, Cause: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return JWTDecodeResult{}, &xuerrors.TokenError{Message: "signature verification failed", Cause: err}
	case errors.Is(err, jwt.ErrTokenMalformed):
		return JWTDecodeResult{}, &xuerrors.InputError{Field: "token", Message: "malformed token", Cause: err}
	default:
		return JWTDecodeResult{}, &xuerrors.InputError{Field: "token", Message: "token decoding failed", Cause: err}
	}

	res := JWTDecodeResult{Payload: claims, Headers: token.Header}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		t := iat.Time
		res.IssuedAt = &t
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		res.ExpiresAt = &t
	}
	return res, nil
}
