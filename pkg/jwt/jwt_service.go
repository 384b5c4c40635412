package jwt

import (
	"Recipe-Share-API/domain"
	"Recipe-Share-API/internal/utils"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService issues and verifies the signed session tokens returned by
	// login. The user id and role are always recoverable from a valid token.
	JWTService interface {
		GenerateToken(userID uint, role string) string
		ValidateToken(token string) (*jwt.Token, error)
		GetUserByToken(token string) (uint, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	secretKey := utils.GetConfig("JWT_SECRET")
	return secretKey
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "RECIPESHARE",
	}
}

func (j *jwtService) GenerateToken(userID uint, role string) string {
	claims := jwtUserClaim{
		strconv.FormatUint(uint64(userID), 10),
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute * 120)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (uint, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", domain.ErrTokenExpired
		}
		return 0, "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return 0, "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)

	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, "", domain.ErrTokenInvalid
	}
	return uint(id), claims.Role, nil
}
