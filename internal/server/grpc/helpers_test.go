package grpc

import (
	"time"

	"github.com/dmitrijs2005/carswipe/internal/server/auth"
)

func issueToken(secret, userID string) (string, error) {
	tok, _, err := auth.GenerateToken(userID, []byte(secret), time.Hour)
	return tok, err
}
