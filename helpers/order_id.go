package helpers

import (
	"math/rand"
	"time"
)

const orderIDPrefix = "TOKEN-"

const orderIDBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomToken(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = orderIDBytes[src.Intn(len(orderIDBytes))]
	}
	return string(b)
}

// GenerateOrderID membuat external ID untuk order, contoh: TOKEN-x7Kp2QzR
func GenerateOrderID() string {
	return orderIDPrefix + randomToken(8)
}
