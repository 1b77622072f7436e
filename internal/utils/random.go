package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"strconv"
	"time"
)

// GenerateRideID builds a collision-free ride identifier: a base36
// millisecond timestamp prefix for storage key distribution, then 128
// bits of cryptographic randomness as hex.
func GenerateRideID() string {
	b := make([]byte, RideIDRandomBytes)
	rand.Read(b)

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return timestamp + "-" + hex.EncodeToString(b)
}

// SecureRandomInt returns a uniform random int in [0, max) from the
// crypto source. max must be positive.
func SecureRandomInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}
