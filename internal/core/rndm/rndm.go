package rndm

import (
	"math/rand"
	"time"

	"github.com/uptrace/bun/extra/bunbig"

	"github.com/nearindexer/arne/near"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

func String(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func Bytes(l int) []byte {
	token := make([]byte, l)
	rand.Read(token)
	return token
}

func Hash() near.CryptoHash {
	var h near.CryptoHash
	copy(h[:], Bytes(32))
	return h
}

func AccountID() string {
	return String(12) + ".near"
}

func BigInt() *bunbig.Int {
	return bunbig.FromUInt64(rand.Uint64())
}
