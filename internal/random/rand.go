package random

import (
	cr "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"
)

// Rand is used to generate random data. It is multi goroutine safe.
type Rand struct {
	rand *rand.Rand
	mu   sync.Mutex
}

// NewRand is used to create a new Rand with a seed mixed from the
// system random reader and the current time.
func NewRand() *Rand {
	hash := sha256.New()
	_, _ = io.CopyN(hash, cr.Reader, 64)
	_, _ = hash.Write(binaryTime())
	digest := hash.Sum(nil)
	seed := int64(binary.BigEndian.Uint64(digest[:8]))
	return &Rand{rand: rand.New(rand.NewSource(seed))} // #nosec
}

func binaryTime() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(time.Now().UnixNano()))
	return b
}

// Bytes is used to generate random byte slice that size = n.
func (r *Rand) Bytes(n int) []byte {
	if n < 1 {
		return nil
	}
	result := make([]byte, n)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < n; i++ {
		result[i] = byte(r.rand.Intn(256))
	}
	return result
}

// String returns a string that only include 0-9, A-Z and a-z.
func (r *Rand) String(n int) string {
	if n < 1 {
		return ""
	}
	result := make([]rune, n)
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < n; i++ {
		ri := 33 + r.rand.Intn(90)
		switch {
		case ri >= '0' && ri <= '9':
		case ri >= 'A' && ri <= 'Z':
		case ri >= 'a' && ri <= 'z':
		default:
			i--
			continue
		}
		result[i] = rune(ri)
	}
	return string(result)
}

// Intn returns, as an int, a non-negative pseudo-random number in [0, n).
func (r *Rand) Intn(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

var gRand = NewRand()

// Bytes is used to generate random byte slice that size = n.
func Bytes(n int) []byte {
	return gRand.Bytes(n)
}

// String returns a string that only include 0-9, A-Z and a-z.
func String(n int) string {
	return gRand.String(n)
}

// Int returns a non-negative pseudo-random number in [0, n).
func Int(n int) int {
	return gRand.Intn(n)
}
