// Package sampling implements pseudo-random number generators and the
// sampling of random coefficients and polynomials from them.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand, safe for concurrent use.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate a shared sequence of random bytes from a key, using the hash
// function blake2b. Two KeyedPRNG instantiated with the same key produce the
// same stream.
// WARNING: KeyedPRNG must not be shared across threads, as the resulting
// sequence would not be deterministic for a given key.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = append([]byte(nil), key...)
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with NewKeyedPRNG to instantiate a new PRNG that
// will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// BLAKE3PRNG is a KeyedPRNG-like deterministic generator backed by the
// blake3 XOF, which is faster than blake2b on large streams.
// The key must be exactly 32 bytes.
type BLAKE3PRNG struct {
	mutex  sync.Mutex
	hasher *blake3.Hasher
	xof    *blake3.Digest
}

// NewBLAKE3PRNG creates a new instance of BLAKE3PRNG from a 32-byte key.
func NewBLAKE3PRNG(key []byte) (*BLAKE3PRNG, error) {
	hasher, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewBLAKE3PRNG: %w", err)
	}
	prng := new(BLAKE3PRNG)
	prng.hasher = hasher
	prng.xof = hasher.Digest()
	return prng, nil
}

// Read reads bytes from the BLAKE3PRNG on sum.
func (prng *BLAKE3PRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *BLAKE3PRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.hasher.Reset()
	prng.xof = prng.hasher.Digest()
}
