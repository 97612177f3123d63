// Package otp generates and checks numeric one-time passwords.
//
// Verification is a plain string comparison; constant-time comparison is not
// used. Codes live for minutes and are single-use, which is the accepted risk.
package otp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

const (
	CodeLength = 6
	// DefaultTTL is how long an issued code stays verifiable.
	DefaultTTL = 300 * time.Second
)

const (
	codeSpace = 1_000_000
	// largest multiple of codeSpace that fits in uint32; values above are redrawn
	// so every code is equally likely.
	sampleLimit = (1 << 32) / codeSpace * codeSpace
)

type Service interface {
	Generate() (string, error)
	Verify(stored, provided string, expiry time.Time) bool
	ExpiryFrom(issuedAt time.Time) time.Time
}

type service struct {
	random io.Reader
	now    func() time.Time
	ttl    time.Duration
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithRandom(r io.Reader) Option {
	return func(s *service) { s.random = r }
}

func WithTTL(ttl time.Duration) Option {
	return func(s *service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func NewService(opts ...Option) Service {
	s := &service{
		random: rand.Reader,
		now:    time.Now,
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns a zero-padded code drawn uniformly from 000000-999999.
func (s *service) Generate() (string, error) {
	var buf [4]byte
	for {
		if _, err := io.ReadFull(s.random, buf[:]); err != nil {
			return "", fmt.Errorf("otp: read random: %w", err)
		}
		v := binary.BigEndian.Uint32(buf[:])
		if uint64(v) < sampleLimit {
			return fmt.Sprintf("%0*d", CodeLength, v%codeSpace), nil
		}
	}
}

func (s *service) Verify(stored, provided string, expiry time.Time) bool {
	return Verify(stored, provided, expiry, s.now())
}

func (s *service) ExpiryFrom(issuedAt time.Time) time.Time {
	return issuedAt.Add(s.ttl)
}

// Verify is false for empty input, false once now is past expiry, otherwise
// exact equality. Expired and wrong codes are indistinguishable to callers.
func Verify(stored, provided string, expiry, now time.Time) bool {
	if stored == "" || provided == "" {
		return false
	}
	if now.After(expiry) {
		return false
	}
	return stored == provided
}
