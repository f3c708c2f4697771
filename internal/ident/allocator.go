package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
)

// Prefix names the entity an identifier belongs to.
type Prefix string

const (
	PrefixProduct  Prefix = "PROD"
	PrefixSupplier Prefix = "SUP"
	PrefixEmployee Prefix = "EMP"
)

// TimestampLayout is yyyyMMddHHmmss.
const TimestampLayout = "20060102150405"

// Policy selects how identifiers are built.
type Policy string

const (
	// PolicyTimestamp yields "<prefix>-<yyyyMMddHHmmss>". Two ids of the same
	// prefix allocated within one second are equal; the store rejects the
	// second insert with a duplicate id error.
	PolicyTimestamp Policy = "timestamp"
	// PolicySuffix appends "-<6 hex>" taken from a random UUID.
	PolicySuffix Policy = "suffix"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyTimestamp:
		return PolicyTimestamp, nil
	case PolicySuffix:
		return PolicySuffix, nil
	default:
		return "", fmt.Errorf("unknown id policy %q", s)
	}
}

type Allocator struct {
	clock  clock.Clock
	policy Policy
}

func NewAllocator(clk clock.Clock, policy Policy) *Allocator {
	if policy == "" {
		policy = PolicyTimestamp
	}
	return &Allocator{clock: clk, policy: policy}
}

// Next returns a fresh identifier for prefix.
func (a *Allocator) Next(prefix Prefix) string {
	id := fmt.Sprintf("%s-%s", prefix, a.clock.Now().Format(TimestampLayout))
	if a.policy == PolicySuffix {
		id += "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}
	return id
}

// Clock exposes the allocator's time source so records share the id's instant.
func (a *Allocator) Clock() clock.Clock {
	return a.clock
}
