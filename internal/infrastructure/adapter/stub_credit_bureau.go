package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

var stubBureaus = []string{"equifax", "transunion", "experian"}

// StubCreditBureauClient is a development/test adapter that returns a
// deterministic score derived from the tenant ID.
// It implements port.CreditBureauClient.
type StubCreditBureauClient struct{}

// NewStubCreditBureauClient creates a new stub adapter.
func NewStubCreditBureauClient() *StubCreditBureauClient {
	return &StubCreditBureauClient{}
}

// PullScore returns a deterministic score between 300 and 850 based on a
// hash of the tenant ID. This allows repeatable test scenarios.
func (c *StubCreditBureauClient) PullScore(_ context.Context, tenantID string) (string, int, error) {
	if tenantID == "" {
		return "", 0, fmt.Errorf("tenant ID is required")
	}

	h := sha256.Sum256([]byte(tenantID))
	num := binary.BigEndian.Uint32(h[:4])
	score := 300 + int(num%551) // range [300, 850]
	bureau := stubBureaus[int(h[4])%len(stubBureaus)]

	return bureau, score, nil
}
