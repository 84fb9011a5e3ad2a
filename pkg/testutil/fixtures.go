package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestTenantUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestLandlordID   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestPropertyID   = uuid.MustParse("00000000-0000-0000-0000-000000000010")
	TestLeaseID      = uuid.MustParse("00000000-0000-0000-0000-000000000020")
)
