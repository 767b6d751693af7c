package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	claimIdPrefix    = "CLM-"
	claimIdRandChars = 6
	claimIdMaxLength = 24

	claimIdAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ0123456789"
)

// NewClaimID builds a collision-resistant claim identifier from a timestamp
// suffix plus random characters, bounded to a fixed maximum length.
func NewClaimID(now time.Time) string {
	var sb strings.Builder
	sb.WriteString(claimIdPrefix)
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 36))
	sb.WriteString("-")
	for range claimIdRandChars {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(claimIdAlphabet))))
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		sb.WriteByte(claimIdAlphabet[n.Int64()])
	}

	id := strings.ToUpper(sb.String())
	if len(id) > claimIdMaxLength {
		id = id[:claimIdMaxLength]
	}
	return id
}
