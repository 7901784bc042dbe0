package badger

import (
	"fmt"

	"github.com/poiesic/lectern/core"
)

// Key prefixes for different data types
const (
	profileRecordPrefix = "prorec"
)

// makeProfileKey generates a key for a profile record by ID.
func makeProfileKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%020d", profileRecordPrefix, id))
}

// profileScanPrefix returns the prefix under which all profile records live.
// The zero-padded decimal in makeProfileKey keeps iteration order stable
// and identical to ascending ID order.
func profileScanPrefix() []byte {
	return []byte(profileRecordPrefix + ":")
}
