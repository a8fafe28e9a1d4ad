package types

import (
	"encoding/json"
	"fmt"
)

// LinkStatusKind enumerates the four possible link classifications.
type LinkStatusKind int

const (
	// SrcUnexists means nothing occupies the link path yet; the link can be created
	SrcUnexists LinkStatusKind = iota

	// DstUnexists means the link target does not exist, so a link would dangle
	DstUnexists

	// Exists means a symlink is present and points at the declared target
	Exists

	// Unexpected means a symlink is present but points somewhere else
	Unexpected
)

// String returns the string representation of the kind
func (k LinkStatusKind) String() string {
	switch k {
	case SrcUnexists:
		return "src_unexists"
	case DstUnexists:
		return "dst_unexists"
	case Exists:
		return "exists"
	case Unexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind by name.
func (k LinkStatusKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// LinkStatus is the observed state of one link. Found is only meaningful
// when Kind is Unexpected; use the constructors to build values.
type LinkStatus struct {
	Kind  LinkStatusKind `json:"kind"`
	Found string         `json:"found,omitempty"`
}

// StatusSrcUnexists returns a SrcUnexists status.
func StatusSrcUnexists() LinkStatus { return LinkStatus{Kind: SrcUnexists} }

// StatusDstUnexists returns a DstUnexists status.
func StatusDstUnexists() LinkStatus { return LinkStatus{Kind: DstUnexists} }

// StatusExists returns an Exists status.
func StatusExists() LinkStatus { return LinkStatus{Kind: Exists} }

// StatusUnexpected returns an Unexpected status carrying the actual target.
func StatusUnexpected(found string) LinkStatus {
	return LinkStatus{Kind: Unexpected, Found: found}
}

// String returns a short human readable description
func (s LinkStatus) String() string {
	switch s.Kind {
	case SrcUnexists:
		return "link does not exist"
	case DstUnexists:
		return "target does not exist"
	case Exists:
		return "linked"
	case Unexpected:
		return fmt.Sprintf("found %s", s.Found)
	default:
		return "unknown"
	}
}

// Link is a resolved link paired with its observed status. Src is the path
// of the symlink itself and Dst is what it should point at.
type Link struct {
	Src    string     `json:"src"`
	Dst    string     `json:"dst"`
	Status LinkStatus `json:"status"`
}
