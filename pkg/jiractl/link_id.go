package jiractl

import "fmt"

// LinkKind tells the two link id spaces apart.
type LinkKind int

// Link kinds.
const (
	KindIssue LinkKind = iota
	KindRemote
)

const (
	issueLinkPrefix  = "I"
	remoteLinkPrefix = "L"
)

// String returns the display prefix of the kind.
func (k LinkKind) String() string {
	if k == KindRemote {
		return remoteLinkPrefix
	}
	return issueLinkPrefix
}

// LinkID is a displayed link id: a kind prefix followed by the tracker id.
type LinkID struct {
	Kind LinkKind
	ID   string
}

// String re-adds the kind prefix.
func (l LinkID) String() string {
	return l.Kind.String() + l.ID
}

// ParseLinkID splits a displayed link id into its kind and tracker id. Any
// prefix other than I or L is rejected with ErrLinkNotFound.
func ParseLinkID(s string) (LinkID, error) {
	if len(s) > 1 {
		switch s[:1] {
		case issueLinkPrefix:
			return LinkID{Kind: KindIssue, ID: s[1:]}, nil
		case remoteLinkPrefix:
			return LinkID{Kind: KindRemote, ID: s[1:]}, nil
		}
	}
	return LinkID{}, fmt.Errorf("%w: %q", ErrLinkNotFound, s)
}
