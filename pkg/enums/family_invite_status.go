package enums

import "fmt"

// FamilyInviteStatus captures the lifecycle of a family-sharing invite.
type FamilyInviteStatus string

const (
	FamilyInviteStatusPending  FamilyInviteStatus = "pending"
	FamilyInviteStatusAccepted FamilyInviteStatus = "accepted"
	FamilyInviteStatusDeclined FamilyInviteStatus = "declined"
)

var validFamilyInviteStatuses = []FamilyInviteStatus{
	FamilyInviteStatusPending,
	FamilyInviteStatusAccepted,
	FamilyInviteStatusDeclined,
}

// String implements fmt.Stringer.
func (s FamilyInviteStatus) String() string {
	return string(s)
}

// IsValid reports whether the value matches a known FamilyInviteStatus.
func (s FamilyInviteStatus) IsValid() bool {
	for _, candidate := range validFamilyInviteStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseFamilyInviteStatus converts raw input into a FamilyInviteStatus.
func ParseFamilyInviteStatus(value string) (FamilyInviteStatus, error) {
	for _, candidate := range validFamilyInviteStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid family invite status %q", value)
}
