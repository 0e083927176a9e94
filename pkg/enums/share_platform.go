package enums

import "fmt"

// SharePlatform identifies where a savings share was posted.
type SharePlatform string

const (
	SharePlatformFacebook  SharePlatform = "facebook"
	SharePlatformTwitter   SharePlatform = "twitter"
	SharePlatformWhatsApp  SharePlatform = "whatsapp"
	SharePlatformInstagram SharePlatform = "instagram"
	SharePlatformEmail     SharePlatform = "email"
)

var validSharePlatforms = []SharePlatform{
	SharePlatformFacebook,
	SharePlatformTwitter,
	SharePlatformWhatsApp,
	SharePlatformInstagram,
	SharePlatformEmail,
}

// String implements fmt.Stringer.
func (p SharePlatform) String() string {
	return string(p)
}

// IsValid reports whether the value matches a known SharePlatform.
func (p SharePlatform) IsValid() bool {
	for _, candidate := range validSharePlatforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseSharePlatform converts raw input into a SharePlatform.
func ParseSharePlatform(value string) (SharePlatform, error) {
	for _, candidate := range validSharePlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid share platform %q", value)
}
