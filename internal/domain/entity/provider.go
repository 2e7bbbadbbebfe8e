package entity

// ProviderType identifies how a credential was established.
type ProviderType string

const (
	// ProviderTypeLocal indicates an email/password credential.
	ProviderTypeLocal ProviderType = "local"
	// ProviderTypeGoogle indicates a linked Google account.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeFacebook indicates a linked Facebook account.
	ProviderTypeFacebook ProviderType = "facebook"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeLocal, ProviderTypeGoogle, ProviderTypeFacebook:
		return true
	default:
		return false
	}
}
