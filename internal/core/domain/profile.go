package domain

import "time"

// Tier is the entitlement level derived from a profile's premium flag.
type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

// Profile is the per-user entitlement record. There is at most one per user id.
type Profile struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty"`
	IsPremium bool      `json:"is_premium" bson:"is_premium"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Tier reports the profile's current state. The only transition the system
// performs is standard -> premium.
func (p *Profile) Tier() Tier {
	if p.IsPremium {
		return TierPremium
	}
	return TierStandard
}

// CanUpgrade reports whether a standard -> premium transition is still pending.
func (p *Profile) CanUpgrade() bool {
	return !p.IsPremium
}
