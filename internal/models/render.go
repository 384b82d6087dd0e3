package models

// Tier classifies how a render point should be drawn
type Tier string

const (
	TierBubble        Tier = "bubble"         // full detail post marker
	TierDotStable     Tier = "dot-stable"     // batchable point, no displacement bookkeeping
	TierDotDisplaced  Tier = "dot-displaced"  // individually displaced point with notch
	TierCluster       Tier = "cluster"        // numbered badge for >=2 grouped dots
	TierPerson        Tier = "person"         // individual live position
	TierPersonCluster Tier = "person-cluster" // orbit stack of co-located people
)

// RenderPoint is a single draw instruction produced by a layout pass
type RenderPoint struct {
	ID   string `json:"id"`
	Tier Tier   `json:"tier"`

	// Style is the resolved visual treatment, filled in once the tier
	// and payload are final
	Style StyleToken `json:"style"`

	// Final screen-anchored position after repulsion
	DisplayLat float64 `json:"displayLat"`
	DisplayLng float64 `json:"displayLng"`

	// True coordinate, preserved for notch/indicator rendering
	OriginalLat float64 `json:"originalLat"`
	OriginalLng float64 `json:"originalLng"`

	// NotchAngle is the direction (degrees, atan2 convention) from the
	// rendered position back to the true coordinate. Only meaningful for
	// the dot-displaced tier.
	NotchAngle float64 `json:"notchAngle,omitempty"`

	// Count is the member count for cluster and person-cluster tiers
	Count int `json:"count,omitempty"`

	// StackIndex is this person's position in its orbit stack: 0 is the
	// leader, -1 means ungrouped. Only meaningful for the person tier.
	StackIndex int `json:"stackIndex"`

	// MemberIDs lists cluster members (leader first where applicable)
	MemberIDs []string `json:"memberIds,omitempty"`

	// Payload passthrough for the rendering layer
	Post   *Post   `json:"post,omitempty"`
	Person *Person `json:"person,omitempty"`
}

// Layout is the complete output of one layout pass
type Layout struct {
	Points []RenderPoint `json:"points"`

	// ActionableIDs lists bubbles inside the focus band that expose
	// interactive controls
	ActionableIDs []string `json:"actionableIds"`

	// Carousels maps each bubble leader to its swipe-navigable post ids,
	// leader included
	Carousels map[string][]string `json:"carousels"`
}
