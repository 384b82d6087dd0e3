package models

// StyleToken identifies a visual treatment for a render point. The
// mapping is a pure lookup so styling never leaks into the layout math.
type StyleToken string

const (
	StylePublicBubble    StyleToken = "bubble-public"
	StyleFriendsBubble   StyleToken = "bubble-friends"
	StylePremiumBubble   StyleToken = "bubble-premium"
	StyleAnonymousBubble StyleToken = "bubble-anonymous"
	StyleDot             StyleToken = "dot"
	StyleDisplacedDot    StyleToken = "dot-notched"
	StyleClusterBadge    StyleToken = "cluster-badge"
	StyleSelfMarker      StyleToken = "person-self"
	StyleFriendMarker    StyleToken = "person-friend"
	StylePersonStack     StyleToken = "person-stack"
)

// StyleFor resolves the style token for a render point
func StyleFor(rp RenderPoint) StyleToken {
	switch rp.Tier {
	case TierBubble:
		if rp.Post != nil {
			switch {
			case rp.Post.IsAnonymous:
				return StyleAnonymousBubble
			case rp.Post.UserIsPremium:
				return StylePremiumBubble
			case rp.Post.Visibility == VisibilityFriends:
				return StyleFriendsBubble
			}
		}
		return StylePublicBubble
	case TierDotStable:
		return StyleDot
	case TierDotDisplaced:
		return StyleDisplacedDot
	case TierCluster:
		return StyleClusterBadge
	case TierPerson:
		if rp.Person != nil && rp.Person.IsSelf {
			return StyleSelfMarker
		}
		return StyleFriendMarker
	case TierPersonCluster:
		return StylePersonStack
	}
	return StyleDot
}
