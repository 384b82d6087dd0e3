package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForBubbles(t *testing.T) {
	cases := []struct {
		name string
		post Post
		want StyleToken
	}{
		{"public", Post{Visibility: VisibilityPublic}, StylePublicBubble},
		{"friends", Post{Visibility: VisibilityFriends}, StyleFriendsBubble},
		{"premium", Post{UserIsPremium: true}, StylePremiumBubble},
		{"anonymous wins over premium", Post{IsAnonymous: true, UserIsPremium: true}, StyleAnonymousBubble},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.post
			got := StyleFor(RenderPoint{Tier: TierBubble, Post: &p})
			assert.Equal(t, tc.want, got)
		})
	}

	// A bubble with no payload falls back to the public treatment.
	assert.Equal(t, StylePublicBubble, StyleFor(RenderPoint{Tier: TierBubble}))
}

func TestStyleForOtherTiers(t *testing.T) {
	assert.Equal(t, StyleDot, StyleFor(RenderPoint{Tier: TierDotStable}))
	assert.Equal(t, StyleDisplacedDot, StyleFor(RenderPoint{Tier: TierDotDisplaced}))
	assert.Equal(t, StyleClusterBadge, StyleFor(RenderPoint{Tier: TierCluster}))
	assert.Equal(t, StylePersonStack, StyleFor(RenderPoint{Tier: TierPersonCluster}))

	self := Person{ID: "me", IsSelf: true}
	other := Person{ID: "pal"}
	assert.Equal(t, StyleSelfMarker, StyleFor(RenderPoint{Tier: TierPerson, Person: &self}))
	assert.Equal(t, StyleFriendMarker, StyleFor(RenderPoint{Tier: TierPerson, Person: &other}))
}
