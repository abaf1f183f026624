package npc

// Relationship scores live in [0, 100]. At AcquaintedThreshold the score
// locks: once acquainted, the numeric score never falls below the threshold
// again. A decrease that would cross the floor pins the score there and sets
// the enemy badge instead.
const (
	RelationshipMin      = 0
	RelationshipMax      = 100
	AcquaintedThreshold  = 11
)

// Relationship bonus constants for social interactions.
const (
	BonusTeamJoin         = 7
	BonusCollabStart      = 7
	BonusBirthdayGreeting = 3
	BonusNewYearGreeting  = 3
	BonusSharedTraining   = 2
	BonusGiftMatched      = 20
	BonusGiftUnmatched    = 5
)

// AddRelationshipPoints mutates the NPC's relationship score by delta,
// applying the ratchet and enemy-badge semantics. Returns the new score.
func AddRelationshipPoints(n *NPC, delta int) int {
	score := n.Relationship + delta

	if score > RelationshipMax {
		score = RelationshipMax
	}

	if n.MinAcquaintanceLocked && score < AcquaintedThreshold {
		score = AcquaintedThreshold
		if delta < 0 {
			n.EnemyBadge = true
		}
	}
	if score < RelationshipMin {
		score = RelationshipMin
	}

	n.Relationship = score
	if score >= AcquaintedThreshold {
		n.MinAcquaintanceLocked = true
	}
	return score
}

// Acquainted reports whether the player knows this NPC.
func (n *NPC) Acquainted() bool {
	return n.MinAcquaintanceLocked || n.Relationship >= AcquaintedThreshold
}
