package inbox

import (
	"math/rand"
	"testing"
)

func TestApplicationResolutionDay(t *testing.T) {
	// Find a seed whose first delay roll is 3 days, then replay it.
	var seed int64
	for s := int64(0); ; s++ {
		if 1+rand.New(rand.NewSource(s)).Intn(7) == 3 {
			seed = s
			break
		}
	}

	q := NewQueues(rand.New(rand.NewSource(seed)))
	app := q.SubmitApplication("team_1", 100)
	if app.ResolutionAbsDay != 103 {
		t.Fatalf("resolution day = %d, want 103", app.ResolutionAbsDay)
	}

	accept := func(string) bool { return true }

	// Scans before the resolution day must not touch the entry.
	for day := 100; day <= 102; day++ {
		apps, _ := q.ResolveDue(day, accept)
		if len(apps) != 0 || app.Attempted {
			t.Fatalf("day %d: application resolved early", day)
		}
	}

	apps, _ := q.ResolveDue(103, accept)
	if len(apps) != 1 || !apps[0].Accepted || !app.Attempted {
		t.Fatalf("day 103: apps=%d attempted=%v", len(apps), app.Attempted)
	}

	// Attempted entries are filtered on later scans.
	apps, _ = q.ResolveDue(104, accept)
	if len(apps) != 0 {
		t.Fatal("attempted application resolved twice")
	}
}

func TestCollabAcceptChance(t *testing.T) {
	cases := []struct {
		elapsed int
		want    float64
	}{
		{0, 0.7}, {5, 0.7}, {6, 0.5}, {10, 0.5}, {11, 0.3}, {15, 0.3}, {16, 0.1}, {40, 0.1},
	}
	for _, c := range cases {
		if got := CollabAcceptChance(c.elapsed); got != c.want {
			t.Fatalf("CollabAcceptChance(%d) = %v, want %v", c.elapsed, got, c.want)
		}
	}
}

func TestCollabResolution(t *testing.T) {
	q := NewQueues(rand.New(rand.NewSource(5)))
	c := q.ProposeCollab("npc_1", 10)

	_, collabs := q.ResolveDue(c.ResolutionAbsDay, func(string) bool { return false })
	if len(collabs) != 1 || !c.Attempted {
		t.Fatalf("collab not resolved on its day: %d", c.ResolutionAbsDay)
	}
	if q.HasPendingCollab("npc_1") {
		t.Fatal("resolved collab still pending")
	}
}

func TestInboxReadTracking(t *testing.T) {
	var b Inbox
	id := b.Post(Message{Kind: KindCommunityNews, Title: "Welcome", AbsDay: 0})
	b.Post(Message{Kind: KindChat, Title: "Hi", AbsDay: 1})

	if b.Unread() != 2 {
		t.Fatalf("unread = %d, want 2", b.Unread())
	}
	b.MarkRead(id)
	if b.Unread() != 1 {
		t.Fatalf("unread after read = %d, want 1", b.Unread())
	}
}
