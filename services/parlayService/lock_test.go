package parlayService

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"parlayPickem/models"
)

type lockFixture struct {
	startedMatchup models.Matchup
	otherMatchup   models.Matchup
	hitParlay      models.Parlay
	safeParlay     models.Parlay
	directPick     models.Pick
	siblingPick    models.Pick
	safePick       models.Pick
}

// Two users: alice's parlay holds a pick on the starting matchup plus a
// sibling pick on another game; bob only picked the other game.
func setupLockFixture(t *testing.T, db *gorm.DB) lockFixture {
	t.Helper()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	started := models.Matchup{HomeTeam: "Bills", AwayTeam: "Dolphins", GameDate: "20250907"}
	other := models.Matchup{HomeTeam: "Chiefs", AwayTeam: "Chargers", GameDate: "20250908"}
	if err := db.Create(&started).Error; err != nil {
		t.Fatalf("Failed to seed matchup: %v", err)
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("Failed to seed matchup: %v", err)
	}

	startedOdds := models.Odds{MatchupID: started.ID, Spread: -3.5}
	otherOdds := models.Odds{MatchupID: other.ID, Spread: 1.5}
	if err := db.Create(&startedOdds).Error; err != nil {
		t.Fatalf("Failed to seed odds: %v", err)
	}
	if err := db.Create(&otherOdds).Error; err != nil {
		t.Fatalf("Failed to seed odds: %v", err)
	}

	hitParlay := seedParlay(t, db, alice.ID, false, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))
	safeParlay := seedParlay(t, db, bob.ID, false, time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))

	directPick := models.Pick{
		ParlayID: hitParlay.ID, UserID: alice.ID,
		MatchupID: started.ID, OddsID: startedOdds.ID, Selection: "home",
	}
	siblingPick := models.Pick{
		ParlayID: hitParlay.ID, UserID: alice.ID,
		MatchupID: other.ID, OddsID: otherOdds.ID, Selection: "away",
	}
	safePick := models.Pick{
		ParlayID: safeParlay.ID, UserID: bob.ID,
		MatchupID: other.ID, OddsID: otherOdds.ID, Selection: "home",
	}
	for _, pick := range []*models.Pick{&directPick, &siblingPick, &safePick} {
		if err := db.Create(pick).Error; err != nil {
			t.Fatalf("Failed to seed pick: %v", err)
		}
	}

	return lockFixture{
		startedMatchup: started,
		otherMatchup:   other,
		hitParlay:      hitParlay,
		safeParlay:     safeParlay,
		directPick:     directPick,
		siblingPick:    siblingPick,
		safePick:       safePick,
	}
}

func reloadLocked(t *testing.T, db *gorm.DB, model interface{}, id string) bool {
	t.Helper()
	switch m := model.(type) {
	case *models.Matchup:
		if err := db.First(m, "id = ?", id).Error; err != nil {
			t.Fatalf("Failed to reload matchup: %v", err)
		}
		return m.Locked
	case *models.Parlay:
		if err := db.First(m, "id = ?", id).Error; err != nil {
			t.Fatalf("Failed to reload parlay: %v", err)
		}
		return m.Locked
	case *models.Pick:
		if err := db.First(m, "id = ?", id).Error; err != nil {
			t.Fatalf("Failed to reload pick: %v", err)
		}
		return m.Locked
	}
	t.Fatal("Unsupported model")
	return false
}

func TestLockMatchupCascade(t *testing.T) {
	db := newTestDB(t)
	fx := setupLockFixture(t, db)

	if err := LockMatchupCascade(db, fx.startedMatchup.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reloadLocked(t, db, &models.Matchup{}, fx.startedMatchup.ID) {
		t.Error("Expected started matchup to be locked")
	}
	if reloadLocked(t, db, &models.Matchup{}, fx.otherMatchup.ID) {
		t.Error("Expected other matchup to stay unlocked")
	}

	if !reloadLocked(t, db, &models.Parlay{}, fx.hitParlay.ID) {
		t.Error("Expected parlay holding the pick to be locked")
	}
	if reloadLocked(t, db, &models.Parlay{}, fx.safeParlay.ID) {
		t.Error("Expected uninvolved parlay to stay unlocked")
	}

	if !reloadLocked(t, db, &models.Pick{}, fx.directPick.ID) {
		t.Error("Expected pick on started matchup to be locked")
	}
	// Sibling pick locks with its parlay even though its game has not started.
	if !reloadLocked(t, db, &models.Pick{}, fx.siblingPick.ID) {
		t.Error("Expected sibling pick to mirror its parlay's lock")
	}
	if reloadLocked(t, db, &models.Pick{}, fx.safePick.ID) {
		t.Error("Expected uninvolved pick to stay unlocked")
	}
}

func TestLockMatchupCascade_Idempotent(t *testing.T) {
	db := newTestDB(t)
	fx := setupLockFixture(t, db)

	if err := LockMatchupCascade(db, fx.startedMatchup.ID); err != nil {
		t.Fatalf("Unexpected error on first lock: %v", err)
	}
	if err := LockMatchupCascade(db, fx.startedMatchup.ID); err != nil {
		t.Fatalf("Expected relocking to be a no-op, got %v", err)
	}

	if !reloadLocked(t, db, &models.Matchup{}, fx.startedMatchup.ID) {
		t.Error("Expected matchup to stay locked")
	}
	if !reloadLocked(t, db, &models.Pick{}, fx.directPick.ID) {
		t.Error("Expected pick to stay locked")
	}
	if reloadLocked(t, db, &models.Parlay{}, fx.safeParlay.ID) {
		t.Error("Expected uninvolved parlay to stay unlocked after relock")
	}
}

func TestLockMatchupCascade_NoPicks(t *testing.T) {
	db := newTestDB(t)

	matchup := models.Matchup{HomeTeam: "Jets", AwayTeam: "Patriots", GameDate: "20250907"}
	if err := db.Create(&matchup).Error; err != nil {
		t.Fatalf("Failed to seed matchup: %v", err)
	}

	if err := LockMatchupCascade(db, matchup.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !reloadLocked(t, db, &models.Matchup{}, matchup.ID) {
		t.Error("Expected matchup with no picks to lock cleanly")
	}
}
