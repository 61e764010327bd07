package chesscore

import (
	"errors"
	"strings"
	"testing"
)

func seedGame(t testing.TB, seed string) *Game {
	t.Helper()
	opt, err := FEN(seed)
	if err != nil {
		t.Fatal(err)
	}
	return NewGame(opt)
}

func mustApply(t testing.TB, g *Game, moves ...string) GameStatus {
	t.Helper()
	var status GameStatus
	for _, m := range moves {
		var err error
		status, err = g.ApplyMove(m)
		if err != nil {
			t.Fatalf("move %s: %v%s", m, err, g.Board().Draw())
		}
	}
	return status
}

func TestBackRankCheckmate(t *testing.T) {
	g := seedGame(t, "6k1/5ppp/8/8/8/8/8/R3K3_w_-_-_0_1")
	status := mustApply(t, g, "a1a8")
	if status != StatusCheckmate {
		t.Fatalf("expected status %s but got %s%s", StatusCheckmate, status, g.Board().Draw())
	}
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	status := mustApply(t, g, "f2f3", "e7e5", "g2g4", "d8h4")
	if status != StatusCheckmate {
		t.Fatalf("expected status %s but got %s", StatusCheckmate, status)
	}
	if g.Turn() != White {
		t.Fatalf("expected white to be the mated side, got %s", g.Turn())
	}
}

func TestCheckmateFromSeed(t *testing.T) {
	g := seedGame(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR_w_KQkq_-_0_3")
	if g.Status() != StatusCheckmate {
		t.Fatalf("expected status %s but got %s", StatusCheckmate, g.Status())
	}
}

func TestMatedSideHasNoDestinations(t *testing.T) {
	g := seedGame(t, "6k1/5ppp/8/8/8/8/8/R3K3_w_-_-_0_1")
	mustApply(t, g, "a1a8")
	for _, sq := range []string{"g8", "f7", "g7", "h7"} {
		destinations, err := g.ValidDestinations(sq)
		if err != nil {
			t.Fatal(err)
		}
		if len(destinations) != 0 {
			t.Fatalf("expected no destinations from %s, got %v", sq, destinations)
		}
	}
}

func TestStalemate(t *testing.T) {
	g := seedGame(t, "k1K5/8/8/8/8/8/8/1Q6_w_-_-_0_1")
	status := mustApply(t, g, "b1b6")
	if status != StatusStalemate {
		t.Fatalf("expected status %s but got %s%s", StatusStalemate, status, g.Board().Draw())
	}
}

func TestCheck(t *testing.T) {
	g := NewGame()
	status := mustApply(t, g, "e2e4", "f7f6", "d1h5")
	if status != StatusCheck {
		t.Fatalf("expected status %s but got %s", StatusCheck, status)
	}
}

func TestRejectedMoveLeavesStateUntouched(t *testing.T) {
	g := NewGame()
	before := g.FEN()
	for _, m := range []string{"e2e5", "e7e5", "a1a3", "f1d3", "e1g1", "e2"} {
		if _, err := g.ApplyMove(m); err == nil {
			t.Fatalf("expected %s to be rejected", m)
		}
		if g.FEN() != before {
			t.Fatalf("state changed after rejected move %s: %s", m, g.FEN())
		}
	}
	if g.MovesPlayed() != 0 {
		t.Fatalf("expected empty history, got %d entries", g.MovesPlayed())
	}
}

func TestMalformedMoveStrings(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"", "e2", "e2e", "e2e44", "i2i4", "e0e4", "e2 e4"} {
		if _, err := g.ApplyMove(m); !errors.Is(err, ErrMalformedMove) {
			t.Fatalf("expected ErrMalformedMove for %q, got %v", m, err)
		}
	}
}

func TestTurnOrder(t *testing.T) {
	g := NewGame()
	if _, err := g.ApplyMove("e7e5"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected black's move to be rejected on white's turn, got %v", err)
	}
	mustApply(t, g, "e2e4")
	if _, err := g.ApplyMove("d2d4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected white's second move in a row to be rejected, got %v", err)
	}
}

func TestEnPassant(t *testing.T) {
	g := NewGame()
	mustApply(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

	target, ok := g.State().EnPassantTarget()
	if !ok || target.String() != "d6" {
		t.Fatalf("expected en-passant target d6, got %v %v", target, ok)
	}

	mustApply(t, g, "e5d6")
	if !g.SquareIsEmpty("d5") {
		t.Fatalf("expected the bypassed pawn on d5 to be captured%s", g.Board().Draw())
	}
	if g.SquareIsEmpty("d6") {
		t.Fatal("expected the capturing pawn on d6")
	}
	if got := countPieces(g); got != 31 {
		t.Fatalf("expected 31 pieces after the en-passant capture, got %d", got)
	}
}

func TestEnPassantTargetExpires(t *testing.T) {
	g := NewGame()
	mustApply(t, g, "e2e4", "a7a6")
	if _, ok := g.State().EnPassantTarget(); ok {
		t.Fatal("expected the en-passant target to be cleared after the reply")
	}

	// A stale capture one move later must be rejected.
	g = NewGame()
	mustApply(t, g, "e2e4", "d7d5", "e4e5", "h7h6")
	if _, err := g.ApplyMove("e5d6"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected stale en-passant capture to be rejected, got %v", err)
	}
}

func TestCastling(t *testing.T) {
	g := seedGame(t, "r3k2r/8/8/8/8/8/8/R3K2R_w_KQkq_-_0_1")
	mustApply(t, g, "e1g1")
	snapshot := g.Snapshot()
	if snapshot[index("g1")] != "wK" || snapshot[index("f1")] != "wR" {
		t.Fatalf("expected king on g1 and rook on f1 after castling%s", g.Board().Draw())
	}
	if g.State().Castling().Has(CastleWhiteKingside) || g.State().Castling().Has(CastleWhiteQueenside) {
		t.Fatal("expected both white castling rights to be stripped")
	}

	mustApply(t, g, "e8c8")
	snapshot = g.Snapshot()
	if snapshot[index("c8")] != "bK" || snapshot[index("d8")] != "bR" {
		t.Fatalf("expected king on c8 and rook on d8 after castling%s", g.Board().Draw())
	}
}

func TestCastlingThroughAttackedSquare(t *testing.T) {
	// The black rook on f8 covers f1, the square the white king passes
	// through kingside. Queenside stays available.
	g := seedGame(t, "r4rk1/8/8/8/8/8/8/R3K2R_w_KQ_-_0_1")
	if _, err := g.ApplyMove("e1g1"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected castling through an attacked square to be rejected, got %v", err)
	}
	mustApply(t, g, "e1c1")
}

func TestCastlingWithoutRight(t *testing.T) {
	g := seedGame(t, "r3k2r/8/8/8/8/8/8/R3K2R_w_-_-_0_1")
	if _, err := g.ApplyMove("e1g1"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected castling without the right to be rejected, got %v", err)
	}
}

func TestCastlingBlocked(t *testing.T) {
	g := NewGame()
	if _, err := g.ApplyMove("e1g1"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected castling through occupied squares to be rejected, got %v", err)
	}
}

func TestRookMoveStripsOneRight(t *testing.T) {
	g := seedGame(t, "r3k2r/8/8/8/8/8/8/R3K2R_w_KQkq_-_0_1")
	mustApply(t, g, "h1h2")
	rights := g.State().Castling()
	if rights.Has(CastleWhiteKingside) {
		t.Fatal("expected the kingside right to be stripped after the rook move")
	}
	if !rights.Has(CastleWhiteQueenside) {
		t.Fatal("expected the queenside right to survive the rook move")
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	g := seedGame(t, "4k3/4r3/8/8/8/8/4B3/4K3_w_-_-_0_1")
	if _, err := g.ApplyMove("e2d3"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected the pinned bishop to be unable to move, got %v", err)
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	g := seedGame(t, "8/P6k/8/8/8/8/7K/8_w_-_-_0_1")
	mustApply(t, g, "a7a8")

	pending, ok := g.PendingPromotion()
	if !ok || pending.Color != White || pending.Square.String() != "a8" {
		t.Fatalf("expected a white promotion pending on a8, got %v %v", pending, ok)
	}
	if got := g.Snapshot()[index("a8")]; got != "wP" {
		t.Fatalf("expected the pawn to stay a pawn until resolved, got %q", got)
	}

	if err := g.Promote("x"); err != nil {
		t.Fatal(err)
	}
	if got := g.Snapshot()[index("a8")]; got != "wQ" {
		t.Fatalf("expected a queen on a8, got %q", got)
	}
	if !strings.HasPrefix(g.FEN(), "Q7/") {
		t.Fatalf("expected the promoted queen in the arrangement, got %s", g.FEN())
	}
}

func TestPromotionChoice(t *testing.T) {
	g := seedGame(t, "8/P6k/8/8/8/8/7K/8_w_-_-_0_1")
	mustApply(t, g, "a7a8")
	if err := g.Promote("N"); err != nil {
		t.Fatal(err)
	}
	if got := g.Snapshot()[index("a8")]; got != "wN" {
		t.Fatalf("expected a knight on a8, got %q", got)
	}
}

func TestPromoteWithoutPending(t *testing.T) {
	g := NewGame()
	if err := g.Promote("Q"); !errors.Is(err, ErrNoPendingPromotion) {
		t.Fatalf("expected ErrNoPendingPromotion, got %v", err)
	}
}

func TestPromotionSurvivesReply(t *testing.T) {
	g := seedGame(t, "8/P6k/8/8/8/8/7K/8_w_-_-_0_1")
	mustApply(t, g, "a7a8", "h7h6")

	pending, ok := g.PendingPromotion()
	if !ok || pending.Color != White || pending.Square.String() != "a8" {
		t.Fatalf("expected the promotion still pending on a8, got %v %v", pending, ok)
	}
	if err := g.Promote("Q"); err != nil {
		t.Fatal(err)
	}
	if got := g.Snapshot()[index("a8")]; got != "wQ" {
		t.Fatalf("expected a queen on a8, got %q", got)
	}
}

func TestPromotionClearedWhenPawnCaptured(t *testing.T) {
	g := seedGame(t, "1r6/P6k/8/8/8/8/7K/8_w_-_-_0_1")
	mustApply(t, g, "a7a8", "b8a8")

	if _, ok := g.PendingPromotion(); ok {
		t.Fatal("expected no promotion pending after the pawn was captured")
	}
	if err := g.Promote("Q"); !errors.Is(err, ErrNoPendingPromotion) {
		t.Fatalf("expected ErrNoPendingPromotion, got %v", err)
	}
}

func TestUndoTracksPendingPromotion(t *testing.T) {
	g := seedGame(t, "8/P6k/8/8/8/8/7K/8_w_-_-_0_1")
	mustApply(t, g, "a7a8")
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.PendingPromotion(); ok {
		t.Fatal("expected no promotion pending once the arrival was undone")
	}

	mustApply(t, g, "a7a8", "h7h6")
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	pending, ok := g.PendingPromotion()
	if !ok || pending.Square.String() != "a8" {
		t.Fatalf("expected the promotion pending again on a8, got %v %v", pending, ok)
	}
}

func TestUndoRestoresPriorState(t *testing.T) {
	g := NewGame()
	start := g.FEN()
	mustApply(t, g, "e2e4")
	afterFirst := g.FEN()
	mustApply(t, g, "e7e5")

	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.FEN() != afterFirst {
		t.Fatalf("expected %s after undo, got %s", afterFirst, g.FEN())
	}
	if err := g.Undo(); err != nil {
		t.Fatal(err)
	}
	if g.FEN() != start {
		t.Fatalf("expected the starting position after undo, got %s", g.FEN())
	}
	if err := g.Undo(); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestInitialNumOfValidMoves(t *testing.T) {
	g := NewGame()
	total := 0
	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			destinations, err := g.ValidDestinations(string([]byte{file, rank}))
			if err != nil {
				t.Fatal(err)
			}
			total += len(destinations)
		}
	}
	if total != 20 {
		t.Fatalf("expected 20 valid moves from the initial position, got %d", total)
	}
}

func TestPieceCountNeverIncreases(t *testing.T) {
	g := NewGame()
	moves := []string{"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a5"}
	captures := map[string]bool{"e4d5": true, "d8d5": true}
	count := countPieces(g)
	for _, m := range moves {
		mustApply(t, g, m)
		next := countPieces(g)
		want := count
		if captures[m] {
			want--
		}
		if next != want {
			t.Fatalf("after %s expected %d pieces, got %d", m, want, next)
		}
		count = next
		assertOneKingEach(t, g)
	}
}

func TestMoveCounters(t *testing.T) {
	g := NewGame()
	mustApply(t, g, "e2e4")
	if g.HalfmoveClock() != 1 || g.FullmoveNumber() != 1 {
		t.Fatalf("after white's move expected clocks 1/1, got %d/%d", g.HalfmoveClock(), g.FullmoveNumber())
	}
	mustApply(t, g, "e7e5")
	if g.HalfmoveClock() != 2 || g.FullmoveNumber() != 2 {
		t.Fatalf("after black's move expected clocks 2/2, got %d/%d", g.HalfmoveClock(), g.FullmoveNumber())
	}
}

func TestSnapshotLayout(t *testing.T) {
	g := NewGame()
	snapshot := g.Snapshot()
	checks := map[string]string{
		"a8": "bR", "e8": "bK", "a7": "bP",
		"a1": "wR", "e1": "wK", "h2": "wP",
		"e4": "", "d5": "",
	}
	for name, want := range checks {
		if got := snapshot[index(name)]; got != want {
			t.Fatalf("expected %q at %s, got %q", want, name, got)
		}
	}
}

func TestSquareIsEmpty(t *testing.T) {
	g := NewGame()
	if g.SquareIsEmpty("e2") {
		t.Fatal("e2 holds a pawn")
	}
	if !g.SquareIsEmpty("e4") {
		t.Fatal("e4 starts empty")
	}
	if !g.SquareIsEmpty("z9") {
		t.Fatal("unknown squares count as empty")
	}
}

func TestWriteSVG(t *testing.T) {
	g := NewGame()
	var sb strings.Builder
	g.WriteSVG(&sb)
	out := sb.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	// 32 piece glyphs in the initial position.
	if got := strings.Count(out, "<text"); got != 32 {
		t.Fatalf("expected 32 piece glyphs, got %d", got)
	}
}

// index maps an algebraic square name to its presentation-array slot.
func index(name string) int {
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	return file*8 + (7 - rank)
}

func countPieces(g *Game) int {
	count := 0
	for _, entry := range g.Snapshot() {
		if entry != "" {
			count++
		}
	}
	return count
}

func assertOneKingEach(t testing.TB, g *Game) {
	t.Helper()
	white, black := 0, 0
	for _, entry := range g.Snapshot() {
		switch entry {
		case "wK":
			white++
		case "bK":
			black++
		}
	}
	if white != 1 || black != 1 {
		t.Fatalf("expected exactly one king per color, got %d white and %d black%s", white, black, g.Board().Draw())
	}
}

func BenchmarkStalemateStatus(b *testing.B) {
	g := seedGame(b, "k1K5/8/8/8/8/8/8/1Q6_w_-_-_0_1")
	mustApply(b, g, "b1b6")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		classify(g.board, g.state, g.state.sideToMove)
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	g := NewGame()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, err := g.ApplyMove("e2e4"); err != nil {
			b.Fatal(err)
		}
		if err := g.Undo(); err != nil {
			b.Fatal(err)
		}
	}
}
