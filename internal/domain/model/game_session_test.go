package model

import "testing"

func TestGameSession_Joinable(t *testing.T) {
	t.Parallel()

	g := GameSession{Status: GameSessionLobby}
	if !g.Joinable() {
		t.Fatalf("expected lobby session to be joinable")
	}
	for _, st := range []GameSessionStatus{GameSessionRunning, GameSessionFinished} {
		g.Status = st
		if g.Joinable() {
			t.Fatalf("did not expect %s session to be joinable", st)
		}
	}
}

func TestNormalizeJoinCode(t *testing.T) {
	t.Parallel()

	if got := NormalizeJoinCode("  ab12cd "); got != "AB12CD" {
		t.Fatalf("NormalizeJoinCode() = %q", got)
	}
}

func TestCreateGameSessionRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateGameSessionRequest{QuizID: "q1", HostID: "u1"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req = CreateGameSessionRequest{HostID: "u1"}
	if err := req.Validate(); err == nil {
		t.Fatalf("expected error for missing quiz_id")
	}
}
