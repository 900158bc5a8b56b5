package game

type GameState int

const (
	StateRunning GameState = iota
	StateOver              // terminal, never left
)

func (s GameState) String() string {
	if s == StateOver {
		return "OVER"
	}
	return "RUNNING"
}

// EndReason records why a session reached StateOver.
type EndReason int

const (
	EndNone     EndReason = iota
	EndQuit               // quit action asserted
	EndHitByAxe           // enemy projectile reached an actor
	EndCollided           // an actor touched an enemy
)

func (r EndReason) String() string {
	switch r {
	case EndQuit:
		return "quit"
	case EndHitByAxe:
		return "hit by axe"
	case EndCollided:
		return "collided with enemy"
	}
	return "none"
}

// Result is handed to the session host when the game ends.
type Result struct {
	FinalScore int
	Reason     EndReason
}

// GameSession holds the kill score and the write-once game-over state.
type GameSession struct {
	State  GameState
	Score  int
	Reason EndReason
}

func NewGameSession() *GameSession {
	return &GameSession{State: StateRunning}
}

func (s *GameSession) Over() bool { return s.State == StateOver }

// AddKill scores one enemy. It is a no-op once the session is over.
func (s *GameSession) AddKill() {
	if s.Over() {
		return
	}
	s.Score++
}

// End moves the session to StateOver. Only the first call has an effect;
// it reports whether this call performed the transition.
func (s *GameSession) End(reason EndReason) bool {
	if s.Over() {
		return false
	}
	s.State = StateOver
	s.Reason = reason
	return true
}

func (s *GameSession) Result() Result {
	return Result{FinalScore: s.Score, Reason: s.Reason}
}
