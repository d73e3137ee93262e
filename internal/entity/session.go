package entity

type Mode string

const (
	ModeMenu     Mode = "menu"
	ModePlayer   Mode = "player"
	ModeComputer Mode = "computer"
)

func (that Mode) IsValid() bool {
	return that == ModePlayer || that == ModeComputer
}

// SessionState is a snapshot of a game session, everything a presentation layer needs to render.
type SessionState struct {
	ID          string  `json:"id"`
	Mode        Mode    `json:"mode"`
	Board       Board   `json:"board"`
	Turn        Mark    `json:"turn"`
	Outcome     Outcome `json:"outcome"`
	Winner      Mark    `json:"winner"`
	AutoRestart bool    `json:"auto_restart"`
	Countdown   *int    `json:"countdown,omitempty"`
	Generation  uint64  `json:"generation"`
	Status      string  `json:"status"`
}

func (that *SessionState) IsFinished() bool {
	return that.Outcome.IsFinished()
}

func (that *SessionState) IsInMenu() bool {
	return that.Mode == ModeMenu
}
