package whep

import "time"

// Status of an individual viewer session
type SessionStateDTO struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	ConnectionState string    `json:"connectionState"`
}

// GetSessionStatus returns the current state of the session.
func (session *Session) GetSessionStatus() SessionStateDTO {
	state := "closed"
	if !session.IsSessionClosed.Load() && session.PeerConnection != nil {
		state = session.PeerConnection.ConnectionState().String()
	}

	return SessionStateDTO{
		ID:              session.ID,
		CreatedAt:       session.CreatedAt,
		ConnectionState: state,
	}
}
