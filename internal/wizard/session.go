package wizard

import "time"

// Session binds a controller to an id so a browser can drive it over HTTP.
type Session struct {
	ID         string      `json:"id"`
	FormID     string      `json:"form_id"`
	Controller *Controller `json:"-"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func NewSession(id string, controller *Controller) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		FormID:     controller.Form().ID,
		Controller: controller,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
