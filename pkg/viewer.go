package pkg

import (
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

// Viewer is one ssh session watching the board
type Viewer struct {
	ID      string
	Name    string
	User    string
	Term    string
	Started time.Time
}

func NewViewer(user, term string) *Viewer {
	return &Viewer{
		ID:      uuid.New().String(),
		Name:    petname.Generate(2, "-"),
		User:    user,
		Term:    term,
		Started: time.Now(),
	}
}

func (v *Viewer) String() string {
	return v.Name + " (" + v.User + ")"
}
