package whd

import (
	"strings"

	"github.com/ericpoe/ask-a-tech/config"
	"github.com/ericpoe/ask-a-tech/types"
)

// Ticket is the Web Help Desk ticket creation document.
type Ticket struct {
	EmailClient    bool      `json:"emailClient"`
	Subject        string    `json:"subject"`
	Detail         string    `json:"detail"`
	ProblemType    Reference `json:"problemtype"`
	IsPrivate      bool      `json:"isPrivate"`
	SendEmail      bool      `json:"sendEmail"`
	Location       Reference `json:"location"`
	Room           string    `json:"room"`
	ClientReporter Reporter  `json:"clientReporter"`
	StatusType     Reference `json:"statustype"`
	PriorityType   Reference `json:"prioritytype"`
}

// Reference is a typed reference to a configured Web Help Desk entity.
type Reference struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

type Reporter struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Every ticket has the same subject and room.
const (
	SUBJECT = "Ask-A-Tech"
	ROOM    = "Network"
)

// Build creates the ticket for a row. It never fails: empty usernames and questions produce a
// syntactically valid ticket.
func Build(row types.Row, cfg *config.WHD) Ticket {
	return Ticket{
		EmailClient: false,
		Subject:     SUBJECT,
		Detail:      row.Question,
		ProblemType: Reference{
			Type: "ProblemType",
			ID:   cfg.ProblemType,
		},
		IsPrivate: false,
		SendEmail: false,
		Location: Reference{
			Type: "Location",
			ID:   cfg.Location,
		},
		Room: ROOM,
		ClientReporter: Reporter{
			Type: "Client",
			ID:   ClientID(row.Username),
		},
		StatusType: Reference{
			Type: "StatusType",
			ID:   cfg.StatusType,
		},
		PriorityType: Reference{
			Type: "PriorityType",
			ID:   cfg.PriorityType,
		},
	}
}

// ClientID returns the part of a username before the first '@', or the whole username if it has no '@'.
func ClientID(username string) string {
	if user, _, ok := strings.Cut(username, "@"); ok {
		return user
	}

	return username
}
