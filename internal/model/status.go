package model

// Status is the lifecycle state of an account. The set is closed; the
// accounts table enforces it with a CHECK constraint.
type Status string

const (
	StatusNew     Status = "New"
	StatusVerify  Status = "Verify"
	StatusDisable Status = "Disable"
	StatusError   Status = "Error"
	StatusRunning Status = "Running"
	StatusGood    Status = "Good"
	StatusSold    Status = "Sold"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusNew,
	StatusVerify,
	StatusDisable,
	StatusError,
	StatusRunning,
	StatusGood,
	StatusSold,
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusVerify, StatusDisable, StatusError, StatusRunning, StatusGood, StatusSold:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// CardStyle holds the summary card presentation for a status.
type CardStyle struct {
	Color string
	Icon  string
}

var cardStyles = map[Status]CardStyle{
	StatusNew:     {Color: "bg-warning", Icon: "bi-plus-circle"},
	StatusVerify:  {Color: "bg-info", Icon: "bi-shield-check"},
	StatusDisable: {Color: "bg-danger", Icon: "bi-x-circle"},
	StatusError:   {Color: "bg-danger", Icon: "bi-exclamation-circle"},
	StatusRunning: {Color: "bg-primary", Icon: "bi-play-circle"},
	StatusGood:    {Color: "bg-success", Icon: "bi-check-circle"},
	StatusSold:    {Color: "bg-secondary", Icon: "bi-cart-check"},
}

// Card returns the presentation style for s. Every known status has an
// entry; there is no fallback for unknown values.
func (s Status) Card() (CardStyle, bool) {
	style, ok := cardStyles[s]
	return style, ok
}
