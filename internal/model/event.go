package model

// Event represents a single event in the collection. UserID references the
// id of the user who created the event; it is stamped once at creation and
// never altered by updates. It is a lookup key, not a live reference — the
// owning user may no longer exist.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	UserID      string `json:"userId"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// EventInput represents the caller-supplied fields of a new event.
// ID and UserID are assigned by the store.
type EventInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// EventPatch represents a partial update. Nil fields keep their prior
// values; there is no way to patch ID or UserID.
type EventPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Location    *string `json:"location,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}
