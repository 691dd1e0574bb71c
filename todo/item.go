package todo

import (
	"encoding/json"
	"fmt"
)

// Item is a single todo entry. Its JSON form is
// {"id", "userId", "title", "completed"}, encoded in that field order.
type Item struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	IsFinished bool   `json:"completed"`
}

// itemJSON is the decode-side wire form. Pointers tell an absent or null
// field apart from a zero one.
type itemJSON struct {
	ID        *string `json:"id"        validate:"required"`
	UserID    *string `json:"userId"    validate:"required"`
	Title     *string `json:"title"     validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
}

// UnmarshalJSON decodes an item, failing when any of the four fields is
// missing or null.
func (i *Item) UnmarshalJSON(data []byte) error {
	var wire itemJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if err := check(wire); err != nil {
		return fmt.Errorf("incomplete item: %w", err)
	}

	*i = Item{
		ID:         *wire.ID,
		UserID:     *wire.UserID,
		Title:      *wire.Title,
		IsFinished: *wire.Completed,
	}

	return nil
}
