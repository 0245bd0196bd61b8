package model

import "time"

// Entry is one line of the calculation tape.
type Entry struct {
	Expr   string    `json:"expr"`
	Result string    `json:"result"`
	At     time.Time `json:"at"`
}
