package entities

import (
	"fmt"
	"strings"
)

// Cancellation undoes the booking of a party on a list of (segment, class)
type Cancellation struct {
	SegmentPath []string
	ClassCodes  []ClassCode
	PartySize   NbOfSeats
}

// NewCancellation creates a validated Cancellation
func NewCancellation(segmentPath []string, classCodes []ClassCode, partySize NbOfSeats) (*Cancellation, error) {
	c := &Cancellation{
		SegmentPath: segmentPath,
		ClassCodes:  classCodes,
		PartySize:   partySize,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks there is one class code per segment and a positive party size
func (c *Cancellation) Validate() error {
	if len(c.SegmentPath) == 0 {
		return fmt.Errorf("segment path cannot be empty")
	}
	if len(c.SegmentPath) != len(c.ClassCodes) {
		return fmt.Errorf("cancellation has %d class codes for %d segments", len(c.ClassCodes), len(c.SegmentPath))
	}
	if c.PartySize <= 0 {
		return fmt.Errorf("party size must be positive, got %d", c.PartySize)
	}
	return nil
}

// Describe returns a one-line description of the cancellation
func (c *Cancellation) Describe() string {
	codes := make([]string, len(c.ClassCodes))
	for i, cc := range c.ClassCodes {
		codes[i] = string(cc)
	}
	return fmt.Sprintf("%s; %s; %d", strings.Join(c.SegmentPath, " "), strings.Join(codes, "-"), c.PartySize)
}
