// Package clothing defines clothing items, the photos attached to them and the
// contracts for storing both.
package clothing
