// Package calc implements the fuzzy probability engine: probabilities of
// fuzzy events over a discrete universe of elementary outcomes.
//
// An Engine is constructed once with a universe and a probability
// distribution and then answers probability queries for fuzzy events,
// which are membership vectors over that universe. Registered events are
// kept in an append-only collection so they can later be combined with
// fuzzy-set algebra (union, intersection) by index.
//
// The Engine itself performs no synchronization. Callers that register
// events from multiple goroutines must serialize access externally; the
// service layer registry does this for the MCP surface.
package calc
