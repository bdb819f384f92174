package connector

import (
	"context"
	"fmt"
)

// Scripted is a Connector that replays canned replies in order, for local
// debugging and tests. It records every request it receives.
type Scripted struct {
	Replies []Reply
	Errs    []error

	// Requests records the message and a copy of the history for each call
	Requests []ScriptedRequest

	next int
}

type ScriptedRequest struct {
	Message string
	History []Turn
}

func (s *Scripted) Send(_ context.Context, message string, history []Turn) (Reply, error) {
	snapshot := make([]Turn, len(history))
	copy(snapshot, history)
	s.Requests = append(s.Requests, ScriptedRequest{Message: message, History: snapshot})

	i := s.next
	s.next++

	if i < len(s.Errs) && s.Errs[i] != nil {
		return Reply{}, s.Errs[i]
	}
	if i >= len(s.Replies) {
		return Reply{}, &ConnectorError{Provider: "scripted", Err: fmt.Errorf("no scripted reply for call %d", i)}
	}
	return s.Replies[i], nil
}
