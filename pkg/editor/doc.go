// Package editor holds the mutations a graph editor applies to a
// *domain.Graph in response to user actions.
//
// Every operation validates its input and returns false, leaving the graph
// untouched, when the request does not apply. Operations are not safe for
// concurrent use on the same graph; callers serialize edits.
package editor
