// Package controller owns the request lifecycle as seen by the user: the
// current UIState and the page elements that reflect it. Transitions are
// Idle → Pending → Success | Failed → Pending and so on; Idle and Failed are
// both resting states.
package controller
