// Package calc holds the wire types exchanged with the calculation service,
// the request builder that reads them from a form, and the shape validation
// applied to every successful response.
package calc
