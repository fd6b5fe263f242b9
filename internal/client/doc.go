// Package client submits calculation requests to the remote service over
// HTTP and classifies every outcome into the application error taxonomy.
package client
