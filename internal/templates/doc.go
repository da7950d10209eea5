// Package templates fetches registry documents and component template
// files, either over HTTP from a published registry or from a local
// registry checkout.
package templates
