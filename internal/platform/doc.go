// Package platform hides the filesystem differences between Unix and
// Windows hosts.
package platform
