// Package recognition records face recognition attempts for auditing.
//
// Attempts are independent of sessions and are written once: a failed match
// is just as interesting as a successful one, so unknown employee codes are
// stored with a null employee id instead of being rejected.
package recognition
