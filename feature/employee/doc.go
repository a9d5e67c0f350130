// Package employee implements the employee directory.
//
// It enrolls employees with their face-recognition metadata, enforces the
// unique employee_code business key, and optionally stores the enrollment
// photo in object storage. Other features resolve identities through the
// service's FindByCode.
package employee
