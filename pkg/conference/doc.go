// Package conference defines the record collected by the conference-creation
// form: the four user-entered fields, their display metadata and the
// browser-equivalent required/type constraints.
package conference
