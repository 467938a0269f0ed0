// Package webapp serves the conference form as a server-rendered page.
//
// Every browser gets its own form instance: a session cookie maps to a
// submission.Controller and a toast queue held in an expiring cache. Toasts
// raised by a submit are shown on the next render and then dropped.
package webapp
