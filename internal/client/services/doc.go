// Package services contains application services for the CaseKeeper console.
//
// Services sit between the console commands and the API client. Mutations
// validate their input before any network call, issue exactly one request,
// bracket it with the progress indicator and, on success, invalidate the
// cached case list so the next read refetches it.
package services
