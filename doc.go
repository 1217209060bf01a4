// Package main provides the entry point for the Rupa Chimney website.
// It runs a Fiber web server that serves the public marketing pages,
// accepts enquiry and contact submissions, and exposes the JSON endpoints
// consumed by the admin dashboard. The application uses gorm for data
// persistence and stores uploaded gallery and service images on disk.
package main
