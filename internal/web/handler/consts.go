package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// AdminPath is the prefix of all back-office routes.
	AdminPath = "/admin"

	// RouterRootPath is the relative root inside a route group.
	RouterRootPath = ""

	// TimeFormat is the timestamp layout used in JSON responses.
	TimeFormat = "2006-01-02 15:04:05"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
