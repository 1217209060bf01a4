// Package auth implements the session guard for the admin back office.
//
// New builds a Fiber middleware from the application config. Requests
// outside the admin path pass through untouched, as do the login and
// logout endpoints. Every other admin request must carry a session
// cookie whose id resolves to a stored session:
//   - browser-facing pages (the dashboard) redirect to the login page
//     with a flashed notice when the session is missing or expired
//   - JSON endpoints answer 401 Unauthorized instead
//
// A valid session is rewritten with a fresh TTL on every request, so
// the expiry is an idle timeout rather than an absolute one, and the
// session cookie is re-set to match. The authenticated admin account is
// stored in fiber.Locals under "CurrentAdmin" for downstream handlers.
//
// Usage:
//
//	app.Use(auth.New(cfg))
package auth
