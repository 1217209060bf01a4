// Package auth implements administrator authentication against the local
// database. There are no roles or permission levels: a request is either
// authenticated as the administrator or it is not.
package auth
