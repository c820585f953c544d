// Package cli implements the interactive terminal front end of the
// bowlsignup client.
//
// The REPL shows one of three views, picked by the navigation token the
// user enters with "go <token>" and by the admin session flag:
//
//	signup       public sign-up form      (any token not under #/admin)
//	admin-login  admin password prompt    (#/admin..., not signed in)
//	admin        list, delete, clear, export
//
// The list shown on the admin view is the local mirror of the remote
// collection; it refreshes in the background whenever the server pushes a
// new snapshot.
package cli
