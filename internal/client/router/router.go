// Package router maps a navigation token and the session's admin flag to
// the view the client shows.
package router

import (
	"strings"
	"sync"

	"github.com/dmitrijs2005/bowlsignup/internal/common"
)

type View int

const (
	PublicForm View = iota
	AdminLogin
	AdminPanel
)

func (v View) String() string {
	switch v {
	case PublicForm:
		return "signup"
	case AdminLogin:
		return "admin-login"
	case AdminPanel:
		return "admin"
	default:
		return "unknown"
	}
}

// Session is the state the router needs from the session store.
type Session struct {
	Authenticated bool
}

// Resolve is the routing table: tokens outside the admin prefix show the
// public form, admin tokens show the panel only to an authenticated session.
func Resolve(token string, session Session) View {
	if !strings.HasPrefix(token, common.AdminRoutePrefix) {
		return PublicForm
	}
	if session.Authenticated {
		return AdminPanel
	}
	return AdminLogin
}

// Router tracks the current token and session. There is no transition back
// to an unauthenticated session.
type Router struct {
	mu      sync.RWMutex
	token   string
	session Session
}

func New(token string, session Session) *Router {
	return &Router{token: token, session: session}
}

// Navigate switches to token and returns the resulting view.
func (r *Router) Navigate(token string) View {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	return Resolve(r.token, r.session)
}

// LoginSucceeded marks the session authenticated and moves to the admin
// route.
func (r *Router) LoginSucceeded() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session.Authenticated = true
	r.token = common.AdminRoutePrefix
	return Resolve(r.token, r.session)
}

func (r *Router) Current() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Resolve(r.token, r.session)
}

func (r *Router) Token() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

func (r *Router) Session() Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}
