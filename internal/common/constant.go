// Package common contains shared constants and sentinel errors used across
// bowlsignup components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// admin access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// AdminRoutePrefix is the navigation token prefix of the admin views.
const AdminRoutePrefix = "#/admin"
